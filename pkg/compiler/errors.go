package compiler

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("syntax error")

// SyntaxError describes a fatal parse failure. It unwraps to ErrSyntax.
type SyntaxError struct {
	Expected string // what the parser wanted, e.g. `PUNCT "}"` or "expression"
	Got      string // what it found, or "end of file"
	Line     int
	Snippet  string // trimmed source line, if available
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: expected %s, got %s", e.Line, e.Expected, e.Got)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// DiagLevel is the severity of a Diagnostic.
type DiagLevel string

const (
	// DiagWarning is a non-fatal anomaly; processing continues.
	DiagWarning DiagLevel = "warning"
)

// Diagnostic is a non-fatal message produced by the lexer or the evaluator.
type Diagnostic struct {
	Level   DiagLevel
	Line    int // 0 when no source position is known
	Message string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", d.Level, d.Line, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Level, d.Message)
}

// Warnf builds a warning Diagnostic.
func Warnf(line int, format string, args ...any) Diagnostic {
	return Diagnostic{Level: DiagWarning, Line: line, Message: fmt.Sprintf(format, args...)}
}
