package compiler

import "fmt"

// Compile runs the front end over src: Lex then Parse. Lexer warnings are
// returned even when parsing fails.
func Compile(src string) (*Program, []Diagnostic, error) {
	tokens, diags := Lex(src)

	prog, err := Parse(tokens, src)
	if err != nil {
		return nil, diags, fmt.Errorf("parse: %w", err)
	}
	return prog, diags, nil
}
