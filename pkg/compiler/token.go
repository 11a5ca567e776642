package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	TYPE       // int, float, double, char, void
	KEYWORD    // if, else, while, for, return, include, define
	IDENTIFIER // variable / function name
	NUMBER     // decimal literal, integer or floating
	STRING     // string literal "..."
	OPERATOR   // + - * / % = < > & | ^ ! == != <= >=
	PUNCT      // ; , ( ) { } [ ]
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:        "EOF",
	TYPE:       "TYPE",
	KEYWORD:    "KEYWORD",
	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	OPERATOR:   "OPERATOR",
	PUNCT:      "PUNCT",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
//
// NUMBER tokens carry their decoded value: Int when IsFloat is false,
// Float otherwise. STRING tokens carry the escape-processed text in Lexeme.
type Token struct {
	Type    TokenType
	Lexeme  string // source text, or decoded text for STRING
	Line    int    // 1-based source line
	IsFloat bool
	Int     int64
	Float   float64
}

// Is reports whether t has the given type and lexeme.
func (t Token) Is(tt TokenType, lexeme string) bool {
	return t.Type == tt && t.Lexeme == lexeme
}

// Describe renders the token for diagnostics, e.g. `OPERATOR "="`.
func (t Token) Describe() string {
	if t.Type == EOF {
		return "end of file"
	}
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d", t.Type, t.Lexeme, t.Line)
}
