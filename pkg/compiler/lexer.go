package compiler

import (
	"strconv"
	"unicode"
)

// keywords and types are the fixed reserved words; anything else is an IDENTIFIER.
var keywords = map[string]bool{
	"if":      true,
	"else":    true,
	"while":   true,
	"for":     true,
	"return":  true,
	"include": true,
	"define":  true,
}

var types = map[string]bool{
	"int":    true,
	"float":  true,
	"double": true,
	"char":   true,
	"void":   true,
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src   []rune
	pos   int // index of the next rune to consume
	line  int // current 1-based source line
	diags []Diagnostic
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0, line: 1}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (l *Lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *Lexer) atEnd() bool { return l.pos >= len(l.src) }

func (l *Lexer) warnf(line int, format string, args ...any) {
	l.diags = append(l.diags, Warnf(line, format, args...))
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }

func isIdentPart(r rune) bool { return isIdentStart(r) || isDigit(r) }

// skipLineComment discards everything up to (not including) the newline.
// Preprocessor lines use the same routine.
func (l *Lexer) skipLineComment() {
	for !l.atEnd() && l.peek() != '\n' {
		l.advance()
	}
}

// skipBlockComment discards everything up to and including the closing "*/".
// The opening "/*" must already have been consumed.
func (l *Lexer) skipBlockComment() {
	startLine := l.line
	for !l.atEnd() {
		if l.peek() == '*' && l.peek2() == '/' {
			l.advance()
			l.advance()
			return
		}
		l.advance()
	}
	l.warnf(startLine, "unterminated block comment")
}

// scanNumber collects digits with an optional single fractional part.
// The literal is floating exactly when it contains a '.'.
func (l *Lexer) scanNumber() Token {
	line := l.line
	start := l.pos
	for isDigit(l.peek()) {
		l.advance()
	}
	isFloat := false
	if l.peek() == '.' && isDigit(l.peek2()) {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	lexeme := string(l.src[start:l.pos])
	tok := Token{Type: NUMBER, Lexeme: lexeme, Line: line, IsFloat: isFloat}
	if !isFloat {
		v, err := strconv.ParseInt(lexeme, 10, 64)
		if err == nil {
			tok.Int = v
			return tok
		}
		l.warnf(line, "integer literal %s out of range, treated as floating", lexeme)
		tok.IsFloat = true
	}
	tok.Float, _ = strconv.ParseFloat(lexeme, 64)
	return tok
}

// scanWord collects an identifier, keyword, or type name.
func (l *Lexer) scanWord() Token {
	line := l.line
	start := l.pos
	for !l.atEnd() && isIdentPart(l.peek()) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := IDENTIFIER
	switch {
	case keywords[lexeme]:
		tt = KEYWORD
	case types[lexeme]:
		tt = TYPE
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line}
}

// scanString collects a string literal "..." and decodes its escapes.
// Unknown escapes pass the escaped character through unchanged.
func (l *Lexer) scanString() Token {
	line := l.line
	l.advance() // opening "
	var val []rune

	for !l.atEnd() && l.peek() != '"' {
		r := l.advance()
		if r != '\\' {
			val = append(val, r)
			continue
		}
		if l.atEnd() {
			break
		}
		switch next := l.advance(); next {
		case 'n':
			val = append(val, '\n')
		case 't':
			val = append(val, '\t')
		default:
			val = append(val, next)
		}
	}

	if l.atEnd() {
		l.warnf(line, "unterminated string literal")
	} else {
		l.advance() // closing "
	}
	return Token{Type: STRING, Lexeme: string(val), Line: line}
}

// nextToken skips whitespace, comments and directives and returns the next
// Token. ok is false when the current character was not recognized; the
// character has been skipped and a warning recorded.
func (l *Lexer) nextToken() (tok Token, ok bool) {
	for {
		for !l.atEnd() && unicode.IsSpace(l.peek()) {
			l.advance()
		}
		if l.atEnd() {
			return Token{Type: EOF, Line: l.line}, true
		}
		switch {
		case l.peek() == '/' && l.peek2() == '/':
			l.skipLineComment()
			continue
		case l.peek() == '/' && l.peek2() == '*':
			l.advance()
			l.advance()
			l.skipBlockComment()
			continue
		case l.peek() == '#':
			l.skipLineComment()
			continue
		}
		break
	}

	ch := l.peek()
	line := l.line

	switch {
	case isDigit(ch):
		return l.scanNumber(), true
	case isIdentStart(ch):
		return l.scanWord(), true
	case ch == '"':
		return l.scanString(), true
	}

	l.advance()
	switch ch {
	case '=', '!', '<', '>':
		if l.peek() == '=' {
			l.advance()
			return Token{Type: OPERATOR, Lexeme: string(ch) + "=", Line: line}, true
		}
		return Token{Type: OPERATOR, Lexeme: string(ch), Line: line}, true
	case '+', '-', '*', '/', '%', '&', '|', '^':
		return Token{Type: OPERATOR, Lexeme: string(ch), Line: line}, true
	case ';', ',', '(', ')', '{', '}', '[', ']':
		return Token{Type: PUNCT, Lexeme: string(ch), Line: line}, true
	default:
		l.warnf(line, "unexpected character %q skipped", ch)
		return Token{}, false
	}
}

// Lex tokenises src and returns all tokens including the final EOF token,
// together with any warnings. Lexing never fails: unrecognized characters
// are reported and skipped.
func Lex(src string) ([]Token, []Diagnostic) {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, ok := l.nextToken()
		if !ok {
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, l.diags
		}
	}
}
