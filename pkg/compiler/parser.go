package compiler

import (
	"fmt"
	"strings"
)

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar:
//
//	program      = (functionDecl | <any other token, skipped>)* EOF
//	functionDecl = TYPE IDENTIFIER "(" ["void"] ")" compoundStmt
//	compoundStmt = "{" (declaration | statement)* "}"
//	declaration  = TYPE IDENTIFIER ["=" expression] ";"
//	statement    = "return" [expression] ";" | expression ";"
//	expression   = assignment
//	assignment   = binary ["=" expression]
//	binary       = primary (OP binary)*          precedence climbing, see binaryPrec
//	primary      = NUMBER | STRING | IDENTIFIER ["(" args ")"] | "(" expression ")"
type Parser struct {
	tokens      []Token
	pos         int
	sourceLines []string
}

// NewParser returns a parser over tokens. rawSource is kept only to quote
// the offending line in syntax errors.
func NewParser(tokens []Token, rawSource string) *Parser {
	return &Parser{tokens: tokens, sourceLines: strings.Split(rawSource, "\n")}
}

// binaryPrec maps each binary operator to its precedence; higher binds tighter.
var binaryPrec = map[string]int{
	"<": 0, ">": 0, "<=": 0, ">=": 0, "==": 0, "!=": 0,
	"+": 1, "-": 1,
	"*": 2, "/": 2, "%": 2,
	"&": 3, "|": 3, "^": 3,
}

// syntaxError builds a SyntaxError positioned at tok, with the source line
// where the token appears.
// At end of input the error is reported on the line of the last real token.
func (p *Parser) syntaxError(tok Token, expected string) error {
	line := tok.Line
	if tok.Type == EOF {
		for i := min(p.pos, len(p.tokens)) - 1; i >= 0; i-- {
			if p.tokens[i].Type != EOF {
				line = p.tokens[i].Line
				break
			}
		}
	}

	snippet := ""
	lineIdx := line - 1
	if lineIdx >= 0 && lineIdx < len(p.sourceLines) {
		snippet = strings.TrimSpace(p.sourceLines[lineIdx])
	}
	return &SyntaxError{Expected: expected, Got: tok.Describe(), Line: line, Snippet: snippet}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[p.pos]
}

// eof synthesises an EOF token positioned after the last real token.
func (p *Parser) eof() Token {
	line := 1
	if n := len(p.tokens); n > 0 {
		line = p.tokens[n-1].Line
	}
	return Token{Type: EOF, Line: line}
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// match consumes the current token only if it is (tt, lexeme).
func (p *Parser) match(tt TokenType, lexeme string) bool {
	if p.peek().Is(tt, lexeme) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it is (tt, lexeme), otherwise returns
// a SyntaxError. An empty lexeme matches any token of type tt.
func (p *Parser) expect(tt TokenType, lexeme string) (Token, error) {
	tok := p.peek()
	if tok.Type != tt || (lexeme != "" && tok.Lexeme != lexeme) {
		want := tt.String()
		if lexeme != "" {
			want = fmt.Sprintf("%s %q", tt, lexeme)
		}
		return tok, p.syntaxError(tok, want)
	}
	return p.advance(), nil
}

// parseExpression is the entry point for expression parsing.
func (p *Parser) parseExpression() (Expr, error) {
	return p.parseAssignment()
}

// parseAssignment is right-associative. The left side is not checked here;
// whether it is assignable is decided by the evaluator.
func (p *Parser) parseAssignment() (Expr, error) {
	left, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if !p.match(OPERATOR, "=") {
		return left, nil
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Assignment{Op: "=", LValue: left, RValue: right}, nil
}

// parseBinary climbs operator precedence. Every level is left-associative:
// the right operand is parsed at one level above the operator's own.
func (p *Parser) parseBinary(minPrec int) (Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.Type != OPERATOR {
			return left, nil
		}
		prec, ok := binaryPrec[tok.Lexeme]
		if !ok || prec < minPrec {
			return left, nil
		}
		p.advance()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: tok.Lexeme, Left: left, Right: right}
	}
}

// parsePrimary handles literals, variables, calls, and parenthesised expressions.
func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	switch {
	case tok.Type == NUMBER:
		p.advance()
		if tok.IsFloat {
			return &Constant{Kind: ConstFloat, Float: tok.Float}, nil
		}
		return &Constant{Kind: ConstInt, Int: tok.Int}, nil

	case tok.Type == STRING:
		p.advance()
		return &Constant{Kind: ConstString, Text: tok.Lexeme}, nil

	case tok.Type == IDENTIFIER:
		p.advance()
		if p.peek().Is(PUNCT, "(") {
			return p.parseFuncCall(tok.Lexeme)
		}
		return &Identifier{Name: tok.Lexeme}, nil

	case tok.Is(PUNCT, "("):
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(PUNCT, ")"); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.syntaxError(tok, "expression")
	}
}

// parseFuncCall parses  "(" [expr ("," expr)*] ")"  after the callee name.
func (p *Parser) parseFuncCall(name string) (Expr, error) {
	if _, err := p.expect(PUNCT, "("); err != nil {
		return nil, err
	}
	var args []Expr
	if !p.peek().Is(PUNCT, ")") {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(PUNCT, ",") {
				break
			}
		}
	}
	if _, err := p.expect(PUNCT, ")"); err != nil {
		return nil, err
	}
	return &FuncCall{Name: name, Args: args}, nil
}

// parseDeclaration parses  TYPE IDENTIFIER ["=" expression] ";"
func (p *Parser) parseDeclaration() (Node, error) {
	typeTok, err := p.expect(TYPE, "")
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(IDENTIFIER, "")
	if err != nil {
		return nil, err
	}
	decl := &Decl{Name: nameTok.Lexeme, Type: typeTok.Lexeme}
	if p.match(OPERATOR, "=") {
		decl.Init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(PUNCT, ";"); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseStatement parses a return statement or an expression statement.
func (p *Parser) parseStatement() (Node, error) {
	if p.match(KEYWORD, "return") {
		ret := &Return{}
		if !p.peek().Is(PUNCT, ";") {
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			ret.Expr = expr
		}
		if _, err := p.expect(PUNCT, ";"); err != nil {
			return nil, err
		}
		return ret, nil
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(PUNCT, ";"); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseCompound parses  "{" (declaration | statement)* "}"
func (p *Parser) parseCompound() (*CompoundStmt, error) {
	if _, err := p.expect(PUNCT, "{"); err != nil {
		return nil, err
	}
	block := &CompoundStmt{}
	for {
		tok := p.peek()
		if tok.Type == EOF {
			return nil, p.syntaxError(tok, `PUNCT "}"`)
		}
		if p.match(PUNCT, "}") {
			return block, nil
		}

		var item Node
		var err error
		if tok.Type == TYPE {
			item, err = p.parseDeclaration()
		} else {
			item, err = p.parseStatement()
		}
		if err != nil {
			return nil, err
		}
		block.Items = append(block.Items, item)
	}
}

// parseFunctionDecl parses  TYPE IDENTIFIER "(" ["void"] ")" compoundStmt
func (p *Parser) parseFunctionDecl() (*FunctionDecl, error) {
	typeTok, err := p.expect(TYPE, "")
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(IDENTIFIER, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(PUNCT, "("); err != nil {
		return nil, err
	}
	p.match(TYPE, "void")
	if _, err := p.expect(PUNCT, ")"); err != nil {
		return nil, err
	}
	body, err := p.parseCompound()
	if err != nil {
		return nil, err
	}
	return &FunctionDecl{ReturnType: typeTok.Lexeme, Name: nameTok.Lexeme, Body: body}, nil
}

// Parse builds the Program for tokens. Any top-level token that cannot start
// a function declaration is skipped. The first syntax error aborts the parse
// and no partial tree is returned.
func Parse(tokens []Token, rawSource string) (*Program, error) {
	p := NewParser(tokens, rawSource)
	prog := &Program{}
	for p.peek().Type != EOF {
		if p.peek().Type != TYPE {
			p.advance()
			continue
		}
		f, err := p.parseFunctionDecl()
		if err != nil {
			return nil, err
		}
		prog.Decls = append(prog.Decls, f)
	}
	return prog, nil
}
