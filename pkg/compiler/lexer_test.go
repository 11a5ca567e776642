package compiler

import (
	"reflect"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Empty",
			input: "",
			expected: []Token{
				{Type: EOF, Line: 1},
			},
		},
		{
			name:  "Declaration",
			input: "int a = 2;",
			expected: []Token{
				{Type: TYPE, Lexeme: "int", Line: 1},
				{Type: IDENTIFIER, Lexeme: "a", Line: 1},
				{Type: OPERATOR, Lexeme: "=", Line: 1},
				{Type: NUMBER, Lexeme: "2", Line: 1, Int: 2},
				{Type: PUNCT, Lexeme: ";", Line: 1},
				{Type: EOF, Line: 1},
			},
		},
		{
			name:  "Operators",
			input: "+ - * / % = < > & | ^ ! == != <= >=",
			expected: []Token{
				{Type: OPERATOR, Lexeme: "+", Line: 1},
				{Type: OPERATOR, Lexeme: "-", Line: 1},
				{Type: OPERATOR, Lexeme: "*", Line: 1},
				{Type: OPERATOR, Lexeme: "/", Line: 1},
				{Type: OPERATOR, Lexeme: "%", Line: 1},
				{Type: OPERATOR, Lexeme: "=", Line: 1},
				{Type: OPERATOR, Lexeme: "<", Line: 1},
				{Type: OPERATOR, Lexeme: ">", Line: 1},
				{Type: OPERATOR, Lexeme: "&", Line: 1},
				{Type: OPERATOR, Lexeme: "|", Line: 1},
				{Type: OPERATOR, Lexeme: "^", Line: 1},
				{Type: OPERATOR, Lexeme: "!", Line: 1},
				{Type: OPERATOR, Lexeme: "==", Line: 1},
				{Type: OPERATOR, Lexeme: "!=", Line: 1},
				{Type: OPERATOR, Lexeme: "<=", Line: 1},
				{Type: OPERATOR, Lexeme: ">=", Line: 1},
				{Type: EOF, Line: 1},
			},
		},
		{
			name:  "Two-char operators without spaces",
			input: "a<=b==c",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "a", Line: 1},
				{Type: OPERATOR, Lexeme: "<=", Line: 1},
				{Type: IDENTIFIER, Lexeme: "b", Line: 1},
				{Type: OPERATOR, Lexeme: "==", Line: 1},
				{Type: IDENTIFIER, Lexeme: "c", Line: 1},
				{Type: EOF, Line: 1},
			},
		},
		{
			name:  "Punctuation",
			input: "; , ( ) { } [ ]",
			expected: []Token{
				{Type: PUNCT, Lexeme: ";", Line: 1},
				{Type: PUNCT, Lexeme: ",", Line: 1},
				{Type: PUNCT, Lexeme: "(", Line: 1},
				{Type: PUNCT, Lexeme: ")", Line: 1},
				{Type: PUNCT, Lexeme: "{", Line: 1},
				{Type: PUNCT, Lexeme: "}", Line: 1},
				{Type: PUNCT, Lexeme: "[", Line: 1},
				{Type: PUNCT, Lexeme: "]", Line: 1},
				{Type: EOF, Line: 1},
			},
		},
		{
			name:  "Keywords Types and Identifiers",
			input: "return while double void _tmp1 main",
			expected: []Token{
				{Type: KEYWORD, Lexeme: "return", Line: 1},
				{Type: KEYWORD, Lexeme: "while", Line: 1},
				{Type: TYPE, Lexeme: "double", Line: 1},
				{Type: TYPE, Lexeme: "void", Line: 1},
				{Type: IDENTIFIER, Lexeme: "_tmp1", Line: 1},
				{Type: IDENTIFIER, Lexeme: "main", Line: 1},
				{Type: EOF, Line: 1},
			},
		},
		{
			name:  "Numbers",
			input: "42 7.0 3.25 0",
			expected: []Token{
				{Type: NUMBER, Lexeme: "42", Line: 1, Int: 42},
				{Type: NUMBER, Lexeme: "7.0", Line: 1, IsFloat: true, Float: 7.0},
				{Type: NUMBER, Lexeme: "3.25", Line: 1, IsFloat: true, Float: 3.25},
				{Type: NUMBER, Lexeme: "0", Line: 1},
				{Type: EOF, Line: 1},
			},
		},
		{
			name:  "String escapes",
			input: `"%d\n" "a\tb" "q\"q" "back\\slash" "\x"`,
			expected: []Token{
				{Type: STRING, Lexeme: "%d\n", Line: 1},
				{Type: STRING, Lexeme: "a\tb", Line: 1},
				{Type: STRING, Lexeme: `q"q`, Line: 1},
				{Type: STRING, Lexeme: `back\slash`, Line: 1},
				{Type: STRING, Lexeme: "x", Line: 1},
				{Type: EOF, Line: 1},
			},
		},
		{
			name:  "Comments",
			input: "x // comment\n y /* block\n spanning */ z",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "x", Line: 1},
				{Type: IDENTIFIER, Lexeme: "y", Line: 2},
				{Type: IDENTIFIER, Lexeme: "z", Line: 3},
				{Type: EOF, Line: 3},
			},
		},
		{
			name:  "Preprocessor lines are skipped",
			input: "#include <stdio.h>\n#define N 10\nint",
			expected: []Token{
				{Type: TYPE, Lexeme: "int", Line: 3},
				{Type: EOF, Line: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, diags := Lex(tt.input)
			if len(diags) != 0 {
				t.Errorf("unexpected warnings: %v", diags)
			}
			if !reflect.DeepEqual(tokens, tt.expected) {
				t.Errorf("Lex() mismatch\n got: %v\nwant: %v", tokens, tt.expected)
			}
		})
	}
}

func TestLexKinds(t *testing.T) {
	tokens, _ := Lex("int a = 2;")
	var got []TokenType
	for _, tok := range tokens {
		got = append(got, tok.Type)
	}
	want := []TokenType{TYPE, IDENTIFIER, OPERATOR, NUMBER, PUNCT, EOF}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("kinds: got %v, want %v", got, want)
	}
}

func TestLexUnexpectedCharacter(t *testing.T) {
	clean, _ := Lex("int a = 2;")
	tokens, diags := Lex("int a @= 2;$")

	if len(diags) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(diags), diags)
	}
	for _, d := range diags {
		if d.Level != DiagWarning || d.Line != 1 {
			t.Errorf("unexpected diagnostic %v", d)
		}
	}
	if !strings.Contains(diags[0].Message, "'@'") {
		t.Errorf("warning should name the character, got %q", diags[0].Message)
	}
	if !reflect.DeepEqual(tokens, clean) {
		t.Errorf("skipped characters changed the token stream\n got: %v\nwant: %v", tokens, clean)
	}
}

func TestLexLineNumbers(t *testing.T) {
	src := "int main() {\n  /* a\n b */\n  return 0;\n}\n"
	tokens, _ := Lex(src)

	lines := map[string]int{}
	for _, tok := range tokens {
		if tok.Type != EOF {
			lines[tok.Lexeme] = tok.Line
		}
	}
	if lines["return"] != 4 {
		t.Errorf("return on line %d, want 4", lines["return"])
	}
	if lines["}"] != 5 {
		t.Errorf("closing brace on line %d, want 5", lines["}"])
	}
	if last := tokens[len(tokens)-1]; last.Type != EOF || last.Line != 6 {
		t.Errorf("EOF token = %v, want line 6", last)
	}
}

func TestLexUnterminated(t *testing.T) {
	tests := []struct {
		name  string
		input string
		last  Token
	}{
		{"Block comment", "a /* open", Token{Type: IDENTIFIER, Lexeme: "a", Line: 1}},
		{"String", `"abc`, Token{Type: STRING, Lexeme: "abc", Line: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, diags := Lex(tt.input)
			if len(diags) != 1 {
				t.Fatalf("expected one warning, got %v", diags)
			}
			if len(tokens) != 2 || !reflect.DeepEqual(tokens[0], tt.last) || tokens[1].Type != EOF {
				t.Errorf("tokens = %v", tokens)
			}
		})
	}
}

func TestLexDotWithoutDigits(t *testing.T) {
	tokens, diags := Lex("7.")
	if len(diags) != 1 {
		t.Fatalf("expected a warning for the stray '.', got %v", diags)
	}
	want := Token{Type: NUMBER, Lexeme: "7", Line: 1, Int: 7}
	if !reflect.DeepEqual(tokens[0], want) {
		t.Errorf("got %v, want %v", tokens[0], want)
	}
}
