package compiler

import (
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	src := `int main() {
    int a = 2;
    float x;
    a = a * 3;
    printf("%d\n", a);
    return 0;
}`
	prog := mustParse(t, src)

	var sb strings.Builder
	if err := Dump(&sb, prog); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	want := `Program:
  FunctionDecl: int main
    CompoundStmt:
      Decl: int a
        Constant: int, 2
      Decl: float x
      Assignment: =
        Identifier: a
        BinaryOp: *
          Identifier: a
          Constant: int, 3
      FuncCall: printf
        Constant: string, "%d\n"
        Identifier: a
      Return:
        Constant: int, 0
`
	if sb.String() != want {
		t.Errorf("Dump mismatch\n got:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{&Constant{Kind: ConstFloat, Float: 3.5}, "Constant: float, 3.5"},
		{&Constant{Kind: ConstFloat, Float: 7}, "Constant: float, 7.0"},
		{&Constant{Kind: ConstFloat, Float: 1e20}, "Constant: float, 1e+20"},
		{&Return{}, "Return:"},
		{&FunctionDecl{ReturnType: "void", Name: "f"}, "FunctionDecl: void f"},
		{nil, "<nil>"},
	}
	for _, tt := range tests {
		if got := Label(tt.node); got != tt.want {
			t.Errorf("Label(%#v) = %q, want %q", tt.node, got, tt.want)
		}
	}
}
