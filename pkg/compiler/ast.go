package compiler

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Node is implemented by every AST node. The set of variants is closed.
type Node interface {
	node()
	String() string
}

// Expr is implemented by every node that may appear in expression position.
type Expr interface {
	Node
	exprNode()
}

//  Top level

// Program is the root of the tree: every top-level function, in order.
type Program struct {
	Decls []Node
}

func (*Program) node() {}
func (p *Program) String() string {
	return fmt.Sprintf("Program(decls=%d)", len(p.Decls))
}

// FunctionDecl represents  type name() { body }
// Params is always empty; parameter lists are not parsed.
type FunctionDecl struct {
	ReturnType string
	Name       string
	Params     []Node
	Body       *CompoundStmt
}

func (*FunctionDecl) node() {}
func (f *FunctionDecl) String() string {
	return fmt.Sprintf("FunctionDecl(%s %s, body=%s)", f.ReturnType, f.Name, f.Body)
}

//  Statements

// CompoundStmt represents { item; ... }
type CompoundStmt struct {
	Items []Node
}

func (*CompoundStmt) node() {}
func (c *CompoundStmt) String() string {
	return fmt.Sprintf("CompoundStmt(len=%d)", len(c.Items))
}

// Decl represents  type name [= init];
type Decl struct {
	Name string
	Type string // as written: int, float, double, char, void
	Init Expr   // may be nil
}

func (*Decl) node() {}
func (d *Decl) String() string {
	if d.Init == nil {
		return fmt.Sprintf("Decl(%s %s)", d.Type, d.Name)
	}
	return fmt.Sprintf("Decl(%s %s = %s)", d.Type, d.Name, d.Init)
}

// Return represents  return [expr];
type Return struct {
	Expr Expr // may be nil
}

func (*Return) node() {}
func (r *Return) String() string {
	if r.Expr == nil {
		return "Return"
	}
	return fmt.Sprintf("Return(%s)", r.Expr)
}

//  Expressions

// ConstKind is the literal category of a Constant.
type ConstKind int

const (
	ConstInt ConstKind = iota
	ConstFloat
	ConstString
)

func (k ConstKind) String() string {
	switch k {
	case ConstInt:
		return "int"
	case ConstFloat:
		return "float"
	case ConstString:
		return "string"
	}
	return fmt.Sprintf("ConstKind(%d)", int(k))
}

// Constant is a literal. Exactly one of Int, Float, Text is meaningful,
// selected by Kind.
//
//	int x = 10;
//	        ^^  Constant{Kind: ConstInt, Int: 10}
type Constant struct {
	Kind  ConstKind
	Int   int64
	Float float64
	Text  string
}

func (*Constant) node()     {}
func (*Constant) exprNode() {}
func (c *Constant) String() string {
	switch c.Kind {
	case ConstFloat:
		return FormatFloat(c.Float)
	case ConstString:
		return strconv.Quote(c.Text)
	}
	return strconv.FormatInt(c.Int, 10)
}

// FormatFloat renders f so that it always reads as floating: a decimal point
// is kept even for whole values (7.0), and very small or very large
// magnitudes switch to exponent form (1e+16, 1.5e-05).
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Identifier is a reference to a named variable, resolved at evaluation time.
type Identifier struct {
	Name string
}

func (*Identifier) node()            {}
func (*Identifier) exprNode()        {}
func (i *Identifier) String() string { return i.Name }

// BinaryOp represents  Left Op Right.
//
//	x + 1
//	^ ^ ^
//	| | Right
//	| Op
//	Left
type BinaryOp struct {
	Op    string
	Left  Expr
	Right Expr
}

func (*BinaryOp) node()     {}
func (*BinaryOp) exprNode() {}
func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// Assignment represents  LValue = RValue. LValue is whatever expression the
// parser found on the left; only an Identifier is assignable at run time.
type Assignment struct {
	Op     string
	LValue Expr
	RValue Expr
}

func (*Assignment) node()     {}
func (*Assignment) exprNode() {}
func (a *Assignment) String() string {
	return fmt.Sprintf("Assignment(%s %s %s)", a.LValue, a.Op, a.RValue)
}

// FuncCall represents  name(args)
type FuncCall struct {
	Name string
	Args []Expr
}

func (*FuncCall) node()     {}
func (*FuncCall) exprNode() {}
func (c *FuncCall) String() string {
	return fmt.Sprintf("FuncCall(%s, args=%v)", c.Name, c.Args)
}
