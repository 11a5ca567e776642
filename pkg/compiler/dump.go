package compiler

import (
	"fmt"
	"io"
	"strings"
)

// Label returns the one-line description of n used by Dump.
func Label(n Node) string {
	switch n := n.(type) {
	case *Program:
		return "Program:"
	case *FunctionDecl:
		return fmt.Sprintf("FunctionDecl: %s %s", n.ReturnType, n.Name)
	case *CompoundStmt:
		return "CompoundStmt:"
	case *Decl:
		return fmt.Sprintf("Decl: %s %s", n.Type, n.Name)
	case *Return:
		return "Return:"
	case *Constant:
		return fmt.Sprintf("Constant: %s, %s", n.Kind, n)
	case *Identifier:
		return "Identifier: " + n.Name
	case *BinaryOp:
		return "BinaryOp: " + n.Op
	case *Assignment:
		return "Assignment: " + n.Op
	case *FuncCall:
		return "FuncCall: " + n.Name
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%T", n)
	}
}

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Program:
		return n.Decls
	case *FunctionDecl:
		out := append([]Node(nil), n.Params...)
		if n.Body != nil {
			out = append(out, n.Body)
		}
		return out
	case *CompoundStmt:
		return n.Items
	case *Decl:
		if n.Init != nil {
			return []Node{n.Init}
		}
	case *Return:
		if n.Expr != nil {
			return []Node{n.Expr}
		}
	case *BinaryOp:
		return []Node{n.Left, n.Right}
	case *Assignment:
		return []Node{n.LValue, n.RValue}
	case *FuncCall:
		out := make([]Node, 0, len(n.Args))
		for _, a := range n.Args {
			out = append(out, a)
		}
		return out
	}
	return nil
}

// Dump writes an indented structural dump of the tree rooted at n:
// one label line per node, two spaces of indent per depth.
func Dump(w io.Writer, n Node) error {
	return dump(w, n, 0)
}

func dump(w io.Writer, n Node, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), Label(n)); err != nil {
		return err
	}
	for _, c := range Children(n) {
		if err := dump(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
