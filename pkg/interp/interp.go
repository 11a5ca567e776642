package interp

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"ceval/pkg/compiler"
)

// ErrDivisionByZero is wrapped by the error returned when / or % has a zero
// right operand.
var ErrDivisionByZero = errors.New("division by zero")

// Options controls an Interpreter. A nil *Options selects the defaults.
type Options struct {
	// Logger receives warnings as they occur. Defaults to log.Default().
	Logger *log.Logger
}

func (o *Options) normalize() Options {
	if o == nil {
		return Options{Logger: log.Default()}
	}
	out := *o
	if out.Logger == nil {
		out.Logger = log.Default()
	}
	return out
}

// Result is everything one run of main produced.
type Result struct {
	Prints   []Value // one entry per recognized printf, in execution order
	Exit     Value   // value of the first executed return in main
	HasExit  bool
	Env      *Env
	Warnings []compiler.Diagnostic
}

// Interpreter walks the body of main, keeping a flat environment and the
// list of values passed to printf.
type Interpreter struct {
	logger *log.Logger

	env      *Env
	prints   []Value
	exit     Value
	hasExit  bool
	warnings []compiler.Diagnostic
}

func New(opts *Options) *Interpreter {
	o := opts.normalize()
	return &Interpreter{logger: o.Logger}
}

// Evaluate runs prog with default options.
func Evaluate(prog *compiler.Program) (*Result, error) {
	return New(nil).Run(prog)
}

// Run evaluates prog from a fresh environment. Only the function named main
// is executed. The returned error is non-nil only for fatal failures such as
// division by zero; anomalies are reported as warnings.
func (in *Interpreter) Run(prog *compiler.Program) (*Result, error) {
	in.env = NewEnv()
	in.prints = nil
	in.exit = Value{}
	in.hasExit = false
	in.warnings = nil

	if _, err := in.eval(prog); err != nil {
		return nil, err
	}
	return &Result{
		Prints:   in.prints,
		Exit:     in.exit,
		HasExit:  in.hasExit,
		Env:      in.env,
		Warnings: in.warnings,
	}, nil
}

func (in *Interpreter) warnf(format string, args ...any) {
	d := compiler.Warnf(0, format, args...)
	in.warnings = append(in.warnings, d)
	in.logger.Print(d)
}

// eval has one case per node variant. Statements evaluate to integer 0.
func (in *Interpreter) eval(n compiler.Node) (Value, error) {
	switch n := n.(type) {
	case *compiler.Program:
		for _, d := range n.Decls {
			if _, err := in.eval(d); err != nil {
				return Value{}, err
			}
		}
		return IntVal(0), nil

	case *compiler.FunctionDecl:
		if n.Name != "main" || n.Body == nil {
			return IntVal(0), nil
		}
		if _, err := in.eval(n.Body); err != nil {
			return Value{}, fmt.Errorf("in %s: %w", n.Name, err)
		}
		return IntVal(0), nil

	case *compiler.CompoundStmt:
		for _, item := range n.Items {
			if _, err := in.eval(item); err != nil {
				return Value{}, err
			}
		}
		return IntVal(0), nil

	case *compiler.Decl:
		if n.Init == nil {
			in.env.DeclareZero(n.Name, n.Type)
			return IntVal(0), nil
		}
		v, err := in.eval(n.Init)
		if err != nil {
			return Value{}, fmt.Errorf("declaration of %s: %w", n.Name, err)
		}
		in.env.Declare(n.Name, n.Type, v)
		return IntVal(0), nil

	case *compiler.Return:
		v := IntVal(0)
		if n.Expr != nil {
			var err error
			if v, err = in.eval(n.Expr); err != nil {
				return Value{}, err
			}
		}
		if !in.hasExit {
			in.exit, in.hasExit = v, true
		}
		return v, nil

	case *compiler.Constant:
		switch n.Kind {
		case compiler.ConstInt:
			return IntVal(n.Int), nil
		case compiler.ConstFloat:
			return FloatVal(n.Float), nil
		}
		in.warnf("string constant %s has no numeric value, using 0", n)
		return IntVal(0), nil

	case *compiler.Identifier:
		return in.env.Lookup(n.Name), nil

	case *compiler.BinaryOp:
		l, err := in.eval(n.Left)
		if err != nil {
			return Value{}, err
		}
		r, err := in.eval(n.Right)
		if err != nil {
			return Value{}, err
		}
		v, err := binary(n.Op, l, r)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", n, err)
		}
		return v, nil

	case *compiler.Assignment:
		id, ok := n.LValue.(*compiler.Identifier)
		if !ok {
			in.warnf("cannot assign to %s, using 0", n.LValue)
			return IntVal(0), nil
		}
		v, err := in.eval(n.RValue)
		if err != nil {
			return Value{}, fmt.Errorf("assignment to %s: %w", id.Name, err)
		}
		return in.env.Assign(id.Name, v), nil

	case *compiler.FuncCall:
		return in.call(n), nil

	default:
		in.warnf("no evaluation rule for %s, using 0", compiler.Label(n))
		return IntVal(0), nil
	}
}

// call handles printf(format, ident, ...). Other calls have no effect and
// their arguments are not evaluated.
func (in *Interpreter) call(c *compiler.FuncCall) Value {
	if c.Name != "printf" || len(c.Args) < 2 {
		return IntVal(0)
	}
	id, ok := c.Args[1].(*compiler.Identifier)
	if !ok {
		in.warnf("printf value %s is not a plain variable, ignored", c.Args[1])
		return IntVal(0)
	}

	v := in.env.Lookup(id.Name)
	if f, ok := c.Args[0].(*compiler.Constant); ok && f.Kind == compiler.ConstString {
		v = applyFormat(f.Text, v)
	}
	in.prints = append(in.prints, v)
	return IntVal(0)
}

// applyFormat coerces v by the conversions found in format: %d narrows
// whole floats to integers, %f and %lf force floating.
func applyFormat(format string, v Value) Value {
	switch {
	case strings.Contains(format, "%d"):
		return v.Narrow()
	case strings.Contains(format, "%f"), strings.Contains(format, "%lf"):
		return v.ToFloat()
	}
	return v
}

// binary applies op. + - * % and comparisons stay integral only when both
// operands are integers; / is truncating for two integers; & | ^ always
// work on integer-converted operands.
func binary(op string, l, r Value) (Value, error) {
	bothInt := l.Kind == Int && r.Kind == Int

	switch op {
	case "+", "-", "*":
		if bothInt {
			return IntVal(intArith(op, l.I, r.I)), nil
		}
		return FloatVal(floatArith(op, l.AsFloat(), r.AsFloat())), nil

	case "/":
		if bothInt {
			if r.I == 0 {
				return Value{}, ErrDivisionByZero
			}
			return IntVal(l.I / r.I), nil
		}
		if r.AsFloat() == 0 {
			return Value{}, ErrDivisionByZero
		}
		return FloatVal(l.AsFloat() / r.AsFloat()), nil

	case "%":
		if bothInt {
			if r.I == 0 {
				return Value{}, ErrDivisionByZero
			}
			return IntVal(l.I % r.I), nil
		}
		if r.AsFloat() == 0 {
			return Value{}, ErrDivisionByZero
		}
		return FloatVal(math.Mod(l.AsFloat(), r.AsFloat())), nil

	case "&":
		return IntVal(l.AsInt() & r.AsInt()), nil
	case "|":
		return IntVal(l.AsInt() | r.AsInt()), nil
	case "^":
		return IntVal(l.AsInt() ^ r.AsInt()), nil

	case "<", ">", "<=", ">=", "==", "!=":
		var cmp int
		if bothInt {
			cmp = compareInt(l.I, r.I)
		} else {
			cmp = compareFloat(l.AsFloat(), r.AsFloat())
		}
		if holds(op, cmp) {
			return IntVal(1), nil
		}
		return IntVal(0), nil
	}
	return Value{}, fmt.Errorf("unsupported operator %q", op)
}

func intArith(op string, a, b int64) int64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	}
	return a * b
}

func floatArith(op string, a, b float64) float64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	}
	return a * b
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareFloat returns 2 when either side is NaN, so only != holds.
func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	}
	return 2
}

func holds(op string, cmp int) bool {
	switch op {
	case "<":
		return cmp == -1
	case ">":
		return cmp == 1
	case "<=":
		return cmp == -1 || cmp == 0
	case ">=":
		return cmp == 1 || cmp == 0
	case "==":
		return cmp == 0
	}
	return cmp != 0
}
