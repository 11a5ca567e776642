package interp

import (
	"math"
	"strconv"

	"ceval/pkg/compiler"
)

// Kind tags a Value as integer or floating.
type Kind int

const (
	Int Kind = iota
	Float
)

func (k Kind) String() string {
	if k == Float {
		return "float"
	}
	return "int"
}

// Value is a tagged number. I is meaningful when Kind is Int, F when Float.
type Value struct {
	Kind Kind
	I    int64
	F    float64
}

// IntVal returns an integer Value.
func IntVal(i int64) Value { return Value{Kind: Int, I: i} }

// FloatVal returns a floating Value.
func FloatVal(f float64) Value { return Value{Kind: Float, F: f} }

// AsFloat widens v to float64.
func (v Value) AsFloat() float64 {
	if v.Kind == Float {
		return v.F
	}
	return float64(v.I)
}

// AsInt truncates v toward zero.
func (v Value) AsInt() int64 {
	if v.Kind == Float {
		return int64(v.F)
	}
	return v.I
}

// ToFloat returns v as a floating Value.
func (v Value) ToFloat() Value { return FloatVal(v.AsFloat()) }

// Narrow converts a whole-valued floating Value to an integer one.
// Integers and floats with a fractional part are returned unchanged.
func (v Value) Narrow() Value {
	if v.Kind == Float && v.F == math.Trunc(v.F) && !math.IsInf(v.F, 0) &&
		v.F >= math.MinInt64 && v.F < math.MaxInt64 {
		return IntVal(int64(v.F))
	}
	return v
}

// Coerce applies the storage rule for a variable of the given declared type:
// float and double force floating, every other type narrows whole floats.
func Coerce(v Value, declType string) Value {
	switch declType {
	case "float", "double":
		return v.ToFloat()
	default:
		return v.Narrow()
	}
}

// String renders v the way the results are reported: integers in decimal,
// floats in shortest form that always shows a point or an exponent.
func (v Value) String() string {
	if v.Kind == Int {
		return strconv.FormatInt(v.I, 10)
	}
	return compiler.FormatFloat(v.F)
}
