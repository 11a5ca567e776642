package interp

import (
	"fmt"
	"sort"
	"strings"
)

// Env is the single flat variable table for one evaluation run. There are no
// nested scopes: every declaration anywhere in main lands here.
//
// Once a name has a declared type, every write to it is coerced to that type.
type Env struct {
	values map[string]Value
	types  map[string]string
}

func NewEnv() *Env {
	return &Env{
		values: make(map[string]Value),
		types:  make(map[string]string),
	}
}

// Declare records name with its declared type and stores v coerced to it.
// Redeclaring a name replaces both its type and its value.
func (e *Env) Declare(name, declType string, v Value) Value {
	e.types[name] = declType
	v = Coerce(v, declType)
	e.values[name] = v
	return v
}

// DeclareZero records name with its declared type and stores integer 0
// uncoerced, as for a declaration without initializer. Later writes are
// coerced through the recorded type.
func (e *Env) DeclareZero(name, declType string) Value {
	e.types[name] = declType
	e.values[name] = IntVal(0)
	return IntVal(0)
}

// Assign stores v into name, coerced to the name's declared type if it has
// one. Undeclared names use the rule for non-floating types.
func (e *Env) Assign(name string, v Value) Value {
	v = Coerce(v, e.types[name])
	e.values[name] = v
	return v
}

// Lookup returns the value of name, or integer 0 if it was never written.
func (e *Env) Lookup(name string) Value {
	return e.values[name]
}

// TypeOf returns the declared type of name.
func (e *Env) TypeOf(name string) (string, bool) {
	t, ok := e.types[name]
	return t, ok
}

// Names returns every variable name in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Env) String() string {
	var sb strings.Builder
	sb.WriteString("Environment\n")
	for _, name := range e.Names() {
		declType, ok := e.types[name]
		if !ok {
			declType = "?"
		}
		fmt.Fprintf(&sb, "  %-16s %-7s %s\n", name, declType, e.values[name])
	}
	return sb.String()
}
