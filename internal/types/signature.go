package types

import "strings"

// Func represents a function signature.
// nova parameters carry no type annotation; the checker types them num.
type Func struct {
	typ
	params []*Var // parameters
	result Type   // type of the back expression as seen by callers
}

// NewFunc creates a new function signature.
func NewFunc(params []*Var, result Type) *Func {
	return &Func{params: params, result: result}
}

// Params returns the parameters.
func (f *Func) Params() []*Var {
	return f.params
}

// NumParams returns the number of parameters.
func (f *Func) NumParams() int {
	return len(f.params)
}

// Param returns the i'th parameter.
func (f *Func) Param(i int) *Var {
	return f.params[i]
}

// Result returns the result type.
func (f *Func) Result() Type {
	return f.result
}

// Underlying implements Type.
func (f *Func) Underlying() Type {
	return f
}

// String implements Type.
func (f *Func) String() string {
	var buf strings.Builder
	buf.WriteString("func(")
	for i, p := range f.params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.Name())
		buf.WriteByte(' ')
		buf.WriteString(typeString(p.Type()))
	}
	buf.WriteByte(')')
	if f.result != nil {
		buf.WriteByte(' ')
		buf.WriteString(typeString(f.result))
	}
	return buf.String()
}

func typeString(t Type) string {
	if t == nil {
		return "invalid"
	}
	return t.String()
}
