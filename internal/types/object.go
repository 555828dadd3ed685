package types

import "github.com/you-not-fish/nova/internal/syntax"

// Object represents a declared entity: a variable, a type name, or a function.
type Object interface {
	Name() string    // object name
	Type() Type      // object type
	Pos() syntax.Pos // declaration position
	Parent() *Scope  // enclosing scope

	setParent(*Scope) // internal: set parent scope
	aObject()         // marker method to restrict implementations
}

// object is the base struct for all objects.
type object struct {
	name   string
	typ    Type
	pos    syntax.Pos
	parent *Scope
}

func (o *object) Name() string       { return o.name }
func (o *object) Type() Type         { return o.typ }
func (o *object) Pos() syntax.Pos    { return o.pos }
func (o *object) Parent() *Scope     { return o.parent }
func (o *object) setParent(s *Scope) { o.parent = s }
func (*object) aObject()             {}

// Var represents a variable, a loop variable or a function parameter.
type Var struct {
	object
}

// NewVar creates a new variable object.
func NewVar(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}}
}

// TypeName represents a predeclared type keyword.
type TypeName struct {
	object
}

// NewTypeName creates a new type name object.
func NewTypeName(pos syntax.Pos, name string, typ Type) *TypeName {
	return &TypeName{object: object{name: name, typ: typ, pos: pos}}
}

// FuncObj represents a declared function.
// Functions live in their own namespace, apart from variables.
type FuncObj struct {
	object
	sig *Func
}

// NewFuncObj creates a new function object with the given signature.
func NewFuncObj(pos syntax.Pos, name string, sig *Func) *FuncObj {
	return &FuncObj{object: object{name: name, typ: sig, pos: pos}, sig: sig}
}

// Signature returns the function signature.
func (f *FuncObj) Signature() *Func {
	return f.sig
}

// Arity returns the number of parameters the function expects.
func (f *FuncObj) Arity() int {
	return f.sig.NumParams()
}
