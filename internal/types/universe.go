package types

import "github.com/you-not-fish/nova/internal/syntax"

// NoPos is the zero position value, used for predeclared objects.
var NoPos syntax.Pos

// Universe is the scope holding the type keywords num, text and flag.
// It is filled once at init and never modified afterwards; checker scopes
// are separate roots so that concurrent runs share nothing mutable.
var Universe *Scope

func init() {
	Universe = NewScope(nil, NoPos, NoPos, "universe")
	defPredeclaredTypes()
}

// defPredeclaredTypes defines num, text and flag in Universe.
func defPredeclaredTypes() {
	for _, kind := range []BasicKind{Num, Text, Bool} {
		typ := Typ[kind]
		Universe.Insert(NewTypeName(NoPos, typ.keyword, typ))
	}
}

// LookupType returns the basic type declared by the given type keyword,
// or nil if keyword does not name a type.
func LookupType(keyword string) *Basic {
	tn, ok := Universe.Lookup(keyword).(*TypeName)
	if !ok {
		return nil
	}
	return tn.Type().(*Basic)
}
