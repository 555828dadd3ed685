// Package types implements the type system for the nova language.
// This package provides type representations without AST dependencies.
package types

// Type is the interface implemented by all types.
type Type interface {
	// Underlying returns the underlying type.
	// Every nova type is its own underlying type.
	Underlying() Type

	// String returns a human-readable representation of the type.
	String() string

	// aType is a marker method to restrict implementations to this package.
	aType()
}

// typ is a base struct for all type implementations.
type typ struct{}

func (typ) aType() {}
