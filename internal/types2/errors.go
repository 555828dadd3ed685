// Package types2 implements semantic analysis for the nova language:
// scoping, declaration and type rules over a parsed program.
package types2

import (
	"fmt"

	"github.com/you-not-fish/nova/internal/syntax"
)

// SemanticError represents a violated static rule.
type SemanticError struct {
	Pos syntax.Pos // position of the offending node
	Msg string
}

// Error implements the error interface.
func (e *SemanticError) Error() string {
	if !e.Pos.IsValid() {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrorHandler is a function called for the semantic error.
type ErrorHandler func(pos syntax.Pos, msg string)

// errorf reports a semantic error at the given position.
// Only the first error is kept; checking unwinds once it is set.
func (c *Checker) errorf(pos syntax.Pos, format string, args ...interface{}) {
	if c.first != nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	c.first = &SemanticError{Pos: pos, Msg: msg}

	if c.conf.Error != nil {
		c.conf.Error(pos, msg)
	}
}

// failed reports whether an error has been reported.
func (c *Checker) failed() bool {
	return c.first != nil
}

// invalidAST reports an invalid AST error.
func (c *Checker) invalidAST(pos syntax.Pos, format string, args ...interface{}) {
	c.errorf(pos, "invalid AST: "+format, args...)
}
