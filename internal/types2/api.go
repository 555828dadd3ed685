package types2

import (
	"github.com/you-not-fish/nova/internal/syntax"
	"github.com/you-not-fish/nova/internal/types"
)

// Config specifies the configuration for type checking.
type Config struct {
	// Error is called with the semantic error that stops checking.
	// If nil, the error is only returned.
	Error ErrorHandler
}

// Info holds the results of type checking.
type Info struct {
	// Types maps expressions to their type information.
	Types map[syntax.Expr]TypeAndValue

	// Defs maps defining identifiers to their declared objects.
	// Variable, loop variable and parameter names map to a Var;
	// function names map to a FuncObj.
	Defs map[*syntax.Name]types.Object

	// Uses maps referencing identifiers to their referenced objects.
	// This includes variable reads, assignment and take targets, and
	// callee names of calls.
	Uses map[*syntax.Name]types.Object

	// Scopes maps AST nodes to the scope frames they open:
	// Program, WhenCase, the else Block, LoopStmt and FuncDef.
	Scopes map[syntax.Node]*types.Scope
}

// TypeOf returns the type of expression e, or nil if not recorded.
func (info *Info) TypeOf(e syntax.Expr) types.Type {
	if tv, ok := info.Types[e]; ok {
		return tv.Type
	}
	return nil
}

// TypeAndValue holds the type information for an expression.
type TypeAndValue struct {
	Type types.Type
}

// Check type-checks a parsed program.
// It returns the program's root scope and the first semantic error, if any.
// Checking stops at the first error; the error is a *SemanticError.
func Check(prog *syntax.Program, conf *Config, info *Info) (*types.Scope, error) {
	if conf == nil {
		conf = &Config{}
	}

	// Initialize info maps if not provided
	if info != nil {
		if info.Types == nil {
			info.Types = make(map[syntax.Expr]TypeAndValue)
		}
		if info.Defs == nil {
			info.Defs = make(map[*syntax.Name]types.Object)
		}
		if info.Uses == nil {
			info.Uses = make(map[*syntax.Name]types.Object)
		}
		if info.Scopes == nil {
			info.Scopes = make(map[syntax.Node]*types.Scope)
		}
	}

	c := &Checker{
		conf:  conf,
		info:  info,
		funcs: make(map[string]*types.FuncObj),
	}

	c.checkProgram(prog)

	if c.first != nil {
		return c.root, c.first
	}
	return c.root, nil
}
