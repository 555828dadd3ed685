package types2

import (
	"github.com/you-not-fish/nova/internal/syntax"
	"github.com/you-not-fish/nova/internal/types"
)

// Checker is the semantic analyzer. A Checker is used for one program and
// owns all of its state, so independent runs share nothing.
type Checker struct {
	conf *Config
	info *Info

	// Scope stack: the innermost frame and its parent chain.
	root  *types.Scope // program frame
	scope *types.Scope // current frame

	// Function table, one namespace for the whole program.
	funcs map[string]*types.FuncObj

	// Control-flow context
	loopDepth int // enclosing loops (for break validation)
	funcDepth int // enclosing function definitions

	first *SemanticError // first error
}

// checkProgram checks all top-level statements in order.
func (c *Checker) checkProgram(prog *syntax.Program) {
	c.root = types.NewScope(nil, prog.Pos(), prog.End, "program")
	c.scope = c.root

	// Record program scope
	if c.info != nil {
		c.info.Scopes[prog] = c.root
	}

	c.stmts(prog.Stmts)
}

// openScope pushes a new frame as a child of the current scope.
func (c *Checker) openScope(n syntax.Node, end syntax.Pos, comment string) *types.Scope {
	s := types.NewScope(c.scope, n.Pos(), end, comment)
	c.scope = s
	if c.info != nil {
		c.info.Scopes[n] = s
	}
	return s
}

// closeScope pops the current frame.
func (c *Checker) closeScope() {
	c.scope = c.scope.Parent()
}

// lookup looks up a name in the current scope chain, innermost first.
func (c *Checker) lookup(name string) types.Object {
	obj, _ := c.scope.LookupParent(name)
	return obj
}

// declare declares a variable in the current frame.
// Reports an error if the name is already bound in this frame; bindings in
// outer frames may be shadowed.
func (c *Checker) declare(name *syntax.Name, obj types.Object) {
	if existing := c.scope.Insert(obj); existing != nil {
		c.errorf(name.Pos(), "redeclaration of variable '%s'", name.Value)
		return
	}
	c.recordDef(name, obj)
}

// recordDef records the object declared by name.
func (c *Checker) recordDef(name *syntax.Name, obj types.Object) {
	if c.info != nil {
		c.info.Defs[name] = obj
	}
}

// recordType records the type information for an expression.
func (c *Checker) recordType(e syntax.Expr, x *operand) {
	if c.info == nil {
		return
	}
	c.info.Types[e] = TypeAndValue{Type: x.typ}
}

// recordUse records a use of an object.
func (c *Checker) recordUse(name *syntax.Name, obj types.Object) {
	if c.info != nil {
		c.info.Uses[name] = obj
	}
}
