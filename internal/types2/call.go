package types2

import (
	"fmt"

	"github.com/you-not-fish/nova/internal/syntax"
	"github.com/you-not-fish/nova/internal/types"
)

// funcDef checks: func Name(Params...) { Body... back Result }
//
// The function is registered before its body is checked, so it may call
// itself. Parameters carry no annotation and are declared num in a fresh
// frame. The back expression is checked but not constrained; callers see
// every call as num.
func (c *Checker) funcDef(d *syntax.FuncDef) {
	if _, dup := c.funcs[d.Name.Value]; dup {
		c.errorf(d.Name.Pos(), "redeclaration of function '%s'", d.Name.Value)
		return
	}

	params := make([]*types.Var, len(d.Params))
	for i, p := range d.Params {
		params[i] = types.NewVar(p.Pos(), p.Value, types.Typ[types.Num])
	}
	fn := types.NewFuncObj(d.Name.Pos(), d.Name.Value, types.NewFunc(params, types.Typ[types.Num]))
	c.funcs[d.Name.Value] = fn
	c.recordDef(d.Name, fn)

	comment := "function " + d.Name.Value
	if c.funcDepth > 0 {
		comment = fmt.Sprintf("%s (nested, depth %d)", comment, c.funcDepth)
	}
	c.openScope(d, d.Rbrace, comment)
	c.funcDepth++
	defer func() {
		c.funcDepth--
		c.closeScope()
	}()

	for i, p := range d.Params {
		c.declare(p, params[i])
		if c.failed() {
			return
		}
	}

	c.stmts(d.Body)
	if c.failed() {
		return
	}

	var res operand
	c.expr(&res, d.Result)
}

// call checks a call: the callee must already be declared, the argument
// count must match, and each argument must check. The result is num.
func (c *Checker) call(x *operand, e *syntax.CallExpr) {
	fn, ok := c.funcs[e.Fun.Value]
	if !ok {
		c.errorf(e.Fun.Pos(), "call to undeclared function '%s'", e.Fun.Value)
		x.setInvalid(e.Pos())
		return
	}
	c.recordUse(e.Fun, fn)

	if len(e.Args) != fn.Arity() {
		c.errorf(e.Pos(), "function '%s' expects %d arguments, got %d", fn.Name(), fn.Arity(), len(e.Args))
		x.setInvalid(e.Pos())
		return
	}

	for _, arg := range e.Args {
		var a operand
		c.expr(&a, arg)
		if a.mode == invalid {
			x.setInvalid(e.Pos())
			return
		}
	}

	x.setValue(e.Pos(), fn.Signature().Result())
}
