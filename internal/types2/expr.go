package types2

import (
	"github.com/you-not-fish/nova/internal/syntax"
	"github.com/you-not-fish/nova/internal/types"
)

// expr evaluates an expression and sets x to the result.
func (c *Checker) expr(x *operand, e syntax.Expr) {
	c.exprInternal(x, e)

	// Record type information
	if x.mode != invalid {
		c.recordType(e, x)
	}
}

// exprInternal is the main expression checking function.
func (c *Checker) exprInternal(x *operand, e syntax.Expr) {
	x.mode = invalid
	x.pos = e.Pos()
	x.expr = e

	switch e := e.(type) {
	case *syntax.Name:
		c.ident(x, e)
	case *syntax.BasicLit:
		c.basicLit(x, e)
	case *syntax.Operation:
		c.binary(x, e)
	case *syntax.UnaryExpr:
		c.unary(x, e)
	case *syntax.CallExpr:
		c.call(x, e)
	default:
		c.invalidAST(e.Pos(), "unexpected expression %T", e)
	}
}

// ident evaluates a variable reference.
func (c *Checker) ident(x *operand, name *syntax.Name) {
	v := c.lookupVar(name)
	if v == nil {
		x.setInvalid(name.Pos())
		return
	}
	x.setVar(name.Pos(), v.Type())
}

// basicLit evaluates a number, text or boolean literal.
func (c *Checker) basicLit(x *operand, lit *syntax.BasicLit) {
	switch lit.Kind {
	case syntax.NumLit:
		x.setValue(lit.Pos(), types.Typ[types.Num])
	case syntax.TextLit:
		x.setValue(lit.Pos(), types.Typ[types.Text])
	case syntax.BoolLit:
		x.setValue(lit.Pos(), types.Typ[types.Bool])
	default:
		c.invalidAST(lit.Pos(), "unknown literal kind %s", lit.Kind)
		x.setInvalid(lit.Pos())
	}
}

// unary evaluates a unary minus.
func (c *Checker) unary(x *operand, e *syntax.UnaryExpr) {
	c.expr(x, e.X)
	if x.mode == invalid {
		return
	}

	if e.Op != syntax.Sub {
		c.invalidAST(e.Pos(), "unknown unary operator %s", e.Op)
		x.setInvalid(e.Pos())
		return
	}
	if !types.IsNumeric(x.typ) {
		c.errorf(e.Pos(), "unary minus on non-num operand %s", x.typ)
		x.setInvalid(e.Pos())
		return
	}
	x.setValue(e.Pos(), x.typ)
}

// binary evaluates a binary operation. Both operands are checked before
// the operator rule is applied.
func (c *Checker) binary(x *operand, e *syntax.Operation) {
	var y operand
	c.expr(x, e.X)
	c.expr(&y, e.Y)
	if x.mode == invalid || y.mode == invalid {
		x.setInvalid(e.Pos())
		return
	}

	switch {
	case e.Op.IsArithmetic():
		c.arithmetic(x, &y, e)
	case e.Op.IsComparison():
		c.comparison(x, &y, e)
	default:
		c.invalidAST(e.Pos(), "unknown binary operator %s", e.Op)
		x.setInvalid(e.Pos())
	}
}

// arithmetic checks + - * /.
// num op num yields num; text + text yields text.
func (c *Checker) arithmetic(x, y *operand, e *syntax.Operation) {
	switch {
	case types.IsNumeric(x.typ) && types.IsNumeric(y.typ):
		x.setValue(e.Pos(), types.Typ[types.Num])
	case e.Op == syntax.Add && types.IsTextType(x.typ) && types.IsTextType(y.typ):
		x.setValue(e.Pos(), types.Typ[types.Text])
	default:
		c.errorf(e.Pos(), "invalid operands for arithmetic: %s %s %s", x.typ, e.Op, y.typ)
		x.setInvalid(e.Pos())
	}
}

// comparison checks == != < <= > >=.
// Both operands must have the same type; the result is bool.
func (c *Checker) comparison(x, y *operand, e *syntax.Operation) {
	if !types.Identical(x.typ, y.typ) {
		c.errorf(e.Pos(), "type mismatch in comparison: %s %s %s", x.typ, e.Op, y.typ)
		x.setInvalid(e.Pos())
		return
	}
	x.setValue(e.Pos(), types.Typ[types.Bool])
}
