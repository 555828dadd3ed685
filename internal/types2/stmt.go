package types2

import (
	"github.com/you-not-fish/nova/internal/syntax"
	"github.com/you-not-fish/nova/internal/types"
)

// stmts checks a list of statements, stopping at the first error.
func (c *Checker) stmts(list []syntax.Stmt) {
	for _, s := range list {
		if c.failed() {
			return
		}
		c.stmt(s)
	}
}

// stmt checks a single statement.
func (c *Checker) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.VarDecl:
		c.varDecl(s)

	case *syntax.AssignStmt:
		c.assignStmt(s)

	case *syntax.CallStmt:
		var x operand
		c.expr(&x, s.Call)

	case *syntax.ShowStmt:
		// any type can be shown
		var x operand
		c.expr(&x, s.X)

	case *syntax.TakeStmt:
		c.takeStmt(s)

	case *syntax.WhenStmt:
		c.whenStmt(s)

	case *syntax.LoopStmt:
		c.loopStmt(s)

	case *syntax.BreakStmt:
		if c.loopDepth == 0 {
			c.errorf(s.Pos(), "break outside loop")
		}

	case *syntax.FuncDef:
		c.funcDef(s)

	default:
		c.invalidAST(s.Pos(), "unexpected statement %T", s)
	}
}

// varDecl checks: Type Name = Value
// The initializer is checked before the name is bound, so it cannot refer
// to the variable being declared.
func (c *Checker) varDecl(d *syntax.VarDecl) {
	T := types.LookupType(d.Type.Value)
	if T == nil {
		c.invalidAST(d.Type.Pos(), "unknown type %s", d.Type.Value)
		return
	}

	var x operand
	c.expr(&x, d.Value)
	if x.mode == invalid {
		return
	}
	if !types.AssignableTo(x.typ, T) {
		c.errorf(d.Value.Pos(), "type mismatch: expected %s, got %s", T.Keyword(), x.typ)
		return
	}

	c.declare(d.Name, types.NewVar(d.Name.Pos(), d.Name.Value, T))
}

// assignStmt checks: Name = Value
func (c *Checker) assignStmt(s *syntax.AssignStmt) {
	v := c.lookupVar(s.Name)
	if v == nil {
		return
	}

	var x operand
	c.expr(&x, s.Value)
	if x.mode == invalid {
		return
	}

	T := v.Type()
	if !types.AssignableTo(x.typ, T) {
		c.errorf(s.Value.Pos(), "type mismatch in assignment to %s", keyword(T))
	}
}

// takeStmt checks: take Name
// The target may have any type.
func (c *Checker) takeStmt(s *syntax.TakeStmt) {
	c.lookupVar(s.Name)
}

// whenStmt checks a when/elsewhen/else chain.
// Each branch body and the else block get their own frame.
func (c *Checker) whenStmt(s *syntax.WhenStmt) {
	for _, cs := range s.Cases {
		var cond operand
		c.expr(&cond, cs.Cond)
		if cond.mode == invalid {
			return
		}
		if !types.IsBooleanType(cond.typ) {
			c.errorf(cs.Cond.Pos(), "when condition must be boolean, got %s", cond.typ)
			return
		}

		c.openScope(cs, cs.Body.Rbrace, "when")
		c.stmts(cs.Body.Stmts)
		c.closeScope()

		if c.failed() {
			return
		}
	}

	if s.Else != nil {
		c.openScope(s.Else, s.Else.Rbrace, "else")
		c.stmts(s.Else.Stmts)
		c.closeScope()
	}
}

// loopStmt checks: loop Var = From to To { Body }
// The loop variable is num and lives in the body frame only.
func (c *Checker) loopStmt(s *syntax.LoopStmt) {
	var from, to operand
	c.expr(&from, s.From)
	c.expr(&to, s.To)
	if from.mode == invalid || to.mode == invalid {
		return
	}
	if !types.IsNumeric(from.typ) {
		c.errorf(s.From.Pos(), "loop bounds must be num, got %s", from.typ)
		return
	}
	if !types.IsNumeric(to.typ) {
		c.errorf(s.To.Pos(), "loop bounds must be num, got %s", to.typ)
		return
	}

	c.openScope(s, s.Body.Rbrace, "loop")
	c.loopDepth++
	defer func() {
		c.loopDepth--
		c.closeScope()
	}()

	c.declare(s.Var, types.NewVar(s.Var.Pos(), s.Var.Value, types.Typ[types.Num]))
	c.stmts(s.Body.Stmts)
}

// lookupVar resolves a variable name, reporting an error if it is not
// declared in any enclosing frame.
func (c *Checker) lookupVar(name *syntax.Name) *types.Var {
	v, ok := c.lookup(name.Value).(*types.Var)
	if !ok {
		c.errorf(name.Pos(), "use of undeclared variable '%s'", name.Value)
		return nil
	}
	c.recordUse(name, v)
	return v
}

// keyword returns the declaration keyword for T (num, text or flag).
func keyword(T types.Type) string {
	if b, ok := T.(*types.Basic); ok {
		return b.Keyword()
	}
	return T.String()
}
