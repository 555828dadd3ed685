package types2

import (
	"github.com/you-not-fish/nova/internal/syntax"
	"github.com/you-not-fish/nova/internal/types"
)

// operandMode describes the mode of an operand.
type operandMode int

const (
	invalid  operandMode = iota // operand is invalid
	variable                    // operand is a variable
	value                       // operand is a computed value
)

// operand represents the result of evaluating an expression.
type operand struct {
	mode operandMode
	pos  syntax.Pos
	typ  types.Type
	expr syntax.Expr // source expression (for error reporting)
}

// String returns a string representation of the operand for debugging.
func (x *operand) String() string {
	if x.mode == invalid {
		return "invalid operand"
	}
	if x.typ == nil {
		return "operand without type"
	}
	return x.typ.String()
}

// setVar sets the operand to a variable.
func (x *operand) setVar(pos syntax.Pos, typ types.Type) {
	x.mode = variable
	x.pos = pos
	x.typ = typ
}

// setValue sets the operand to a computed value.
func (x *operand) setValue(pos syntax.Pos, typ types.Type) {
	x.mode = value
	x.pos = pos
	x.typ = typ
}

// setInvalid sets the operand to invalid.
func (x *operand) setInvalid(pos syntax.Pos) {
	x.mode = invalid
	x.pos = pos
	x.typ = nil
}
