package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 2 classes of nodes: Expressions and Statements. Both embed the
// unexported node base, so the set of implementations is closed to this
// package and consumers switch over the concrete types.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type expr struct{ node }

func (*expr) aExpr() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Program

// Program is a complete source text: start Stmts... end
type Program struct {
	node
	Stmts []Stmt
	End   Pos // position of the end keyword
}

// Block is a braced statement list: { Stmts... }
type Block struct {
	node
	Stmts  []Stmt
	Rbrace Pos // position of closing brace
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string
}

// BasicLit represents a number, text or boolean literal.
type BasicLit struct {
	expr
	Value string  // digits, string contents without quotes, "true" or "false"
	Kind  LitKind // NumLit, TextLit, BoolLit
}

// Operation represents a binary operation: X Op Y
type Operation struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// UnaryExpr represents a prefix operation: Op X (only - in nova).
type UnaryExpr struct {
	expr
	Op Token
	X  Expr
}

// CallExpr represents a function call: Fun(Args...)
type CallExpr struct {
	expr
	Fun  *Name
	Args []Expr
}

// ----------------------------------------------------------------------------
// Statements

// VarDecl represents a variable declaration: Type Name = Value
type VarDecl struct {
	stmt
	Type  *Name // num, text or flag
	Name  *Name
	Value Expr
}

// AssignStmt represents an assignment: Name = Value
type AssignStmt struct {
	stmt
	Name  *Name
	Value Expr
}

// CallStmt represents a call whose result is discarded.
type CallStmt struct {
	stmt
	Call *CallExpr
}

// ShowStmt represents show X
type ShowStmt struct {
	stmt
	X Expr
}

// TakeStmt represents take Name
type TakeStmt struct {
	stmt
	Name *Name
}

// WhenCase is one condition/body pair of a when chain.
type WhenCase struct {
	node
	Cond Expr
	Body *Block
}

// WhenStmt represents
//
//	when Cond { } elsewhen Cond { } ... else { }
//
// Cases holds the when case followed by the elsewhen cases in source order;
// it is never empty. Else is nil when there is no else block.
type WhenStmt struct {
	stmt
	Cases []*WhenCase
	Else  *Block
}

// LoopStmt represents loop Var = From to To { Body }
type LoopStmt struct {
	stmt
	Var  *Name
	From Expr
	To   Expr
	Body *Block
}

// BreakStmt represents break
type BreakStmt struct {
	stmt
}

// FuncDef represents func Name(Params...) { Body... back Result }
type FuncDef struct {
	stmt
	Name   *Name
	Params []*Name
	Body   []Stmt
	Result Expr // the back expression, always present
	Rbrace Pos
}
