package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *Block:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *VarDecl:
		Walk(n.Type, v)
		Walk(n.Name, v)
		Walk(n.Value, v)

	case *AssignStmt:
		Walk(n.Name, v)
		Walk(n.Value, v)

	case *CallStmt:
		Walk(n.Call, v)

	case *ShowStmt:
		Walk(n.X, v)

	case *TakeStmt:
		Walk(n.Name, v)

	case *WhenStmt:
		for _, c := range n.Cases {
			Walk(c, v)
		}
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *WhenCase:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *LoopStmt:
		Walk(n.Var, v)
		Walk(n.From, v)
		Walk(n.To, v)
		Walk(n.Body, v)

	case *FuncDef:
		Walk(n.Name, v)
		for _, p := range n.Params {
			Walk(p, v)
		}
		for _, s := range n.Body {
			Walk(s, v)
		}
		Walk(n.Result, v)

	case *Operation:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *UnaryExpr:
		Walk(n.X, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	// Leaf nodes: Name, BasicLit, BreakStmt
	// No children to visit
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
