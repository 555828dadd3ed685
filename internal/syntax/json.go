package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]interface{}{
			"type":  "Program",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts, stmtJSON),
		}

	case *Block:
		return map[string]interface{}{
			"type":  "Block",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts, stmtJSON),
		}

	case *VarDecl:
		return map[string]interface{}{
			"type":    "VarDecl",
			"pos":     n.pos.String(),
			"vartype": n.Type.Value,
			"name":    n.Name.Value,
			"value":   toJSON(n.Value),
		}

	case *AssignStmt:
		return map[string]interface{}{
			"type":  "AssignStmt",
			"pos":   n.pos.String(),
			"name":  n.Name.Value,
			"value": toJSON(n.Value),
		}

	case *CallStmt:
		return map[string]interface{}{
			"type": "CallStmt",
			"pos":  n.pos.String(),
			"call": toJSON(n.Call),
		}

	case *ShowStmt:
		return map[string]interface{}{
			"type": "ShowStmt",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *TakeStmt:
		return map[string]interface{}{
			"type": "TakeStmt",
			"pos":  n.pos.String(),
			"name": n.Name.Value,
		}

	case *WhenStmt:
		m := map[string]interface{}{
			"type":  "WhenStmt",
			"pos":   n.pos.String(),
			"cases": mapSlice(n.Cases, func(c *WhenCase) interface{} { return toJSON(c) }),
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		return m

	case *WhenCase:
		return map[string]interface{}{
			"type": "WhenCase",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *LoopStmt:
		return map[string]interface{}{
			"type": "LoopStmt",
			"pos":  n.pos.String(),
			"var":  n.Var.Value,
			"from": toJSON(n.From),
			"to":   toJSON(n.To),
			"body": toJSON(n.Body),
		}

	case *BreakStmt:
		return map[string]interface{}{
			"type": "BreakStmt",
			"pos":  n.pos.String(),
		}

	case *FuncDef:
		return map[string]interface{}{
			"type":   "FuncDef",
			"pos":    n.pos.String(),
			"name":   n.Name.Value,
			"params": mapSlice(n.Params, func(x *Name) interface{} { return x.Value }),
			"body":   mapSlice(n.Body, stmtJSON),
			"back":   toJSON(n.Result),
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *BasicLit:
		return map[string]interface{}{
			"type":  "BasicLit",
			"pos":   n.pos.String(),
			"kind":  n.Kind.String(),
			"value": n.Value,
		}

	case *Operation:
		return map[string]interface{}{
			"type": "Operation",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *UnaryExpr:
		return map[string]interface{}{
			"type": "UnaryExpr",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
		}

	case *CallExpr:
		return map[string]interface{}{
			"type": "CallExpr",
			"pos":  n.pos.String(),
			"fun":  n.Fun.Value,
			"args": mapSlice(n.Args, func(a Expr) interface{} { return toJSON(a) }),
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

func stmtJSON(s Stmt) interface{} { return toJSON(s) }

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
