package compiler

import "github.com/you-not-fish/nova/internal/syntax"

// Outline summarizes the declarations of a program.
type Outline struct {
	Funcs []FuncEntry `json:"funcs"`
	Vars  []VarEntry  `json:"vars"`
}

// FuncEntry describes one function definition, nested ones included.
type FuncEntry struct {
	Name   string   `json:"name"`
	Params []string `json:"params"`
	Line   int      `json:"line"`
}

// VarEntry describes a top-level variable declaration.
type VarEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Line int    `json:"line"`
}

// BuildOutline collects function definitions in source order and the
// variables declared at program level.
func BuildOutline(prog *syntax.Program) Outline {
	out := Outline{Funcs: []FuncEntry{}, Vars: []VarEntry{}}

	syntax.Inspect(prog, func(n syntax.Node) bool {
		switch n := n.(type) {
		case *syntax.FuncDef:
			params := make([]string, len(n.Params))
			for i, p := range n.Params {
				params[i] = p.Value
			}
			out.Funcs = append(out.Funcs, FuncEntry{Name: n.Name.Value, Params: params, Line: n.Pos().Line()})
		case syntax.Expr:
			return false
		}
		return true
	})

	for _, s := range prog.Stmts {
		if d, ok := s.(*syntax.VarDecl); ok {
			out.Vars = append(out.Vars, VarEntry{Name: d.Name.Value, Type: d.Type.Value, Line: d.Pos().Line()})
		}
	}
	return out
}
