package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

// FprintTyped is like Fprint but appends the result of typeOf to every
// expression line. typeOf returns "" for expressions it knows nothing about.
func FprintTyped(w io.Writer, node Node, typeOf func(Expr) string) {
	p := &printer{w: w, typeOf: typeOf}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
	typeOf func(Expr) string
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// typ returns the " : T" suffix for an expression line.
func (p *printer) typ(e Expr) string {
	if p.typeOf == nil {
		return ""
	}
	if t := p.typeOf(e); t != "" {
		return " : " + t
	}
	return ""
}

// field prints a labelled child one level deeper.
func (p *printer) field(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) stmts(label string, list []Stmt) {
	if len(list) == 0 {
		return
	}
	p.printf("%s:\n", label)
	p.indent++
	for _, s := range list {
		p.print(s)
	}
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *Block:
		p.printf("Block %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *VarDecl:
		p.printf("VarDecl %s %s %s\n", n.pos, n.Type.Value, n.Name.Value)
		p.indent++
		p.field("Value", n.Value)
		p.indent--

	case *AssignStmt:
		p.printf("AssignStmt %s %s\n", n.pos, n.Name.Value)
		p.indent++
		p.field("Value", n.Value)
		p.indent--

	case *CallStmt:
		p.printf("CallStmt %s\n", n.pos)
		p.indent++
		p.print(n.Call)
		p.indent--

	case *ShowStmt:
		p.printf("ShowStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *TakeStmt:
		p.printf("TakeStmt %s %s\n", n.pos, n.Name.Value)

	case *WhenStmt:
		p.printf("WhenStmt %s\n", n.pos)
		p.indent++
		for _, c := range n.Cases {
			p.print(c)
		}
		if n.Else != nil {
			p.field("Else", n.Else)
		}
		p.indent--

	case *WhenCase:
		p.printf("Case %s\n", n.pos)
		p.indent++
		p.field("Cond", n.Cond)
		p.field("Body", n.Body)
		p.indent--

	case *LoopStmt:
		p.printf("LoopStmt %s %s\n", n.pos, n.Var.Value)
		p.indent++
		p.field("From", n.From)
		p.field("To", n.To)
		p.field("Body", n.Body)
		p.indent--

	case *BreakStmt:
		p.printf("BreakStmt %s\n", n.pos)

	case *FuncDef:
		p.printf("FuncDef %s %s\n", n.pos, n.Name.Value)
		p.indent++
		if len(n.Params) > 0 {
			names := make([]string, len(n.Params))
			for i, x := range n.Params {
				names[i] = x.Value
			}
			p.printf("Params: %s\n", strings.Join(names, ", "))
		}
		p.stmts("Body", n.Body)
		p.field("Back", n.Result)
		p.indent--

	case *Name:
		p.printf("Name %s %q%s\n", n.pos, n.Value, p.typ(n))

	case *BasicLit:
		p.printf("BasicLit %s %s %q%s\n", n.pos, n.Kind, n.Value, p.typ(n))

	case *Operation:
		p.printf("BinaryOp %s %s%s\n", n.pos, n.Op, p.typ(n))
		p.indent++
		p.field("X", n.X)
		p.field("Y", n.Y)
		p.indent--

	case *UnaryExpr:
		p.printf("UnaryOp %s %s%s\n", n.pos, n.Op, p.typ(n))
		p.indent++
		p.print(n.X)
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s %s%s\n", n.pos, n.Fun.Value, p.typ(n))
		if len(n.Args) > 0 {
			p.indent++
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent -= 2
		}

	default:
		p.printf("<%T>\n", node)
	}
}

// ExprString returns a compact source-like rendering of an expression,
// fully parenthesized for binary operations.
func ExprString(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	switch x := e.(type) {
	case *Name:
		return x.Value
	case *BasicLit:
		if x.Kind == TextLit {
			return `"` + x.Value + `"`
		}
		return x.Value
	case *Operation:
		return "(" + ExprString(x.X) + " " + x.Op.String() + " " + ExprString(x.Y) + ")"
	case *UnaryExpr:
		return x.Op.String() + ExprString(x.X)
	case *CallExpr:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = ExprString(a)
		}
		return x.Fun.Value + "(" + strings.Join(args, ", ") + ")"
	default:
		return fmt.Sprintf("<%T>", e)
	}
}
