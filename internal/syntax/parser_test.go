package syntax

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ----------------------------------------------------------------------------
// Test helpers

func parseProgram(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := Parse("test.nova", src)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	if prog == nil {
		t.Fatal("Parse returned nil program without error")
	}
	return prog
}

func parseExpr(t *testing.T, src string) Expr {
	t.Helper()
	prog := parseProgram(t, "start show "+src+" end")
	if len(prog.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Stmts))
	}
	return prog.Stmts[0].(*ShowStmt).X
}

func parseErr(t *testing.T, src string) *ParseError {
	t.Helper()
	prog, err := Parse("test.nova", src)
	if err == nil {
		t.Fatalf("Parse(%q) succeeded, want error", src)
	}
	if prog != nil {
		t.Errorf("Parse(%q) returned a program along with error %v", src, err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Parse(%q) error = %T (%v), want *ParseError", src, err, err)
	}
	return perr
}

func exprSummary(e Expr) string {
	switch x := e.(type) {
	case *Name:
		return x.Value
	case *BasicLit:
		if x.Kind == TextLit {
			return `"` + x.Value + `"`
		}
		return x.Value
	case *Operation:
		return "Op{" + x.Op.String() + "," + exprSummary(x.X) + "," + exprSummary(x.Y) + "}"
	case *UnaryExpr:
		return "Op{" + x.Op.String() + "," + exprSummary(x.X) + "}"
	case *CallExpr:
		var args []string
		for _, a := range x.Args {
			args = append(args, exprSummary(a))
		}
		return "Call{" + x.Fun.Value + ",[" + strings.Join(args, ",") + "]}"
	default:
		return "<unknown>"
	}
}

// ----------------------------------------------------------------------------
// Program structure

func TestParseMinimal(t *testing.T) {
	prog := parseProgram(t, "start show 1 end")

	if len(prog.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Stmts))
	}
	show, ok := prog.Stmts[0].(*ShowStmt)
	if !ok {
		t.Fatalf("stmt is %T, want *ShowStmt", prog.Stmts[0])
	}
	lit, ok := show.X.(*BasicLit)
	if !ok {
		t.Fatalf("show operand is %T, want *BasicLit", show.X)
	}
	if lit.Kind != NumLit || lit.Value != "1" {
		t.Errorf("literal = %s %q, want num \"1\"", lit.Kind, lit.Value)
	}
}

func TestParseEmptyProgram(t *testing.T) {
	prog := parseProgram(t, "start\nend\n")
	if len(prog.Stmts) != 0 {
		t.Errorf("got %d statements, want 0", len(prog.Stmts))
	}
	if prog.End.Line() != 2 || prog.End.Col() != 1 {
		t.Errorf("End = %s, want 2:1", prog.End)
	}
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // type of the first statement
	}{
		{"var_num", "num x = 1", "*syntax.VarDecl"},
		{"var_text", `text s = "hi"`, "*syntax.VarDecl"},
		{"var_flag", "flag f = true", "*syntax.VarDecl"},
		{"assign", "x = x + 1", "*syntax.AssignStmt"},
		{"call", "f(1, 2)", "*syntax.CallStmt"},
		{"call_no_args", "f()", "*syntax.CallStmt"},
		{"show", `show "hello"`, "*syntax.ShowStmt"},
		{"take", "take x", "*syntax.TakeStmt"},
		{"when", "when x > 0 { show x }", "*syntax.WhenStmt"},
		{"loop", "loop i = 1 to 10 { show i }", "*syntax.LoopStmt"},
		{"break", "break", "*syntax.BreakStmt"},
		{"func", "func f(a) { back a }", "*syntax.FuncDef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parseProgram(t, "start "+tt.src+" end")
			if len(prog.Stmts) != 1 {
				t.Fatalf("got %d statements, want 1", len(prog.Stmts))
			}
			got := typeName(prog.Stmts[0])
			if got != tt.want {
				t.Errorf("stmt type = %s, want %s", got, tt.want)
			}
		})
	}
}

func typeName(n Node) string {
	switch n.(type) {
	case *VarDecl:
		return "*syntax.VarDecl"
	case *AssignStmt:
		return "*syntax.AssignStmt"
	case *CallStmt:
		return "*syntax.CallStmt"
	case *ShowStmt:
		return "*syntax.ShowStmt"
	case *TakeStmt:
		return "*syntax.TakeStmt"
	case *WhenStmt:
		return "*syntax.WhenStmt"
	case *LoopStmt:
		return "*syntax.LoopStmt"
	case *BreakStmt:
		return "*syntax.BreakStmt"
	case *FuncDef:
		return "*syntax.FuncDef"
	}
	return "unknown"
}

func TestParseVarDecl(t *testing.T) {
	tests := []struct {
		src      string
		wantType string
		wantName string
		wantKind LitKind
	}{
		{"num x = 5", "num", "x", NumLit},
		{`text greeting = "hello world"`, "text", "greeting", TextLit},
		{"flag done = false", "flag", "done", BoolLit},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			prog := parseProgram(t, "start "+tt.src+" end")
			d := prog.Stmts[0].(*VarDecl)
			if d.Type.Value != tt.wantType {
				t.Errorf("Type = %q, want %q", d.Type.Value, tt.wantType)
			}
			if d.Name.Value != tt.wantName {
				t.Errorf("Name = %q, want %q", d.Name.Value, tt.wantName)
			}
			lit, ok := d.Value.(*BasicLit)
			if !ok {
				t.Fatalf("Value is %T, want *BasicLit", d.Value)
			}
			if lit.Kind != tt.wantKind {
				t.Errorf("Kind = %s, want %s", lit.Kind, tt.wantKind)
			}
		})
	}
}

func TestParseStringLiteralStripsQuotes(t *testing.T) {
	lit := parseExpr(t, `"a b c"`).(*BasicLit)
	if lit.Value != "a b c" {
		t.Errorf("Value = %q, want %q", lit.Value, "a b c")
	}
}

func TestParseWhenChain(t *testing.T) {
	src := `start
when x > 10 {
  show "big"
} elsewhen x > 5 {
  show "medium"
} elsewhen x > 0 {
} else {
  show "small"
  show x
}
end`
	prog := parseProgram(t, src)
	w := prog.Stmts[0].(*WhenStmt)

	if len(w.Cases) != 3 {
		t.Fatalf("got %d cases, want 3", len(w.Cases))
	}
	wantConds := []string{"Op{>,x,10}", "Op{>,x,5}", "Op{>,x,0}"}
	wantBodies := []int{1, 1, 0}
	for i, c := range w.Cases {
		if got := exprSummary(c.Cond); got != wantConds[i] {
			t.Errorf("case %d cond = %s, want %s", i, got, wantConds[i])
		}
		if len(c.Body.Stmts) != wantBodies[i] {
			t.Errorf("case %d has %d statements, want %d", i, len(c.Body.Stmts), wantBodies[i])
		}
	}
	if w.Else == nil {
		t.Fatal("Else is nil")
	}
	if len(w.Else.Stmts) != 2 {
		t.Errorf("else has %d statements, want 2", len(w.Else.Stmts))
	}
}

func TestParseWhenWithoutElse(t *testing.T) {
	prog := parseProgram(t, "start when true { } end")
	w := prog.Stmts[0].(*WhenStmt)
	if len(w.Cases) != 1 {
		t.Errorf("got %d cases, want 1", len(w.Cases))
	}
	if w.Else != nil {
		t.Error("Else should be nil")
	}
}

func TestParseLoop(t *testing.T) {
	prog := parseProgram(t, "start loop i = 1 to n + 1 { show i break } end")
	l := prog.Stmts[0].(*LoopStmt)

	if l.Var.Value != "i" {
		t.Errorf("Var = %q, want i", l.Var.Value)
	}
	if got := exprSummary(l.From); got != "1" {
		t.Errorf("From = %s, want 1", got)
	}
	if got := exprSummary(l.To); got != "Op{+,n,1}" {
		t.Errorf("To = %s, want Op{+,n,1}", got)
	}
	if len(l.Body.Stmts) != 2 {
		t.Fatalf("body has %d statements, want 2", len(l.Body.Stmts))
	}
	if _, ok := l.Body.Stmts[1].(*BreakStmt); !ok {
		t.Errorf("body[1] is %T, want *BreakStmt", l.Body.Stmts[1])
	}
}

func TestParseFuncDef(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantParams []string
		wantBody   int
		wantResult string
	}{
		{"no_params", "func zero() { back 0 }", nil, 0, "0"},
		{"one_param", "func id(a) { back a }", []string{"a"}, 0, "a"},
		{"two_params", "func add(a, b) { num s = a + b back s }", []string{"a", "b"}, 1, "s"},
		{"call_result", "func f(n) { show n back f(n - 1) }", []string{"n"}, 1, "Call{f,[Op{-,n,1}]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parseProgram(t, "start "+tt.src+" end")
			fd := prog.Stmts[0].(*FuncDef)

			var params []string
			for _, p := range fd.Params {
				params = append(params, p.Value)
			}
			if strings.Join(params, ",") != strings.Join(tt.wantParams, ",") {
				t.Errorf("Params = %v, want %v", params, tt.wantParams)
			}
			if len(fd.Body) != tt.wantBody {
				t.Errorf("Body has %d statements, want %d", len(fd.Body), tt.wantBody)
			}
			if fd.Result == nil {
				t.Fatal("Result is nil")
			}
			if got := exprSummary(fd.Result); got != tt.wantResult {
				t.Errorf("Result = %s, want %s", got, tt.wantResult)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Expressions

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string // expected structure
	}{
		// Multiplicative binds tighter than additive
		{"1 + 2 * 3", "Op{+,1,Op{*,2,3}}"},
		{"1 * 2 + 3", "Op{+,Op{*,1,2},3}"},

		// Additive binds tighter than comparison
		{"1 + 2 < 3 * 4", "Op{<,Op{+,1,2},Op{*,3,4}}"},

		// Comparison binds tighter than equality
		{"a < b == c > d", "Op{==,Op{<,a,b},Op{>,c,d}}"},
		{"a >= b != c <= d", "Op{!=,Op{>=,a,b},Op{<=,c,d}}"},

		// Left associativity
		{"a - b - c", "Op{-,Op{-,a,b},c}"},
		{"a / b * c", "Op{*,Op{/,a,b},c}"},
		{"a == b == c", "Op{==,Op{==,a,b},c}"},
		{"a < b < c", "Op{<,Op{<,a,b},c}"},

		// Parentheses group without leaving a node
		{"(1 + 2) * 3", "Op{*,Op{+,1,2},3}"},
		{"((x))", "x"},

		// Unary minus binds tighter than any binary operator
		{"-a * b", "Op{*,Op{-,a},b}"},
		{"- -a", "Op{-,Op{-,a}}"},
		{"1 - -2", "Op{-,1,Op{-,2}}"},

		// Calls and literals
		{"f(1, 2 + 3) * g()", "Op{*,Call{f,[1,Op{+,2,3}]},Call{g,[]}}"},
		{`"a" + "b"`, `Op{+,"a","b"}`},
		{"true == false", "Op{==,true,false}"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := exprSummary(parseExpr(t, tt.src))
			if got != tt.want {
				t.Errorf("precedence:\ngot:  %s\nwant: %s", got, tt.want)
			}
		})
	}
}

func TestParseBoolLiterals(t *testing.T) {
	for _, src := range []string{"true", "false"} {
		lit, ok := parseExpr(t, src).(*BasicLit)
		if !ok {
			t.Fatalf("%s parsed as %T, want *BasicLit", src, lit)
		}
		if lit.Kind != BoolLit || lit.Value != src {
			t.Errorf("%s: literal = %s %q", src, lit.Kind, lit.Value)
		}
	}
}

func TestParseNodePositions(t *testing.T) {
	src := `start
num x = 1 + 2
  show x
when x > 1 {
  break
} elsewhen x < 0 {
} else {
}
end`
	prog := parseProgram(t, src)

	checkPos := func(what string, got Pos, line, col int) {
		t.Helper()
		if got.Line() != line || got.Col() != col {
			t.Errorf("%s pos = %s, want %d:%d", what, got, line, col)
		}
	}

	checkPos("Program", prog.Pos(), 1, 1)

	d := prog.Stmts[0].(*VarDecl)
	checkPos("VarDecl", d.Pos(), 2, 1)
	checkPos("VarDecl.Name", d.Name.Pos(), 2, 5)
	checkPos("binary op", d.Value.Pos(), 2, 9)
	checkPos("binary op Y", d.Value.(*Operation).Y.Pos(), 2, 13)

	checkPos("ShowStmt", prog.Stmts[1].Pos(), 3, 3)

	w := prog.Stmts[2].(*WhenStmt)
	checkPos("WhenStmt", w.Pos(), 4, 1)
	checkPos("when case", w.Cases[0].Pos(), 4, 1)
	checkPos("BreakStmt", w.Cases[0].Body.Stmts[0].Pos(), 5, 3)
	checkPos("elsewhen case", w.Cases[1].Pos(), 6, 3)
	checkPos("else block", w.Else.Pos(), 7, 8)
	checkPos("else rbrace", w.Else.Rbrace, 8, 1)

	checkPos("end", prog.End, 9, 1)
}

// ----------------------------------------------------------------------------
// Error tests

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantFound Token
		wantExp   []Token
		line, col int
	}{
		{"missing_start", "show 1 end", _Show, []Token{_Start}, 1, 1},
		{"missing_end", "start show 1", _EOF, []Token{_End}, 1, 13},
		{"trailing_tokens", "start end extra", _Name, []Token{_EOF}, 1, 11},
		{"bad_stmt_start", "start 5 end", _Number, stmtStart, 1, 7},
		{"ident_alone", "start x 1 end", _Number, []Token{_Assign, _Lparen}, 1, 9},
		{"var_missing_name", "start num = 5 end", _Assign, []Token{_Name}, 1, 11},
		{"var_missing_assign", "start num x 5 end", _Number, []Token{_Assign}, 1, 13},
		{"keyword_as_name", "start num to = 5 end", _To, []Token{_Name}, 1, 11},
		{"missing_operand", "start show end", _End, operandStart, 1, 12},
		{"dangling_operator", "start show 1 + end", _End, operandStart, 1, 16},
		{"unclosed_paren", "start show (1 + 2 end", _End, []Token{_Rparen}, 1, 19},
		{"when_missing_brace", "start when x show x end", _Show, []Token{_Lbrace}, 1, 14},
		{"unclosed_block", "start when x { show x end", _End, []Token{_Rbrace}, 1, 23},
		{"loop_missing_to", "start loop i = 1 10 { } end", _Number, []Token{_To}, 1, 18},
		{"loop_missing_assign", "start loop i 1 to 2 { } end", _Number, []Token{_Assign}, 1, 14},
		{"take_literal", "start take 5 end", _Number, []Token{_Name}, 1, 12},
		{"bad_param", "start func f(1) { back 1 } end", _Number, []Token{_Name}, 1, 14},
		{"unclosed_params", "start func f(a { back a } end", _Lbrace, []Token{_Rparen}, 1, 16},
		{"func_unterminated", "start func f() { show 1", _EOF, []Token{_Back}, 1, 24},
		{"back_outside_func", "start back 1 end", _Back, stmtStart, 1, 7},
		{"bad_call_args", "start f(,) end", _Comma, operandStart, 1, 9},
		{"else_without_when", "start else { } end", _Else, stmtStart, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perr := parseErr(t, tt.src)

			if perr.Found != tt.wantFound {
				t.Errorf("Found = %s, want %s", perr.Found, tt.wantFound)
			}
			if expectedList(perr.Expected) != expectedList(tt.wantExp) {
				t.Errorf("Expected = %s, want %s", expectedList(perr.Expected), expectedList(tt.wantExp))
			}
			if perr.Pos.Line() != tt.line || perr.Pos.Col() != tt.col {
				t.Errorf("Pos = %s, want %d:%d", perr.Pos, tt.line, tt.col)
			}
		})
	}
}

func TestParseErrorMessages(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"start show 1", "test.nova:1:13: expected end, found EOF"},
		{"start x 1 end", "test.nova:1:9: expected = or (, found NUMBER 1"},
		{`start num x "s" end`, `test.nova:1:13: expected =, found STRING "s"`},
		{"start num x = y 5 end", "test.nova:1:17: expected num, text, flag, IDENT, show, take, when, loop, break or func, found NUMBER 5"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			perr := parseErr(t, tt.src)
			if got := perr.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFuncWithoutReturn(t *testing.T) {
	perr := parseErr(t, "start func f() { show 1 } end")

	if !strings.Contains(perr.Error(), "function must contain a return") {
		t.Errorf("Error() = %q, want mention of missing return", perr.Error())
	}
	if perr.Pos.Line() != 1 || perr.Pos.Col() != 25 {
		t.Errorf("Pos = %s, want 1:25", perr.Pos)
	}
	if perr.Found != _Rbrace {
		t.Errorf("Found = %s, want }", perr.Found)
	}
}

func TestParseLexErrorPropagates(t *testing.T) {
	prog, err := Parse("test.nova", "start\nshow 1 @ 2\nend")
	if prog != nil {
		t.Error("program should be nil on lexical error")
	}
	var lerr *LexError
	if !errors.As(err, &lerr) {
		t.Fatalf("error = %T (%v), want *LexError", err, err)
	}
	if lerr.Char != '@' {
		t.Errorf("Char = %q, want '@'", lerr.Char)
	}
	if lerr.Pos.Line() != 2 || lerr.Pos.Col() != 8 {
		t.Errorf("Pos = %s, want 2:8", lerr.Pos)
	}
}

func TestParseFirstErrorOnly(t *testing.T) {
	// Two independent mistakes: only the first one is reported.
	perr := parseErr(t, "start num = 1\nshow\nend")
	if perr.Pos.Line() != 1 {
		t.Errorf("error reported on line %d, want 1", perr.Pos.Line())
	}
}

func TestParseLexErrorBeatsEarlierSyntaxError(t *testing.T) {
	// The ")" at 1:12 is a syntax error, but the "@" after it is a
	// lexical error and the text is scanned before it is parsed.
	_, err := Parse("test.nova", "start show ) @ end")
	var lerr *LexError
	if !errors.As(err, &lerr) {
		t.Fatalf("error = %T (%v), want *LexError", err, err)
	}
	if lerr.Pos.Line() != 1 || lerr.Pos.Col() != 14 {
		t.Errorf("Pos = %s, want 1:14", lerr.Pos)
	}
}

func TestNewParserFromTokens(t *testing.T) {
	toks, err := Tokenize("test.nova", "start show 1 end")
	if err != nil {
		t.Fatal(err)
	}
	prog, err := NewParser(toks).Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(prog.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Stmts))
	}

	// A sequence cut short before EOF behaves as if it ended there.
	_, err = NewParser(toks[:3]).Parse()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %T (%v), want *ParseError", err, err)
	}
	if perr.Found != _EOF {
		t.Errorf("Found = %s, want EOF", perr.Found)
	}
	if perr.Pos.Col() != 12 {
		t.Errorf("Pos = %s, want the last token's position 1:12", perr.Pos)
	}
}

func TestParseCompleteProgram(t *testing.T) {
	src := `start
# read a limit and print the running sum
num limit = 0
take limit
num total = 0
text label = "sum: "

func square(n) {
  back n * n
}

loop i = 1 to limit {
  total = total + square(i)
  when total > 100 {
    break
  }
}

when total == 0 {
  show "nothing"
} else {
  show label + "done"
  show total
}
end
`
	prog := parseProgram(t, src)

	if len(prog.Stmts) != 7 {
		t.Fatalf("got %d top-level statements, want 7", len(prog.Stmts))
	}

	var funcs, loops, whens int
	Inspect(prog, func(n Node) bool {
		switch n.(type) {
		case *FuncDef:
			funcs++
		case *LoopStmt:
			loops++
		case *WhenStmt:
			whens++
		}
		return true
	})
	if funcs != 1 || loops != 1 || whens != 2 {
		t.Errorf("funcs=%d loops=%d whens=%d, want 1, 1, 2", funcs, loops, whens)
	}
}

// ----------------------------------------------------------------------------
// Golden tests

func TestParseGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/parse_*.nova")
	if err != nil {
		t.Fatal(err)
	}

	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			src, err := os.ReadFile(f)
			if err != nil {
				t.Fatal(err)
			}

			ast, err := Parse(filepath.Base(f), string(src))
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}

			var buf bytes.Buffer
			Fprint(&buf, ast)
			got := buf.String()

			golden := strings.TrimSuffix(f, ".nova") + ".ast.golden"

			if os.Getenv("UPDATE_GOLDEN") != "" {
				if err := os.WriteFile(golden, []byte(got), 0644); err != nil {
					t.Fatal(err)
				}
				return
			}

			want, err := os.ReadFile(golden)
			if err != nil {
				// If golden file doesn't exist, create it
				if os.IsNotExist(err) {
					if err := os.WriteFile(golden, []byte(got), 0644); err != nil {
						t.Fatal(err)
					}
					t.Logf("created golden file: %s", golden)
					return
				}
				t.Fatal(err)
			}

			if got != string(want) {
				t.Errorf("AST mismatch for %s\nRun with UPDATE_GOLDEN=1 to update", f)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Walk and printer tests

func TestWalk(t *testing.T) {
	prog := parseProgram(t, "start num x = 1 + 2 show x end")

	var nodeCount int
	var nameCount int
	Walk(prog, func(n Node) bool {
		nodeCount++
		if _, ok := n.(*Name); ok {
			nameCount++
		}
		return true
	})

	// Program, VarDecl, num, x, Operation, 1, 2, ShowStmt, x
	if nodeCount != 9 {
		t.Errorf("Walk visited %d nodes, want 9", nodeCount)
	}
	if nameCount != 3 {
		t.Errorf("expected 3 Name nodes, got %d", nameCount)
	}
}

func TestInspectSkipsChildren(t *testing.T) {
	prog := parseProgram(t, "start func f(a) { show a back a } show f(1) end")

	var shows int
	Inspect(prog, func(n Node) bool {
		if _, ok := n.(*FuncDef); ok {
			return false
		}
		if _, ok := n.(*ShowStmt); ok {
			shows++
		}
		return true
	})

	if shows != 1 {
		t.Errorf("expected 1 ShowStmt outside the function, got %d", shows)
	}
}

func TestFprint(t *testing.T) {
	prog := parseProgram(t, "start num x = -1 * 2 end")

	var buf bytes.Buffer
	Fprint(&buf, prog)

	want := `Program test.nova:1:1
  VarDecl test.nova:1:7 num x
    Value:
      BinaryOp test.nova:1:15 *
        X:
          UnaryOp test.nova:1:15 -
            BasicLit test.nova:1:16 num "1"
        Y:
          BasicLit test.nova:1:20 num "2"
`
	if got := buf.String(); got != want {
		t.Errorf("Fprint mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFprintTyped(t *testing.T) {
	prog := parseProgram(t, "start show 1 + 2 end")

	var buf bytes.Buffer
	FprintTyped(&buf, prog, func(e Expr) string {
		if _, ok := e.(*Operation); ok {
			return "num"
		}
		return ""
	})

	out := buf.String()
	if !strings.Contains(out, "BinaryOp test.nova:1:12 + : num") {
		t.Errorf("typed output missing annotation:\n%s", out)
	}
	if strings.Contains(out, `"1" :`) {
		t.Errorf("unannotated literal got a type suffix:\n%s", out)
	}
}

func TestFprintJSON(t *testing.T) {
	prog := parseProgram(t, `start when x == "a" { show x } else { break } end`)

	var buf bytes.Buffer
	if err := FprintJSON(&buf, prog); err != nil {
		t.Fatalf("FprintJSON: %v", err)
	}

	var doc struct {
		Type  string `json:"type"`
		Stmts []struct {
			Type  string `json:"type"`
			Cases []struct {
				Cond struct {
					Op string `json:"op"`
				} `json:"cond"`
			} `json:"cases"`
			Else *struct {
				Stmts []map[string]interface{} `json:"stmts"`
			} `json:"else"`
		} `json:"stmts"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if doc.Type != "Program" || len(doc.Stmts) != 1 {
		t.Fatalf("unexpected document: %s", buf.String())
	}
	w := doc.Stmts[0]
	if w.Type != "WhenStmt" || len(w.Cases) != 1 || w.Cases[0].Cond.Op != "==" {
		t.Errorf("unexpected when statement: %s", buf.String())
	}
	if w.Else == nil || len(w.Else.Stmts) != 1 || w.Else.Stmts[0]["type"] != "BreakStmt" {
		t.Errorf("unexpected else block: %s", buf.String())
	}
}

func TestExprString(t *testing.T) {
	e := parseExpr(t, `f(a, "x") + -b * 2`)
	want := `(f(a, "x") + (-b * 2))`
	if got := ExprString(e); got != want {
		t.Errorf("ExprString = %s, want %s", got, want)
	}
}

// ----------------------------------------------------------------------------
// Fuzz test

func FuzzParse(f *testing.F) {
	seeds := []string{
		"start end",
		"start show 1 end",
		"start num x = 1 + 2 * 3 end",
		`start text s = "a" + "b" show s end`,
		"start when x > 0 { show x } elsewhen x < 0 { } else { break } end",
		"start loop i = 1 to 10 { break } end",
		"start func f(a, b) { back a + b } f(1, 2) end",
		"start func f() { show 1 } end",
		"start show (1 end",
		"start # comment\nend",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		// Syntax errors are acceptable, but parser should not panic
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("parser panicked on input %q: %v", src, r)
			}
		}()

		prog, err := Parse("fuzz", src)
		if (prog == nil) == (err == nil) {
			t.Errorf("Parse(%q) = %v, %v: want exactly one of program and error", src, prog, err)
		}
	})
}
