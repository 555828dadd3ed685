package syntax

// Parser performs syntax analysis over a token sequence produced by
// Tokenize.
//
// Parsing stops at the first error: the error is remembered, the current
// token is forced to EOF so every production unwinds, and Parse returns no
// program.
type Parser struct {
	toks []Lexeme
	i    int // index of the current token

	// Current token info (cached from toks[i])
	tok Token
	lit string
	pos Pos

	first error // first syntax error
}

// NewParser creates a Parser over toks. The sequence normally ends with an
// EOF lexeme; reading past its end yields EOF at the last position.
func NewParser(toks []Lexeme) *Parser {
	p := &Parser{toks: toks, i: -1}
	p.next() // prime the parser with first token
	return p
}

// Parse tokenizes and parses a source text and returns its Program, or the
// first error. The whole text is scanned before parsing, so a lexical error
// anywhere wins over a syntax error: the error is a *LexError if the text
// has one, otherwise a *ParseError.
func Parse(filename, src string) (*Program, error) {
	toks, err := Tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	return NewParser(toks).Parse()
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	if p.first != nil {
		p.tok = _EOF
		return
	}
	if p.i+1 < len(p.toks) {
		p.i++
		l := p.toks[p.i]
		p.tok, p.lit, p.pos = l.Tok, l.Text, l.Pos
		return
	}
	p.tok, p.lit = _EOF, ""
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.errorExpected(tok)
	}
}

// ----------------------------------------------------------------------------
// Error handling

// errorExpected reports that the current token is not one of toks.
func (p *Parser) errorExpected(toks ...Token) {
	p.fail(&ParseError{Pos: p.pos, Expected: toks, Found: p.tok, Lit: p.lit})
}

// fail records err unless an earlier error exists, and aborts parsing.
func (p *Parser) fail(err *ParseError) {
	if p.first == nil {
		p.first = err
	}
	p.tok = _EOF
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses: start stmts... end EOF
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}
	prog.pos = p.pos

	p.want(_Start)
	prog.Stmts = p.stmtList()
	prog.End = p.pos
	p.want(_End)
	p.want(_EOF)

	if p.first != nil {
		return nil, p.first
	}
	return prog, nil
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier and returns a Name node.
func (p *Parser) name() *Name {
	n := &Name{Value: p.lit}
	n.pos = p.pos
	if p.tok != _Name {
		p.errorExpected(_Name)
		n.Value = "_"
		return n
	}
	p.next()
	return n
}

// ----------------------------------------------------------------------------
// Statements

// stmtStart lists the tokens a statement may begin with.
var stmtStart = []Token{_Num, _Text, _Flag, _Name, _Show, _Take, _When, _Loop, _Break, _Func}

// stmtList parses statements up to end, } or EOF.
func (p *Parser) stmtList() []Stmt {
	var list []Stmt
	for p.tok != _End && p.tok != _Rbrace && p.tok != _EOF {
		list = append(list, p.stmt())
	}
	return list
}

// stmt parses a statement.
func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Num, _Text, _Flag:
		return p.varDecl()

	case _Name:
		return p.simpleStmt()

	case _Show:
		return p.showStmt()

	case _Take:
		return p.takeStmt()

	case _When:
		return p.whenStmt()

	case _Loop:
		return p.loopStmt()

	case _Break:
		s := &BreakStmt{}
		s.pos = p.pos
		p.next()
		return s

	case _Func:
		return p.funcDef()

	default:
		p.errorExpected(stmtStart...)
		s := &BreakStmt{} // placeholder, never returned from Parse
		s.pos = p.pos
		return s
	}
}

// varDecl parses: Type Name = Value
func (p *Parser) varDecl() *VarDecl {
	d := &VarDecl{}
	d.pos = p.pos

	d.Type = &Name{Value: p.lit}
	d.Type.pos = p.pos
	p.next() // consume num, text or flag

	d.Name = p.name()
	p.want(_Assign)
	d.Value = p.expr()
	return d
}

// simpleStmt parses an assignment or a call statement. The token after the
// identifier decides which.
func (p *Parser) simpleStmt() Stmt {
	n := p.name()

	switch p.tok {
	case _Assign:
		s := &AssignStmt{Name: n}
		s.pos = n.Pos()
		p.next()
		s.Value = p.expr()
		return s

	case _Lparen:
		s := &CallStmt{Call: p.callExpr(n)}
		s.pos = n.Pos()
		return s

	default:
		p.errorExpected(_Assign, _Lparen)
		s := &AssignStmt{Name: n}
		s.pos = n.Pos()
		return s
	}
}

// showStmt parses: show X
func (p *Parser) showStmt() *ShowStmt {
	s := &ShowStmt{}
	s.pos = p.pos
	p.want(_Show)
	s.X = p.expr()
	return s
}

// takeStmt parses: take Name
func (p *Parser) takeStmt() *TakeStmt {
	s := &TakeStmt{}
	s.pos = p.pos
	p.want(_Take)
	s.Name = p.name()
	return s
}

// block parses { stmts... }
func (p *Parser) block() *Block {
	b := &Block{}
	b.pos = p.pos

	p.want(_Lbrace)
	b.Stmts = p.stmtList()
	b.Rbrace = p.pos
	p.want(_Rbrace)

	return b
}

// whenStmt parses: when cond { } [elsewhen cond { }]... [else { }]
func (p *Parser) whenStmt() *WhenStmt {
	s := &WhenStmt{}
	s.pos = p.pos

	p.want(_When)
	s.Cases = append(s.Cases, p.whenCase(s.pos))

	for p.tok == _Elsewhen {
		pos := p.pos
		p.next()
		s.Cases = append(s.Cases, p.whenCase(pos))
	}

	if p.got(_Else) {
		s.Else = p.block()
	}

	return s
}

// whenCase parses the condition and block following when or elsewhen.
func (p *Parser) whenCase(pos Pos) *WhenCase {
	c := &WhenCase{}
	c.pos = pos
	c.Cond = p.expr()
	c.Body = p.block()
	return c
}

// loopStmt parses: loop Var = From to To { Body }
func (p *Parser) loopStmt() *LoopStmt {
	s := &LoopStmt{}
	s.pos = p.pos

	p.want(_Loop)
	s.Var = p.name()
	p.want(_Assign)
	s.From = p.expr()
	p.want(_To)
	s.To = p.expr()
	s.Body = p.block()

	return s
}

// funcDef parses: func Name(p1, p2, ...) { stmts... back Result }
func (p *Parser) funcDef() *FuncDef {
	d := &FuncDef{}
	d.pos = p.pos

	p.want(_Func)
	d.Name = p.name()
	d.Params = p.paramList()

	p.want(_Lbrace)
	for p.tok != _Back && p.first == nil {
		switch p.tok {
		case _Rbrace:
			p.fail(&ParseError{
				Pos:      p.pos,
				Expected: []Token{_Back},
				Found:    p.tok,
				Lit:      p.lit,
				Msg:      "function must contain a return (back) before }",
			})
		case _EOF, _End:
			p.errorExpected(_Back)
		default:
			d.Body = append(d.Body, p.stmt())
		}
	}
	p.want(_Back)
	d.Result = p.expr()
	d.Rbrace = p.pos
	p.want(_Rbrace)

	return d
}

// paramList parses (p1, p2, ...)
func (p *Parser) paramList() []*Name {
	p.want(_Lparen)

	var params []*Name
	if p.tok != _Rparen {
		params = append(params, p.name())
		for p.got(_Comma) {
			params = append(params, p.name())
		}
	}

	p.want(_Rparen)
	return params
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression.
func (p *Parser) expr() Expr {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression whose operators bind tighter than
// prec. Operands of equal precedence fold to the left.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for {
		oprec := p.tok.Precedence()
		if oprec <= prec {
			return x
		}

		op := &Operation{Op: p.tok, X: x}
		op.pos = x.Pos()

		p.next() // consume operator

		op.Y = p.binaryExpr(oprec)
		x = op
	}
}

// unaryExpr parses a unary expression.
func (p *Parser) unaryExpr() Expr {
	if p.tok == _Sub {
		u := &UnaryExpr{Op: p.tok}
		u.pos = p.pos
		p.next()
		u.X = p.unaryExpr()
		return u
	}
	return p.operand()
}

// operandStart lists the tokens an expression may begin with.
var operandStart = []Token{_Number, _String, _True, _False, _Name, _Lparen, _Sub}

// operand parses a literal, a name, a call or a parenthesized expression.
func (p *Parser) operand() Expr {
	switch p.tok {
	case _Number, _String, _True, _False:
		lit := &BasicLit{Value: p.lit, Kind: litKind(p.tok)}
		lit.pos = p.pos
		p.next()
		return lit

	case _Name:
		n := p.name()
		if p.tok == _Lparen {
			return p.callExpr(n)
		}
		return n

	case _Lparen:
		p.next()
		x := p.expr()
		p.want(_Rparen)
		return x

	default:
		p.errorExpected(operandStart...)
		n := &Name{Value: "_"}
		n.pos = p.pos
		return n
	}
}

func litKind(tok Token) LitKind {
	switch tok {
	case _String:
		return TextLit
	case _True, _False:
		return BoolLit
	}
	return NumLit
}

// callExpr parses Fun(args...)
func (p *Parser) callExpr(fun *Name) *CallExpr {
	call := &CallExpr{Fun: fun}
	call.pos = fun.Pos()

	p.want(_Lparen)
	if p.tok != _Rparen {
		call.Args = p.exprList()
	}
	p.want(_Rparen)

	return call
}

// exprList parses a comma-separated list of expressions.
func (p *Parser) exprList() []Expr {
	list := []Expr{p.expr()}
	for p.got(_Comma) {
		list = append(list, p.expr())
	}
	return list
}
