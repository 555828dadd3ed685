// Package syntax implements lexical and syntactic analysis for the nova language.
package syntax

import "fmt"

// Token represents the kind of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of input
	_Error              // lexical error

	// Literals
	_Name   // identifier: x, total, counter
	_Number // 123
	_String // "hello"

	// Operators (ordered by precedence, low to high)
	_Assign // =

	// Equality
	_Eql // ==
	_Neq // !=

	// Comparison
	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	// Additive
	_Add // +
	_Sub // -

	// Multiplicative
	_Mul // *
	_Div // /

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,

	// Keywords
	_Start
	_End
	_Show
	_Take
	_When
	_Elsewhen
	_Else
	_Loop
	_Break
	_Func
	_Back
	_Num
	_Text
	_Flag
	_True
	_False
	_To

	tokenCount
)

var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name:   "IDENT",
	_Number: "NUMBER",
	_String: "STRING",

	_Assign: "=",

	_Eql: "==",
	_Neq: "!=",
	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Add: "+",
	_Sub: "-",
	_Mul: "*",
	_Div: "/",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",

	_Start:    "start",
	_End:      "end",
	_Show:     "show",
	_Take:     "take",
	_When:     "when",
	_Elsewhen: "elsewhen",
	_Else:     "else",
	_Loop:     "loop",
	_Break:    "break",
	_Func:     "func",
	_Back:     "back",
	_Num:      "num",
	_Text:     "text",
	_Flag:     "flag",
	_True:     "true",
	_False:    "false",
	_To:       "to",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Kind returns an upper-case tag for the token, as used in token dumps
// (IDENT, NUMBER, PLUS, WHEN, ...).
func (t Token) Kind() string {
	switch t {
	case _Assign:
		return "ASSIGN"
	case _Eql:
		return "EQEQ"
	case _Neq:
		return "NOTEQ"
	case _Lss:
		return "LT"
	case _Leq:
		return "LTEQ"
	case _Gtr:
		return "GT"
	case _Geq:
		return "GTEQ"
	case _Add:
		return "PLUS"
	case _Sub:
		return "MINUS"
	case _Mul:
		return "STAR"
	case _Div:
		return "SLASH"
	case _Lparen:
		return "LPAREN"
	case _Rparen:
		return "RPAREN"
	case _Lbrace:
		return "LBRACE"
	case _Rbrace:
		return "RBRACE"
	case _Comma:
		return "COMMA"
	}
	if t.IsKeyword() {
		return upper(t.String())
	}
	return t.String()
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// Precedence returns the operator precedence for binary operators.
// Returns 0 for non-operators.
// Precedence levels (higher = binds tighter):
//
//	1: == !=
//	2: < <= > >=
//	3: + -
//	4: * /
func (t Token) Precedence() int {
	switch t {
	case _Eql, _Neq:
		return 1
	case _Lss, _Leq, _Gtr, _Geq:
		return 2
	case _Add, _Sub:
		return 3
	case _Mul, _Div:
		return 4
	}
	return 0
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Start && t <= _To
}

// IsLiteral reports whether t is a number or string literal token.
func (t Token) IsLiteral() bool {
	return t == _Number || t == _String
}

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool {
	return t >= _Assign && t <= _Div
}

// IsArithmetic reports whether t is one of + - * /.
func (t Token) IsArithmetic() bool {
	return t >= _Add && t <= _Div
}

// IsComparison reports whether t is an equality or ordering operator.
func (t Token) IsComparison() bool {
	return t >= _Eql && t <= _Geq
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// Exported operator tokens for type checker access
const (
	Add Token = _Add // +
	Sub Token = _Sub // -
	Mul Token = _Mul // *
	Div Token = _Div // /
	Eql Token = _Eql // ==
	Neq Token = _Neq // !=
	Lss Token = _Lss // <
	Leq Token = _Leq // <=
	Gtr Token = _Gtr // >
	Geq Token = _Geq // >=
)

// LitKind represents the kind of a literal value.
type LitKind uint8

const (
	NumLit  LitKind = iota // 123
	TextLit                // "hello"
	BoolLit                // true, false
)

var litKindNames = [...]string{
	NumLit:  "num",
	TextLit: "text",
	BoolLit: "bool",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= BoolLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// keywords maps keyword strings to their token type.
// Matching is case sensitive: "Start" is an identifier.
var keywords = map[string]Token{
	"start":    _Start,
	"end":      _End,
	"show":     _Show,
	"take":     _Take,
	"when":     _When,
	"elsewhen": _Elsewhen,
	"else":     _Else,
	"loop":     _Loop,
	"break":    _Break,
	"func":     _Func,
	"back":     _Back,
	"num":      _Num,
	"text":     _Text,
	"flag":     _Flag,
	"true":     _True,
	"false":    _False,
	"to":       _To,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a keyword, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}

// Lexeme is a single token produced by the scanner: its kind, its source
// text and the position of its first character.
type Lexeme struct {
	Tok  Token
	Text string // identifier name, digits, string contents without quotes
	Pos  Pos
}

// String formats the lexeme as KIND('text') @line:col.
func (l Lexeme) String() string {
	return fmt.Sprintf("%s('%s') @%d:%d", l.Tok.Kind(), l.Text, l.Pos.Line(), l.Pos.Col())
}
