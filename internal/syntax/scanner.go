package syntax

import (
	"fmt"
	"strings"
)

// Scanner performs lexical analysis on nova source code.
//
// Tokens are produced on demand by Next. The first lexical error stops the
// scanner: the current token becomes _Error and stays there.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token  // token type
	lit    string // token text (identifier name, digits, string content)
	tokPos Pos    // token start position

	err *LexError // first lexical error, if any

	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source text.
func NewScanner(filename, src string) *Scanner {
	return &Scanner{source: *newSource(filename, src)}
}

// Next advances to the next token.
func (s *Scanner) Next() {
	if s.err != nil {
		return
	}

redo:
	s.skipWhitespace()

	switch s.ch {
	case '\n':
		s.nextch()
		goto redo
	case '#':
		s.skipLineComment()
		goto redo
	}

	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case s.ch == '"':
		s.scanString()

	case isOperatorStart(s.ch):
		s.scanOperator()

	default:
		s.unexpected()
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's text.
func (s *Scanner) Literal() string {
	return s.lit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// Lexeme returns the current token as a Lexeme.
func (s *Scanner) Lexeme() Lexeme {
	return Lexeme{Tok: s.tok, Text: s.lit, Pos: s.tokPos}
}

// Err returns the lexical error that stopped the scanner, or nil.
func (s *Scanner) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// Tokenize scans src completely and returns its tokens, the last of which
// is always the single EOF token. Scanning stops at the first lexical error.
func Tokenize(filename, src string) ([]Lexeme, error) {
	s := NewScanner(filename, src)
	var toks []Lexeme
	for {
		s.Next()
		if s.tok == _Error {
			return nil, s.Err()
		}
		toks = append(toks, s.Lexeme())
		if s.tok == _EOF {
			return toks, nil
		}
	}
}

// fail records a lexical error at pos and stops the scanner.
func (s *Scanner) fail(pos Pos, ch rune, msg string) {
	s.err = &LexError{Pos: pos, Char: ch, Msg: msg}
	s.tok = _Error
	s.lit = ""
	s.tokPos = pos
}

// unexpected reports the current character as unrecognized.
func (s *Scanner) unexpected() {
	if s.badEncoding() {
		s.fail(s.pos(), s.ch, "invalid UTF-8 encoding")
		return
	}
	s.fail(s.pos(), s.ch, fmt.Sprintf("unexpected character %q", s.ch))
}

// skipWhitespace skips space, tab, and carriage return.
func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// skipLineComment skips a # comment up to, but not including, the newline.
func (s *Scanner) skipLineComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// scanIdent scans an identifier or keyword.
// The whole word is read before the keyword lookup, so "counter" or "toast"
// never split into a keyword prefix.
func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans an integer literal. Signs are separate tokens.
func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	for isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = _Number
}

// scanString scans a double-quoted string literal. There are no escape
// sequences; the literal ends at the next quote on the same line.
func (s *Scanner) scanString() {
	start := s.pos()
	s.nextch() // skip opening "
	s.litBuf.Reset()

	for {
		switch {
		case s.ch == '"':
			s.nextch()
			s.lit = s.litBuf.String()
			s.tok = _String
			return

		case s.ch == '\n' || s.ch < 0:
			s.fail(start, '"', "string not terminated")
			return

		default:
			s.litBuf.WriteRune(s.ch)
			s.nextch()
		}
	}
}

// scanOperator scans an operator or delimiter.
func (s *Scanner) scanOperator() {
	pos := s.pos()
	ch := s.ch
	s.nextch()

	switch ch {
	case '+':
		s.tok, s.lit = _Add, "+"
	case '-':
		s.tok, s.lit = _Sub, "-"
	case '*':
		s.tok, s.lit = _Mul, "*"
	case '/':
		s.tok, s.lit = _Div, "/"
	case '<':
		if s.ch == '=' {
			s.nextch()
			s.tok, s.lit = _Leq, "<="
		} else {
			s.tok, s.lit = _Lss, "<"
		}
	case '>':
		if s.ch == '=' {
			s.nextch()
			s.tok, s.lit = _Geq, ">="
		} else {
			s.tok, s.lit = _Gtr, ">"
		}
	case '=':
		if s.ch == '=' {
			s.nextch()
			s.tok, s.lit = _Eql, "=="
		} else {
			s.tok, s.lit = _Assign, "="
		}
	case '!':
		if s.ch != '=' {
			// nova has no logical not; a lone '!' is not a token.
			s.fail(pos, '!', "unexpected character '!'")
			return
		}
		s.nextch()
		s.tok, s.lit = _Neq, "!="
	case '(':
		s.tok, s.lit = _Lparen, "("
	case ')':
		s.tok, s.lit = _Rparen, ")"
	case '{':
		s.tok, s.lit = _Lbrace, "{"
	case '}':
		s.tok, s.lit = _Rbrace, "}"
	case ',':
		s.tok, s.lit = _Comma, ","
	}
}
