package syntax

import (
	"fmt"
	"strings"
)

// LexError reports a character that does not start any token.
type LexError struct {
	Pos  Pos
	Char rune // offending character
	Msg  string
}

func (e *LexError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ParseError reports a token that does not fit the grammar.
type ParseError struct {
	Pos      Pos
	Expected []Token // acceptable tokens at Pos
	Found    Token   // actual token
	Lit      string  // actual token text
	Msg      string  // optional explanation replacing the default message
}

func (e *ParseError) Error() string {
	if e.Msg != "" {
		return e.Pos.String() + ": " + e.Msg
	}
	return fmt.Sprintf("%s: expected %s, found %s", e.Pos, expectedList(e.Expected), describe(e.Found, e.Lit))
}

// expectedList renders a token set as "a", "a or b", or "a, b or c".
func expectedList(toks []Token) string {
	names := make([]string, len(toks))
	for i, t := range toks {
		names[i] = t.String()
	}
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// describe renders the found token for error messages.
func describe(tok Token, lit string) string {
	switch tok {
	case _Name:
		return "IDENT " + lit
	case _Number:
		return "NUMBER " + lit
	case _String:
		return fmt.Sprintf("STRING %q", lit)
	}
	return tok.String()
}
