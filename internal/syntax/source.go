package syntax

import "unicode/utf8"

// source is a character reader with position tracking over an in-memory
// source text.
type source struct {
	buf      string
	filename string
	line     int // line of ch (1-based)
	col      int // column of ch (1-based, in characters)

	ch    rune // current character, -1 at EOF
	width int  // encoded size of ch in bytes, 0 at EOF
	offs  int  // byte offset of the character after ch
}

// newSource creates a source positioned on the first character of src.
func newSource(filename, src string) *source {
	s := &source{
		buf:      src,
		filename: filename,
		line:     1,
		col:      0, // incremented to 1 by the first nextch
		ch:       -1,
	}
	s.nextch()
	return s
}

// nextch reads the next character and updates the position.
// (line, col) always refers to s.ch after nextch returns; at EOF it is the
// position just past the last character.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch, s.width = -1, 0
		return
	}

	s.ch, s.width = utf8.DecodeRuneInString(s.buf[s.offs:])
	s.offs += s.width
}

// badEncoding reports whether ch stands for an undecodable byte rather than
// a literal U+FFFD in the text.
func (s *source) badEncoding() bool {
	return s.ch == utf8.RuneError && s.width == 1
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

// isLetter reports whether r may start an identifier (a-z, A-Z, or _).
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r is skipped between tokens on the same line.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

// isOperatorStart reports whether r can start an operator or delimiter.
func isOperatorStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '<', '>', '=', '!', '(', ')', '{', '}', ',':
		return true
	}
	return false
}
