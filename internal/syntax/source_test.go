package syntax

import "testing"

func TestSourceBasic(t *testing.T) {
	src := newSource("test", "abc")

	for i, want := range []rune{'a', 'b', 'c'} {
		if src.ch != want {
			t.Errorf("ch = %q, want %q", src.ch, want)
		}
		if src.line != 1 || src.col != i+1 {
			t.Errorf("pos = %d:%d, want 1:%d", src.line, src.col, i+1)
		}
		src.nextch()
	}

	// EOF, just past the last character
	if src.ch != -1 {
		t.Errorf("ch = %d, want -1 (EOF)", src.ch)
	}
	if src.line != 1 || src.col != 4 {
		t.Errorf("EOF pos = %d:%d, want 1:4", src.line, src.col)
	}
}

func TestSourceNewline(t *testing.T) {
	src := newSource("test", "a\nb\n\nc")

	want := []struct {
		ch        rune
		line, col int
	}{
		{'a', 1, 1},
		{'\n', 1, 2},
		{'b', 2, 1},
		{'\n', 2, 2},
		{'\n', 3, 1},
		{'c', 4, 1},
		{-1, 4, 2},
	}

	for i, w := range want {
		if src.ch != w.ch || src.line != w.line || src.col != w.col {
			t.Errorf("step %d: got ch=%q pos=%d:%d, want ch=%q pos=%d:%d",
				i, src.ch, src.line, src.col, w.ch, w.line, w.col)
		}
		src.nextch()
	}
}

func TestSourceUTF8(t *testing.T) {
	src := newSource("test", "é1")

	if src.ch != 'é' || src.col != 1 {
		t.Errorf("got ch=%q col=%d, want 'é' col 1", src.ch, src.col)
	}
	src.nextch()
	// multi-byte characters count as one column
	if src.ch != '1' || src.col != 2 {
		t.Errorf("got ch=%q col=%d, want '1' col 2", src.ch, src.col)
	}
}

func TestSourceEmpty(t *testing.T) {
	src := newSource("test", "")
	if src.ch != -1 {
		t.Errorf("ch = %d, want -1 (EOF)", src.ch)
	}
	if src.line != 1 || src.col != 1 {
		t.Errorf("pos = %d:%d, want 1:1", src.line, src.col)
	}
}

func TestSourcePos(t *testing.T) {
	src := newSource("file.nova", "ab")
	src.nextch()

	pos := src.pos()
	if pos.Filename() != "file.nova" || pos.Line() != 1 || pos.Col() != 2 {
		t.Errorf("pos() = %s, want file.nova:1:2", pos)
	}
}

func TestIsLetter(t *testing.T) {
	for _, r := range "azAZ_" {
		if !isLetter(r) {
			t.Errorf("isLetter(%q) = false", r)
		}
	}
	for _, r := range "09 $é-" {
		if isLetter(r) {
			t.Errorf("isLetter(%q) = true", r)
		}
	}
}

func TestIsDigit(t *testing.T) {
	for _, r := range "0123456789" {
		if !isDigit(r) {
			t.Errorf("isDigit(%q) = false", r)
		}
	}
	for _, r := range "a_ .-" {
		if isDigit(r) {
			t.Errorf("isDigit(%q) = true", r)
		}
	}
}

func TestIsWhitespace(t *testing.T) {
	for _, r := range " \t\r" {
		if !isWhitespace(r) {
			t.Errorf("isWhitespace(%q) = false", r)
		}
	}
	// newline is handled separately so the line counter can advance
	for _, r := range "\na#" {
		if isWhitespace(r) {
			t.Errorf("isWhitespace(%q) = true", r)
		}
	}
}

func TestIsOperatorStart(t *testing.T) {
	for _, r := range "+-*/<>=!(){}," {
		if !isOperatorStart(r) {
			t.Errorf("isOperatorStart(%q) = false", r)
		}
	}
	for _, r := range "a1 #.;&|%[]" {
		if isOperatorStart(r) {
			t.Errorf("isOperatorStart(%q) = true", r)
		}
	}
}
