package syntax

import "fmt"

// Pos is a source position. Line and column are 1-based; the column counts
// characters, so a tab advances it by one like any other character.
// The zero value is an invalid position.
type Pos struct {
	filename string
	line     int
	col      int
}

// NewPos creates a new Pos with the given filename, line, and column.
func NewPos(filename string, line, col int) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// String returns "filename:line:col", or "line:col" if filename is empty.
func (p Pos) String() string {
	if p.filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid (line > 0).
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() int {
	return p.line
}

// Col returns the 1-based column number.
func (p Pos) Col() int {
	return p.col
}

// Filename returns the source file name.
func (p Pos) Filename() string {
	return p.filename
}
