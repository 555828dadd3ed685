// Package diag renders pipeline results for a terminal: the error with the
// offending source line and a caret, or a short success summary.
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/you-not-fish/nova/internal/compiler"
)

// Printer writes diagnostics to a terminal.
type Printer struct {
	w      io.Writer
	color  bool
	styles styles
}

// NewPrinter returns a Printer writing to w. With color off the output is
// plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{
		w:      w,
		color:  color,
		styles: newStyles(lipgloss.NewRenderer(w)),
	}
}

func (p *Printer) paint(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Diagnostic prints d followed by the source line it points at:
//
//	t.nova:3:6: semantic error: use of undeclared variable 'i'
//	   3 | show i
//	     |      ^
func (p *Printer) Diagnostic(d compiler.Diagnostic, src string) {
	loc := ""
	if d.Line > 0 {
		if d.Filename != "" {
			loc = d.Filename + ":"
		}
		loc += fmt.Sprintf("%d:%d:", d.Line, d.Column)
		loc = p.paint(p.styles.location, loc) + " "
	}
	fmt.Fprintf(p.w, "%s%s %s\n", loc, p.paint(p.styles.errorLabel, string(d.Stage)+" error:"), d.Message)

	line, ok := sourceLine(src, d.Line)
	if !ok {
		return
	}
	num := fmt.Sprintf("%4d | ", d.Line)
	pad := strings.Repeat(" ", len(num)-2) + "| "
	fmt.Fprintf(p.w, "%s%s\n", p.paint(p.styles.gutter, num), line)
	fmt.Fprintf(p.w, "%s%s%s\n", p.paint(p.styles.gutter, pad), caretIndent(line, d.Column), p.paint(p.styles.caret, "^"))
}

// Error prints err, using Diagnostic when err came from the pipeline.
func (p *Printer) Error(err error, src string) {
	if d, ok := compiler.Diagnose(err); ok {
		p.Diagnostic(d, src)
		return
	}
	fmt.Fprintf(p.w, "%s %v\n", p.paint(p.styles.errorLabel, "error:"), err)
}

// OK prints a one-line success summary for a checked file.
func (p *Printer) OK(filename string, o compiler.Outline) {
	fmt.Fprintf(p.w, "%s %s: %s, %s\n",
		p.paint(p.styles.okLabel, "ok"),
		filename,
		plural(len(o.Funcs), "function"),
		plural(len(o.Vars), "variable"))
}

// Outline prints the declarations of a program, one per line.
func (p *Printer) Outline(o compiler.Outline) {
	for _, f := range o.Funcs {
		fmt.Fprintf(p.w, "  func %s(%s)  line %d\n", p.paint(p.styles.name, f.Name), strings.Join(f.Params, ", "), f.Line)
	}
	for _, v := range o.Vars {
		fmt.Fprintf(p.w, "  %s %s  line %d\n", v.Type, p.paint(p.styles.name, v.Name), v.Line)
	}
}

// sourceLine returns line n (1-based) of src without its line terminator.
func sourceLine(src string, n int) (string, bool) {
	if n <= 0 {
		return "", false
	}
	lines := strings.Split(src, "\n")
	if n > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n-1], "\r"), true
}

// caretIndent returns the whitespace that puts a caret under column col,
// keeping tabs so the caret lines up however tabs are displayed.
func caretIndent(line string, col int) string {
	var b strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
