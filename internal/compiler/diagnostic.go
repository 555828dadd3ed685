package compiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/you-not-fish/nova/internal/syntax"
	"github.com/you-not-fish/nova/internal/types2"
)

// Diagnostic is a stage-independent view of a pipeline error.
type Diagnostic struct {
	Stage    Stage  `json:"stage"`
	Message  string `json:"message"`
	Filename string `json:"filename,omitempty"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// Error formats the diagnostic as "file:line:col: stage error: message".
func (d Diagnostic) Error() string {
	var b strings.Builder
	if d.Line > 0 {
		if d.Filename != "" {
			fmt.Fprintf(&b, "%s:", d.Filename)
		}
		fmt.Fprintf(&b, "%d:%d: ", d.Line, d.Column)
	}
	fmt.Fprintf(&b, "%s error: %s", d.Stage, d.Message)
	return b.String()
}

// Diagnose classifies err. It reports false if err did not come from a
// pipeline stage.
func Diagnose(err error) (Diagnostic, bool) {
	var (
		lexErr   *syntax.LexError
		parseErr *syntax.ParseError
		semErr   *types2.SemanticError
	)
	switch {
	case errors.As(err, &lexErr):
		return newDiagnostic(StageLex, lexErr.Pos, lexErr.Msg), true
	case errors.As(err, &parseErr):
		return newDiagnostic(StageParse, parseErr.Pos, stripPos(parseErr.Error(), parseErr.Pos)), true
	case errors.As(err, &semErr):
		return newDiagnostic(StageSemantic, semErr.Pos, semErr.Msg), true
	}
	return Diagnostic{}, false
}

func newDiagnostic(stage Stage, pos syntax.Pos, msg string) Diagnostic {
	return Diagnostic{
		Stage:    stage,
		Message:  msg,
		Filename: pos.Filename(),
		Line:     pos.Line(),
		Column:   pos.Col(),
	}
}

func stripPos(msg string, pos syntax.Pos) string {
	return strings.TrimPrefix(msg, pos.String()+": ")
}
