package diag

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorError   = lipgloss.Color("#EF4444")
	colorOK      = lipgloss.Color("#10B981")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")
)

// styles holds the styles of one Printer, bound to its renderer.
type styles struct {
	errorLabel lipgloss.Style
	okLabel    lipgloss.Style
	location   lipgloss.Style
	gutter     lipgloss.Style
	caret      lipgloss.Style
	name       lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return styles{
		errorLabel: base.Foreground(colorError).Bold(true),
		okLabel:    base.Foreground(colorOK).Bold(true),
		location:   base.Bold(true),
		gutter:     base.Foreground(colorMuted),
		caret:      base.Foreground(colorAccent).Bold(true),
		name:       base.Foreground(colorPrimary),
	}
}
