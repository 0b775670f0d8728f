package shell

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/you-not-fish/blaze/internal/syntax"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#F59E0B")
	colorOK      = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorFatal   = lipgloss.Color("#DC2626")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles renders host output. With color disabled every method returns
// plain text.
type Styles struct {
	color bool

	Lexical lipgloss.Style
	Syntax  lipgloss.Style
	Fatal   lipgloss.Style
	OK      lipgloss.Style
	Prompt  lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles returns the host styles.
func NewStyles(color bool) Styles {
	return Styles{
		color: color,

		Lexical: lipgloss.NewStyle().Foreground(colorError).Bold(true),
		Syntax:  lipgloss.NewStyle().Foreground(colorError).Bold(true),
		Fatal:   lipgloss.NewStyle().Foreground(colorFatal).Bold(true).Underline(true),
		OK:      lipgloss.NewStyle().Foreground(colorOK),
		Prompt:  lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	}
}

func (s Styles) render(st lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return st.Render(text)
}

// Diagnostic formats d with its severity label styled.
func (s Styles) Diagnostic(d syntax.Diagnostic) string {
	label := d.Severity.String()
	switch d.Severity {
	case syntax.SeverityLexical:
		label = s.render(s.Lexical, label)
	case syntax.SeveritySyntax:
		label = s.render(s.Syntax, label)
	default:
		label = s.render(s.Fatal, label)
	}
	return label + ": " + d.Msg + " <-= at " + d.Pos.String()
}

// Success formats a completion message.
func (s Styles) Success(msg string) string {
	return s.render(s.OK, msg)
}

// Hint formats secondary text.
func (s Styles) Hint(msg string) string {
	return s.render(s.Muted, msg)
}
