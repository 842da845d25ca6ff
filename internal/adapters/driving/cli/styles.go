package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme defines the colour palette for command output.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Border is the table border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Border:    lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains the lipgloss styles used by the commands.
type Styles struct {
	// Title style for headers.
	Title lipgloss.Style

	// Label style for field names.
	Label lipgloss.Style

	// Value style for field values.
	Value lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Border style for table borders.
	Border lipgloss.Style
}

// NewStyles creates styles for w. Colours are only used when w is a terminal.
func NewStyles(w io.Writer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	r := lipgloss.NewRenderer(w)
	if !isTerminal(w) {
		plain := r.NewStyle()
		return &Styles{
			Title:  plain,
			Label:  plain.Width(labelWidth),
			Value:  plain,
			Muted:  plain,
			Border: plain,
		}
	}

	return &Styles{
		Title:  r.NewStyle().Bold(true).Foreground(theme.Primary),
		Label:  r.NewStyle().Width(labelWidth).Foreground(theme.Muted),
		Value:  r.NewStyle().Bold(true).Foreground(theme.Secondary),
		Muted:  r.NewStyle().Foreground(theme.Muted),
		Border: r.NewStyle().Foreground(theme.Border),
	}
}

// labelWidth aligns label/value pairs.
const labelWidth = 12

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
