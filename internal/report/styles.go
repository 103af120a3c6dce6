// Package report renders the aligned grid analysis table. Styling is
// applied after padding, so color output never changes the visual
// width of a column.
package report

import "github.com/charmbracelet/lipgloss"

// Semantic colors, shared by all styles.
var (
	accentColor  = lipgloss.Color("#8BC34A") // lime green
	warningColor = lipgloss.Color("#FFC107") // yellow
	infoColor    = lipgloss.Color("#2196F3") // blue
	mutedColor   = lipgloss.Color("#6b7280") // grey
)

// Styles holds the styled components used by the renderer.
type Styles struct {
	// Header styles the column-label line.
	Header lipgloss.Style
	// Marker styles the glyph on rows holding a global-minimum cell.
	Marker lipgloss.Style
	// Highlight styles a global-minimum cell inside the table body.
	Highlight lipgloss.Style
	// Muted styles separator lines.
	Muted lipgloss.Style
	// Summary styles the global-minimum value in the trailer line.
	Summary lipgloss.Style
}

// DefaultStyles returns the styles used for color output.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true),

		Marker: lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true),

		Highlight: lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Reverse(true),

		Muted: lipgloss.NewStyle().
			Foreground(mutedColor),

		Summary: lipgloss.NewStyle().
			Foreground(infoColor).
			Bold(true),
	}
}
