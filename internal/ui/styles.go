package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, active border
	ColorHighlight = "205" // Magenta - focused item
	ColorMuted     = "241" // Gray - inactive borders, hints
	ColorText      = "252" // Light gray - normal text
	ColorLink      = "39"  // Blue - focusable lines
)

// Styles contains shared style definitions used by the strip renderer and
// the help bar.
var Styles = struct {
	Column       lipgloss.Style // Inactive column box
	ColumnActive lipgloss.Style // Active column box
	Title        lipgloss.Style
	TitleActive  lipgloss.Style
	Normal       lipgloss.Style
	Link         lipgloss.Style
	Focused      lipgloss.Style
	Dim          lipgloss.Style // Applied over inactive column content
	Empty        lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style
}{
	Column: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	ColumnActive: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Title: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	TitleActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorLink)).
		Underline(true),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Reverse(true),
	Dim: lipgloss.NewStyle().
		Faint(true),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	HelpDesc: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
