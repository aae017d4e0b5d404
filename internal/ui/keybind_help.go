package ui

import (
	"github.com/charmbracelet/bubbles/help"
)

// newHelpModel returns a help model styled with the shared theme.
func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = Styles.HelpKey
	m.Styles.ShortDesc = Styles.HelpDesc
	m.Styles.ShortSeparator = Styles.HelpDesc
	m.Styles.FullKey = Styles.HelpKey
	m.Styles.FullDesc = Styles.HelpDesc
	m.Styles.FullSeparator = Styles.HelpDesc
	return m
}

// RenderKeybindHelp renders km for the bottom bar, truncated to width.
// The full view spans several lines; the short view is a single line.
func RenderKeybindHelp(m help.Model, km help.KeyMap, width int, full bool) string {
	m.Width = width
	m.ShowAll = full
	return m.View(km)
}
