// Package textutil provides unicode-aware text utilities for measuring and
// clipping column content in terminal cells.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// TabWidth is the number of cells a tab expands to.
const TabWidth = 4

// VisualWidth returns the number of terminal cells a plain string occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// MaxWidth returns the widest line in lines.
func MaxWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, VisualWidth(l))
	}
	return w
}

// ExpandTabs replaces tabs with spaces up to the next tab stop.
func ExpandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := TabWidth - col%TabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}

// Truncate truncates a string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available < 0 {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, available, "") + TruncateEllipsis
}

// Slice returns the cells [from, from+width) of a plain string, padded with
// spaces to exactly width cells. Wide runes cut by either edge become
// spaces.
func Slice(s string, from, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	col, used := 0, 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		end := col + rw
		switch {
		case end <= from:
			// left of the window
		case col < from:
			// straddles the left edge
			n := min(end-from, width-used)
			b.WriteString(strings.Repeat(" ", n))
			used += n
		case used+rw <= width:
			b.WriteRune(r)
			used += rw
		default:
			// straddles the right edge
			b.WriteString(strings.Repeat(" ", width-used))
			used = width
		}
		col = end
		if used >= width {
			break
		}
	}
	return PadRightVisual(b.String(), width)
}

// PadRightVisual pads a string with spaces to targetWidth visual columns,
// truncating it when it is already wider.
func PadRightVisual(s string, targetWidth int) string {
	w := VisualWidth(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + strings.Repeat(" ", targetWidth-w)
}
