package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"hpanel/internal/ui/textutil"
)

const emptyColumnText = "(empty)"

// renderColumn draws c as a bordered block exactly c.Width() cells wide and
// c.height rows tall. Columns too short for their chrome render nothing.
func renderColumn(c *Column, active bool, focused *Item) []string {
	if c.height < columnFrameHeight+columnTitleHeight {
		return nil
	}
	cw := c.ContentWidth()
	box, title := Styles.Column, Styles.Title
	if active {
		box, title = Styles.ColumnActive, Styles.TitleActive
	}

	content := title.Render(textutil.PadRightVisual(textutil.Truncate(c.Doc.Name, cw), cw))
	if bh := c.bodyHeight(); bh > 0 {
		content += "\n" + renderBody(c, cw, bh, active, focused)
	}
	out := box.Width(cw + 2).Height(c.height - columnFrameHeight).Render(content)
	return strings.Split(out, "\n")
}

func renderBody(c *Column, cw, bh int, active bool, focused *Item) string {
	b := c.body
	var lines []string
	if len(c.lines) == 0 {
		lines = []string{Styles.Empty.Render(textutil.PadRightVisual(emptyColumnText, cw))}
	} else {
		lines = make([]string, len(c.lines))
		for i, l := range c.lines {
			lines[i] = lineStyle(c, i, active, focused).Render(textutil.Slice(l, b.xOffset, cw))
		}
	}
	y := b.vp.YOffset
	b.vp.Width, b.vp.Height = cw, bh
	b.vp.SetContent(strings.Join(lines, "\n"))
	b.vp.YOffset = y
	return b.vp.View()
}

func lineStyle(c *Column, line int, active bool, focused *Item) lipgloss.Style {
	it, link := c.itemAt[line]
	switch {
	case link && it == focused:
		return Styles.Focused
	case link && active:
		return Styles.Link
	case link:
		return Styles.Dim.Underline(true)
	case active:
		return Styles.Normal
	}
	return Styles.Dim
}

// screenX rounds a column's viewport offset to a terminal column.
func screenX(x float64) int {
	return int(math.Round(x))
}

// compose lays the column blocks onto a width x height canvas, each block
// starting at its x offset and clipped at the viewport edges. Blocks must be
// ordered left to right.
func compose(blocks [][]string, xs []float64, widths []int, width, height int) string {
	rows := make([]string, height)
	for y := range rows {
		var sb strings.Builder
		cursor := 0
		for i, blk := range blocks {
			x := screenX(xs[i])
			start, end := max(x, cursor, 0), min(x+widths[i], width)
			if start >= end {
				continue
			}
			sb.WriteString(strings.Repeat(" ", start-cursor))
			line := ""
			if y < len(blk) {
				line = blk[y]
			}
			piece := ansi.Cut(line, start-x, end-x)
			sb.WriteString(piece)
			if pw := ansi.StringWidth(piece); pw < end-start {
				sb.WriteString(strings.Repeat(" ", end-start-pw))
			}
			cursor = end
		}
		sb.WriteString(strings.Repeat(" ", max(width-cursor, 0)))
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}
