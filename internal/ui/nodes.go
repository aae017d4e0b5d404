package ui

import (
	"regexp"

	"github.com/charmbracelet/bubbles/viewport"

	"hpanel/internal/panel"
	"hpanel/internal/source"
	"hpanel/internal/ui/textutil"
)

// Column chrome: a rounded border plus one cell of horizontal padding on
// each side, and a title row above the body.
const (
	columnFrameWidth  = 4
	columnFrameHeight = 2
	columnTitleHeight = 1
)

// linkPattern marks a line as a focusable link: markdown links or bare URLs.
var linkPattern = regexp.MustCompile(`\[[^\]]+\]\([^)]+\)|https?://\S+`)

// containerNode is the viewport the strip is shown in.
type containerNode struct {
	width, height int
}

func (c *containerNode) Parent() panel.Node { return nil }

func (c *containerNode) Box() panel.Box {
	w, h := float64(c.width), float64(c.height)
	return panel.Box{OffsetWidth: w, OffsetHeight: h, ScrollWidth: w, ScrollHeight: h}
}

// planeNode is the strip holding every column.
type planeNode struct {
	container *containerNode
}

func (p *planeNode) Parent() panel.Node { return p.container }

func (p *planeNode) Box() panel.Box { return p.container.Box() }

// Column is one document rendered as a bordered, vertically scrollable
// block.
type Column struct {
	Doc source.Document

	plane     *planeNode
	body      *bodyNode
	lines     []string
	items     []*Item
	itemAt    map[int]*Item
	maxWidth  int // cap on the content width
	height    int // outer height
	overrides panel.Overrides
}

func newColumn(doc source.Document, plane *planeNode, maxWidth int) *Column {
	c := &Column{plane: plane, maxWidth: maxWidth}
	c.body = &bodyNode{col: c, vp: viewport.New(0, 0)}
	c.setDocument(doc)
	return c
}

// setDocument replaces the column's content, keeping the scroll position
// where possible.
func (c *Column) setDocument(doc source.Document) {
	c.Doc = doc
	raw := doc.Lines()
	c.lines = make([]string, len(raw))
	for i, l := range raw {
		c.lines[i] = textutil.ExpandTabs(l)
	}
	c.items = nil
	c.itemAt = make(map[int]*Item)
	for i, l := range c.lines {
		if linkPattern.MatchString(l) {
			it := &Item{col: c, line: i}
			c.items = append(c.items, it)
			c.itemAt[i] = it
		}
	}
	c.body.xOffset = min(c.body.xOffset, c.body.maxXOffset())
	c.body.setYOffset(c.body.vp.YOffset)
}

// Parent implements panel.Node.
func (c *Column) Parent() panel.Node { return c.plane }

// Box implements panel.Node.
func (c *Column) Box() panel.Box {
	w, h := float64(c.Width()), float64(c.height)
	return panel.Box{OffsetWidth: w, OffsetHeight: h, ScrollWidth: w, ScrollHeight: h}
}

// Overrides implements panel.Sizer.
func (c *Column) Overrides() panel.Overrides { return c.overrides }

// SetOverrides implements panel.Sizer.
func (c *Column) SetOverrides(o panel.Overrides) { c.overrides = o }

// NaturalWidth implements panel.Sizer: the outer width honouring a pinned
// width override.
func (c *Column) NaturalWidth() float64 {
	return float64(c.Width())
}

// Width returns the outer width in cells.
func (c *Column) Width() int {
	if c.overrides.Width != nil {
		return max(int(*c.overrides.Width+0.5), columnFrameWidth+1)
	}
	return c.naturalContentWidth() + columnFrameWidth
}

// ContentWidth returns the width available to body text.
func (c *Column) ContentWidth() int {
	return max(c.Width()-columnFrameWidth, 1)
}

func (c *Column) naturalContentWidth() int {
	w := max(textutil.MaxWidth(c.lines), textutil.VisualWidth(c.Doc.Name), 1)
	if len(c.lines) == 0 {
		w = max(w, textutil.VisualWidth(emptyColumnText))
	}
	if c.maxWidth > 0 {
		w = min(w, c.maxWidth)
	}
	return w
}

// bodyHeight is the number of visible body rows.
func (c *Column) bodyHeight() int {
	return max(c.height-columnFrameHeight-columnTitleHeight, 0)
}

// setHeight applies the panel's height cap.
func (c *Column) setHeight(h int) {
	c.height = max(h, 0)
}

// Items returns the focusable lines in order.
func (c *Column) Items() []*Item { return c.items }

// Body returns the scrollable region of the column.
func (c *Column) Body() panel.Node { return c.body }

// bodyNode is the column's inner scrollable region.
type bodyNode struct {
	col     *Column
	vp      viewport.Model
	xOffset int
}

func (b *bodyNode) Parent() panel.Node { return b.col }

func (b *bodyNode) Box() panel.Box {
	return panel.Box{
		OffsetWidth:  float64(b.col.ContentWidth()),
		OffsetHeight: float64(b.col.bodyHeight()),
		ScrollWidth:  float64(textutil.MaxWidth(b.col.lines)),
		ScrollHeight: float64(len(b.col.lines)),
	}
}

func (b *bodyNode) maxXOffset() int {
	return max(textutil.MaxWidth(b.col.lines)-b.col.ContentWidth(), 0)
}

func (b *bodyNode) maxYOffset() int {
	return max(len(b.col.lines)-b.col.bodyHeight(), 0)
}

// scroll moves the body natively by dx cells and dy rows.
func (b *bodyNode) scroll(dx, dy int) {
	b.xOffset = min(max(b.xOffset+dx, 0), b.maxXOffset())
	b.setYOffset(b.vp.YOffset + dy)
}

func (b *bodyNode) setYOffset(y int) {
	b.vp.YOffset = min(max(y, 0), b.maxYOffset())
}

// reveal scrolls the body so that line is visible.
func (b *bodyNode) reveal(line int) {
	h := b.col.bodyHeight()
	switch {
	case h == 0:
	case line < b.vp.YOffset:
		b.setYOffset(line)
	case line >= b.vp.YOffset+h:
		b.setYOffset(line - h + 1)
	}
}

// lineAt returns the document line shown at body row r, or -1.
func (b *bodyNode) lineAt(r int) int {
	if r < 0 || r >= b.col.bodyHeight() {
		return -1
	}
	l := b.vp.YOffset + r
	if l >= len(b.col.lines) {
		return -1
	}
	return l
}

// Item is a focusable line inside a column.
type Item struct {
	col  *Column
	line int
}

// Parent implements panel.Node.
func (i *Item) Parent() panel.Node { return i.col.body }

// Box implements panel.Node.
func (i *Item) Box() panel.Box {
	w := float64(textutil.VisualWidth(i.col.lines[i.line]))
	return panel.Box{OffsetWidth: w, OffsetHeight: 1, ScrollWidth: w, ScrollHeight: 1}
}

// Text returns the item's line.
func (i *Item) Text() string { return i.col.lines[i.line] }

// Column returns the column holding the item.
func (i *Item) Column() *Column { return i.col }
