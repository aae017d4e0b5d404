package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hpanel/internal/config"
	"hpanel/internal/panel"
	"hpanel/internal/source"
)

// wheelStep is the distance, in cells, of one wheel notch.
const wheelStep = 3

// ReloadMsg carries fresh bodies for the strip's documents. Documents are
// matched to columns by path; column order never changes.
type ReloadMsg struct {
	Docs []source.Document
}

// StripView shows documents as a horizontally paged strip of columns.
type StripView struct {
	Columns    []*Column
	Controller *panel.Controller
	Registry   *panel.Registry
	Focus      *FocusManager
	Keys       KeyMap

	container *containerNode
	plane     *planeNode
	sched     *teaScheduler
	anim      *animator
	help      help.Model
	fullHelp  bool
	width     int
	height    int
}

var (
	_ View       = (*StripView)(nil)
	_ panel.Sink = (*StripView)(nil)
)

// NewStripView builds a strip with one column per document. opts are
// applied after the options derived from cfg.
func NewStripView(docs []source.Document, cfg *config.Config, opts ...panel.Option) (*StripView, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	container := &containerNode{}
	v := &StripView{
		Registry:  panel.NewRegistry(),
		Focus:     &FocusManager{},
		Keys:      DefaultKeyMap(),
		container: container,
		plane:     &planeNode{container: container},
		sched:     newTeaScheduler(),
		anim:      &animator{enabled: cfg.Animate == nil || *cfg.Animate},
		help:      newHelpModel(),
	}
	cols := make([]panel.Column, len(docs))
	for i, d := range docs {
		c := newColumn(d, v.plane, cfg.MaxColumnWidth)
		v.Columns = append(v.Columns, c)
		cols[i] = c
	}

	base := []panel.Option{panel.WithOptions(cfg.PanelOptions()), panel.WithScheduler(v.sched)}
	ctrl, err := panel.NewController(v.container, v.plane, cols, v, append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	v.Controller = ctrl
	v.Registry.Register(ctrl)

	v.Focus.OnChange = func(_, to *Item) {
		if to == nil {
			return
		}
		to.col.body.reveal(to.line)
		v.Registry.DispatchFocus(to)
	}
	v.Focus.SetOrder(v.items())
	return v, nil
}

// Apply implements panel.Sink.
func (v *StripView) Apply(f panel.Frame) {
	for _, c := range v.Columns {
		c.setHeight(int(f.MaxHeight))
	}
	v.anim.apply(f)
}

// Init implements View.
func (v *StripView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *StripView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.setSize(msg.Width, msg.Height)
	case settleMsg:
		v.sched.Fire(msg)
	case animMsg:
		cmd = v.anim.advance(msg)
	case ReloadMsg:
		v.reload(msg.Docs)
	case tea.KeyMsg:
		v.handleKey(msg)
	case tea.MouseMsg:
		v.handleMouse(msg)
	}
	return v, tea.Batch(cmd, v.sched.Cmd(), v.anim.Cmd())
}

// View implements View.
func (v *StripView) View() string {
	if v.width == 0 {
		return ""
	}
	blocks := make([][]string, len(v.Columns))
	widths := make([]int, len(v.Columns))
	active := v.Controller.Active()
	for i, c := range v.Columns {
		blocks[i] = renderColumn(c, i == active, v.Focus.Current)
		widths[i] = c.Width()
	}
	canvas := compose(blocks, v.anim.shown, widths, v.container.width, v.container.height)
	return canvas + "\n" + v.helpView()
}

// Docs returns the documents currently shown, in column order.
func (v *StripView) Docs() []source.Document {
	docs := make([]source.Document, len(v.Columns))
	for i, c := range v.Columns {
		docs[i] = c.Doc
	}
	return docs
}

func (v *StripView) helpView() string {
	return RenderKeybindHelp(v.help, v.Keys, v.width, v.fullHelp)
}

// setSize gives the strip everything above the help bar.
func (v *StripView) setSize(w, h int) {
	v.width, v.height = w, h
	v.container.width = w
	v.container.height = max(h-lipgloss.Height(v.helpView()), 0)
	v.Registry.ResizeAll()
}

func (v *StripView) reload(docs []source.Document) {
	byPath := make(map[string]source.Document, len(docs))
	for _, d := range docs {
		byPath[d.Path] = d
	}
	for _, c := range v.Columns {
		if d, ok := byPath[c.Doc.Path]; ok {
			c.setDocument(d)
		} else {
			log.Printf("ui.reload: no new content for %q", c.Doc.Path)
		}
	}
	v.Controller.Resize()
	v.Focus.SetOrder(v.items())
}

func (v *StripView) items() []*Item {
	var out []*Item
	for _, c := range v.Columns {
		out = append(out, c.Items()...)
	}
	return out
}

func (v *StripView) activeBody() *bodyNode {
	return v.Columns[v.Controller.Active()].body
}

func (v *StripView) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, v.Keys.Prev):
		v.Controller.Step(-1)
	case key.Matches(msg, v.Keys.Next):
		v.Controller.Step(1)
	case key.Matches(msg, v.Keys.FocusNext):
		v.Focus.Next()
	case key.Matches(msg, v.Keys.FocusPrev):
		v.Focus.Prev()
	case key.Matches(msg, v.Keys.Up):
		v.activeBody().scroll(0, -1)
	case key.Matches(msg, v.Keys.Down):
		v.activeBody().scroll(0, 1)
	case key.Matches(msg, v.Keys.PageUp):
		b := v.activeBody()
		b.scroll(0, -b.col.bodyHeight())
	case key.Matches(msg, v.Keys.PageDown):
		b := v.activeBody()
		b.scroll(0, b.col.bodyHeight())
	case key.Matches(msg, v.Keys.ScrollLeft):
		v.activeBody().scroll(-wheelStep, 0)
	case key.Matches(msg, v.Keys.ScrollRight):
		v.activeBody().scroll(wheelStep, 0)
	case key.Matches(msg, v.Keys.Help):
		v.fullHelp = !v.fullHelp
		v.setSize(v.width, v.height)
	}
}

func (v *StripView) handleMouse(msg tea.MouseMsg) {
	target := v.hitTest(msg.X, msg.Y)
	if target == nil {
		return
	}
	if raw, ok := wheelInput(msg); ok {
		if v.Registry.DispatchWheel(raw, target) {
			return
		}
		// Not ours: let the region under the pointer scroll natively.
		if b := enclosingBody(target); b != nil {
			b.scroll(-int(*raw.DeltaX), int(*raw.DeltaY))
		}
		return
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	v.Registry.DispatchClick(target)
	if it, ok := target.(*Item); ok {
		v.Focus.SetFocus(it)
	}
}

// wheelInput converts a wheel event to a pixel-delta wheel measured in
// cells. Shift turns vertical wheel motion horizontal; scrolling right moves
// the strip left.
func wheelInput(msg tea.MouseMsg) (panel.RawWheel, bool) {
	var dx, dy float64
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		dy = -wheelStep
	case tea.MouseButtonWheelDown:
		dy = wheelStep
	case tea.MouseButtonWheelLeft:
		dx = wheelStep
	case tea.MouseButtonWheelRight:
		dx = -wheelStep
	default:
		return panel.RawWheel{}, false
	}
	if msg.Shift && dy != 0 {
		dx, dy = -dy, 0
	}
	return panel.RawWheel{DeltaX: &dx, DeltaY: &dy}, true
}

// hitTest returns the deepest node under the cell (x, y): an item, a
// column body, a column or the plane. Cells outside the container hit
// nothing.
func (v *StripView) hitTest(x, y int) panel.Node {
	if x < 0 || y < 0 || x >= v.container.width || y >= v.container.height {
		return nil
	}
	if len(v.anim.shown) != len(v.Columns) {
		return v.plane
	}
	for i, c := range v.Columns {
		cx := screenX(v.anim.shown[i])
		if x < cx || x >= cx+c.Width() {
			continue
		}
		// Row 0 is the top border, then the title, then the body.
		r := y - 1 - columnTitleHeight
		if r < 0 || r >= c.bodyHeight() {
			return c
		}
		if it, ok := c.itemAt[c.body.lineAt(r)]; ok {
			return it
		}
		return c.body
	}
	return v.plane
}

func enclosingBody(n panel.Node) *bodyNode {
	for ; n != nil; n = n.Parent() {
		if b, ok := n.(*bodyNode); ok {
			return b
		}
	}
	return nil
}
