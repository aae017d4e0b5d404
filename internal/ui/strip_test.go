package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hpanel/internal/config"
	"hpanel/internal/source"
)

const row16 = "0123456789abcdef"

func testConfig() *config.Config {
	cfg := config.Default()
	off := false
	cfg.Animate = &off
	return cfg
}

func doc(name, body string) source.Document {
	return source.Document{Name: name, Path: "/docs/" + name, Body: body}
}

// newStrip builds a strip of the given documents on a width x height
// terminal. With the default config every 16-cell column is 20 cells wide,
// starts 6 cells in and is followed by a 2-cell gap.
func newStrip(t *testing.T, width, height int, docs ...source.Document) *StripView {
	t.Helper()
	v, err := NewStripView(docs, testConfig())
	require.NoError(t, err)
	update(v, tea.WindowSizeMsg{Width: width, Height: height})
	return v
}

func update(v *StripView, msg tea.Msg) tea.Cmd {
	_, cmd := v.Update(msg)
	return cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func wheel(x, y int, button tea.MouseButton, shift bool) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: button, Action: tea.MouseActionPress, Shift: shift}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

// settle delivers the most recent settle tick.
func settle(v *StripView) {
	update(v, settleMsg{id: v.sched.next})
}

func threeColumns(t *testing.T) *StripView {
	return newStrip(t, 50, 12, doc("a", row16), doc("b", row16), doc("c", row16))
}

func TestStripView_InitialLayout(t *testing.T) {
	v := threeColumns(t)

	assert.Equal(t, 11, v.container.height, "one row for the help bar")
	assert.Equal(t, []float64{20, 20, 20}, v.Controller.Geometry().Widths)
	assert.Equal(t, []float64{6, 28, 50}, v.anim.shown)
	for _, c := range v.Columns {
		assert.Equal(t, 11, c.height)
	}
}

func TestStripView_KeysStepColumns(t *testing.T) {
	v := threeColumns(t)

	update(v, keyMsg("l"))
	assert.Equal(t, 1, v.Controller.Active())
	assert.Equal(t, []float64{-16, 6, 28}, v.anim.shown)

	update(v, keyMsg("right"))
	update(v, keyMsg("right"))
	assert.Equal(t, 2, v.Controller.Active(), "stops at the last column")

	update(v, keyMsg("h"))
	update(v, keyMsg("left"))
	assert.Equal(t, 0, v.Controller.Active())
}

func TestStripView_WheelScrollsThenSettles(t *testing.T) {
	v := threeColumns(t)

	for range 3 {
		cmd := update(v, wheel(10, 1, tea.MouseButtonWheelRight, false))
		assert.NotNil(t, cmd, "settle tick scheduled")
	}
	assert.Equal(t, []float64{-3, 19, 41}, v.anim.shown)
	assert.True(t, v.Controller.SettlePending())
	assert.Equal(t, 0, v.Controller.Active())

	settle(v)
	assert.False(t, v.Controller.SettlePending())
	assert.Equal(t, 1, v.Controller.Active())
	assert.Equal(t, 6.0, v.anim.shown[1])
}

func TestStripView_StaleSettleTicksIgnored(t *testing.T) {
	v := threeColumns(t)

	update(v, wheel(10, 1, tea.MouseButtonWheelRight, false))
	first := v.sched.next
	update(v, wheel(10, 1, tea.MouseButtonWheelRight, false))
	update(v, settleMsg{id: first})
	assert.True(t, v.Controller.SettlePending(), "superseded tick does not settle")
}

func TestStripView_ShiftWheelIsHorizontal(t *testing.T) {
	v := threeColumns(t)

	update(v, wheel(10, 1, tea.MouseButtonWheelDown, true))
	assert.Equal(t, []float64{3, 25, 47}, v.anim.shown)
}

func TestStripView_VerticalWheelScrollsBody(t *testing.T) {
	long := strings.Repeat("line\n", 30)
	v := newStrip(t, 50, 12, doc("a", long), doc("b", row16))

	// Row 2 is the first body row of every column.
	update(v, wheel(8, 2, tea.MouseButtonWheelDown, false))
	assert.Equal(t, 3, v.Columns[0].body.vp.YOffset)
	assert.False(t, v.Controller.SettlePending(), "absorbed by the body")
	assert.Equal(t, 6.0, v.anim.shown[0])
}

func TestStripView_WideBodyAbsorbsHorizontalWheel(t *testing.T) {
	cfg := testConfig()
	cfg.MaxColumnWidth = 10
	v, err := NewStripView([]source.Document{doc("a", row16+row16), doc("b", row16)}, cfg)
	require.NoError(t, err)
	update(v, tea.WindowSizeMsg{Width: 50, Height: 12})

	update(v, wheel(8, 2, tea.MouseButtonWheelRight, false))
	assert.Equal(t, 3, v.Columns[0].body.xOffset)
	assert.Equal(t, 6.0, v.anim.shown[0], "strip did not move")

	// The title row is not scrollable, so the strip moves.
	update(v, wheel(8, 1, tea.MouseButtonWheelRight, false))
	assert.Equal(t, 3.0, v.anim.shown[0])
}

func TestStripView_ClickActivatesColumn(t *testing.T) {
	v := threeColumns(t)

	update(v, click(30, 1))
	assert.Equal(t, 1, v.Controller.Active())
	assert.Equal(t, []float64{-16, 6, 28}, v.anim.shown)

	// Clicking outside the container hits nothing.
	update(v, click(10, 11))
	assert.Equal(t, 1, v.Controller.Active())
}

func TestStripView_TabFocusBringsColumnIntoView(t *testing.T) {
	v := newStrip(t, 50, 12,
		doc("a", row16),
		doc("b", row16),
		doc("c", "intro\nsee https://example.com"),
	)
	require.Len(t, v.Focus.Order, 1)

	update(v, keyMsg("tab"))
	assert.Same(t, v.Focus.Order[0], v.Focus.Current)
	assert.Equal(t, 2, v.Controller.Active())
}

func TestStripView_ClickFocusesItem(t *testing.T) {
	v := newStrip(t, 50, 12, doc("a", "[home](/)\nplain"), doc("b", row16))

	update(v, click(8, 2))
	require.NotNil(t, v.Focus.Current)
	assert.Equal(t, 0, v.Focus.Current.line)
	assert.Equal(t, 0, v.Controller.Active())

	update(v, click(8, 3))
	assert.Equal(t, 0, v.Focus.Current.line, "plain lines are not focusable")
}

func TestStripView_ScrollKeysMoveActiveBody(t *testing.T) {
	long := strings.Repeat("line\n", 30)
	v := newStrip(t, 50, 12, doc("a", long))

	update(v, keyMsg("j"))
	update(v, keyMsg("down"))
	assert.Equal(t, 2, v.Columns[0].body.vp.YOffset)

	update(v, keyMsg("pgdown"))
	assert.Equal(t, 10, v.Columns[0].body.vp.YOffset)

	update(v, keyMsg("k"))
	assert.Equal(t, 9, v.Columns[0].body.vp.YOffset)
}

func TestStripView_ResizeKeepsActiveColumn(t *testing.T) {
	v := threeColumns(t)
	update(v, keyMsg("l"))

	update(v, tea.WindowSizeMsg{Width: 30, Height: 8})
	assert.Equal(t, 1, v.Controller.Active())
	assert.Equal(t, 7, v.Columns[1].height)
	assert.Equal(t, []float64{-16, 6, 28}, v.anim.shown)
}

func TestStripView_ReloadKeepsOrder(t *testing.T) {
	v := threeColumns(t)

	update(v, ReloadMsg{Docs: []source.Document{
		doc("c", "short"),
		doc("a", row16+"xxxx"),
	}})
	names := make([]string, len(v.Columns))
	for i, c := range v.Columns {
		names[i] = c.Doc.Name
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, []float64{24, 20, 9}, v.Controller.Geometry().Widths)
	assert.Equal(t, "short", v.Columns[2].Doc.Body)
}

func TestStripView_HelpToggleResizes(t *testing.T) {
	v := threeColumns(t)

	update(v, keyMsg("?"))
	assert.Less(t, v.container.height, 11)
	update(v, keyMsg("?"))
	assert.Equal(t, 11, v.container.height)
}

func TestStripView_View(t *testing.T) {
	v := threeColumns(t)
	out := strings.Split(ansi.Strip(v.View()), "\n")

	require.Len(t, out, 12)
	assert.Equal(t, "      ╭"+strings.Repeat("─", 18)+"╮  ╭", out[0][:len("      ╭"+strings.Repeat("─", 18)+"╮  ╭")])
	assert.Contains(t, out[1], "│ a")
	assert.Contains(t, out[2], row16)
	for _, l := range out[:11] {
		assert.Equal(t, 50, ansi.StringWidth(l))
	}
	assert.Contains(t, out[11], "prev column")
}

func TestNewStripView_NoDocuments(t *testing.T) {
	_, err := NewStripView(nil, testConfig())
	assert.Error(t, err)
}
