package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hpanel/internal/panel"
)

const (
	animFrames   = 8
	animInterval = 16 * time.Millisecond
)

// animMsg advances the column transition started by generation gen.
type animMsg struct {
	gen int
}

// animator turns layout frames into on-screen column offsets. Animated
// frames ease each column from where it is shown now to its new place;
// other frames jump straight there.
type animator struct {
	enabled bool

	shown    []float64 // viewport x of each column's left edge
	from, to []float64
	step     int
	gen      int
	start    bool
}

func (a *animator) apply(f panel.Frame) {
	to := make([]float64, len(f.Positions))
	for i, p := range f.Positions {
		to[i] = f.PlaneOffset + p
	}
	if !a.enabled || !f.Animate || len(a.shown) != len(to) {
		a.shown = to
		a.from, a.to = nil, nil
		a.gen++
		a.start = false
		return
	}
	a.from = append([]float64(nil), a.shown...)
	a.to = to
	a.step = 0
	a.gen++
	a.start = true
}

// animating reports whether a transition is in flight.
func (a *animator) animating() bool { return a.to != nil }

// Cmd returns the tick for a transition that has not been scheduled yet.
func (a *animator) Cmd() tea.Cmd {
	if !a.start {
		return nil
	}
	a.start = false
	gen := a.gen
	return tea.Tick(animInterval, func(time.Time) tea.Msg {
		return animMsg{gen: gen}
	})
}

// advance moves the transition one frame. Ticks from superseded
// transitions are dropped.
func (a *animator) advance(msg animMsg) tea.Cmd {
	if msg.gen != a.gen || a.to == nil {
		return nil
	}
	a.step++
	if a.step >= animFrames {
		a.shown = a.to
		a.from, a.to = nil, nil
		return nil
	}
	e := easeOutCubic(float64(a.step) / animFrames)
	shown := make([]float64, len(a.to))
	for i := range a.to {
		shown[i] = a.from[i] + (a.to[i]-a.from[i])*e
	}
	a.shown = shown
	a.start = true
	return a.Cmd()
}

func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}
