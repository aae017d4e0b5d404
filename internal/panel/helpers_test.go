package panel

import (
	"sort"
	"time"
)

// fakeNode is a Node with fixed metrics.
type fakeNode struct {
	name   string
	parent Node
	box    Box
}

func (n *fakeNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *fakeNode) Box() Box { return n.box }

// fakeColumn is a Column with a natural width and override tracking.
type fakeColumn struct {
	fakeNode
	natural   float64
	overrides Overrides
	cleared   int // times SetOverrides received an empty value
}

func (c *fakeColumn) Overrides() Overrides { return c.overrides }

func (c *fakeColumn) SetOverrides(o Overrides) {
	if o == (Overrides{}) {
		c.cleared++
	}
	c.overrides = o
}

func (c *fakeColumn) NaturalWidth() float64 {
	if c.overrides.Width != nil {
		return *c.overrides.Width
	}
	return c.natural
}

// fakeScheduler runs callbacks against a virtual clock.
type fakeScheduler struct {
	now    time.Duration
	timers []*fakeTimer
	fired  []time.Duration
}

type fakeTimer struct {
	s       *fakeScheduler
	at      time.Duration
	f       func()
	stopped bool
	done    bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.done {
		return false
	}
	t.stopped = true
	return true
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{s: s, at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward, firing due timers in order.
func (s *fakeScheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		var due []*fakeTimer
		for _, t := range s.timers {
			if !t.stopped && !t.done && t.at <= end {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			break
		}
		sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
		t := due[0]
		s.now = t.at
		t.done = true
		s.fired = append(s.fired, t.at)
		t.f()
	}
	s.now = end
}

// recordSink keeps every applied frame.
type recordSink struct {
	frames []Frame
}

func (r *recordSink) Apply(f Frame) { r.frames = append(r.frames, f) }

func (r *recordSink) last() Frame { return r.frames[len(r.frames)-1] }

func ptr(f float64) *float64 { return &f }

// newTree builds container > plane > columns with the given natural widths,
// each column holding one body child.
func newTree(viewportW, viewportH float64, widths ...float64) (*fakeNode, *fakeNode, []*fakeColumn) {
	container := &fakeNode{name: "container", box: Box{OffsetWidth: viewportW, OffsetHeight: viewportH, ScrollWidth: viewportW, ScrollHeight: viewportH}}
	plane := &fakeNode{name: "plane", parent: container}
	cols := make([]*fakeColumn, len(widths))
	for i, w := range widths {
		cols[i] = &fakeColumn{fakeNode: fakeNode{name: "col", parent: plane, box: Box{OffsetWidth: w, OffsetHeight: viewportH, ScrollWidth: w, ScrollHeight: viewportH}}, natural: w}
	}
	return container, plane, cols
}

func asColumns(cols []*fakeColumn) []Column {
	out := make([]Column, len(cols))
	for i, c := range cols {
		out[i] = c
	}
	return out
}
