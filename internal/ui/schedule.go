package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hpanel/internal/panel"
)

// settleMsg fires a scheduled callback on the Bubble Tea update loop.
type settleMsg struct {
	id uint64
}

// teaScheduler implements panel.Scheduler on top of tea.Tick so that every
// callback runs inside Update, on the same goroutine as input handling.
type teaScheduler struct {
	next    uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{pending: make(map[uint64]func())}
}

type teaTimer struct {
	s  *teaScheduler
	id uint64
}

// Stop implements panel.Timer.
func (t *teaTimer) Stop() bool {
	if _, ok := t.s.pending[t.id]; !ok {
		return false
	}
	delete(t.s.pending, t.id)
	return true
}

// AfterFunc implements panel.Scheduler. The tick command is queued until the
// caller drains it with Cmd.
func (s *teaScheduler) AfterFunc(d time.Duration, f func()) panel.Timer {
	s.next++
	id := s.next
	s.pending[id] = f
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return settleMsg{id: id}
	}))
	return &teaTimer{s: s, id: id}
}

// Fire runs the callback for msg if it has not been stopped.
func (s *teaScheduler) Fire(msg settleMsg) bool {
	f, ok := s.pending[msg.id]
	if !ok {
		return false
	}
	delete(s.pending, msg.id)
	f()
	return true
}

// Cmd returns the queued tick commands and clears the queue.
func (s *teaScheduler) Cmd() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}
