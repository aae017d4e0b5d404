package panel

import "time"

// Timer is a pending scheduled call.
type Timer interface {
	// Stop cancels the call. It reports whether the call was still pending.
	Stop() bool
}

// Scheduler runs f after d on the same event-processing thread that
// delivers input to the controller.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Debouncer keeps at most one pending call. Each Trigger cancels the
// previous one, so f runs once per quiet period of Delay.
type Debouncer struct {
	Scheduler Scheduler
	Delay     time.Duration

	pending Timer
}

// Trigger (re)starts the quiet period, after which f runs.
func (d *Debouncer) Trigger(f func()) {
	d.Cancel()
	var t Timer
	t = d.Scheduler.AfterFunc(d.Delay, func() {
		if d.pending == t {
			d.pending = nil
		}
		f()
	})
	d.pending = t
}

// Cancel drops the pending call, if any. It reports whether one was
// pending.
func (d *Debouncer) Cancel() bool {
	if d.pending == nil {
		return false
	}
	stopped := d.pending.Stop()
	d.pending = nil
	return stopped
}

// Pending reports whether a call is waiting to run.
func (d *Debouncer) Pending() bool {
	return d.pending != nil
}
