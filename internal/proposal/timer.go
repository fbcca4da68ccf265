package proposal

import "time"

// Scheduler runs fn once after d. The returned stop function cancels the
// callback if it has not run yet and reports whether it did so.
//
// Callbacks must be delivered on the goroutine that owns the View; a surface
// backed by an event loop forwards them onto that loop.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// Timer is a single-slot cancellable timer: at most one callback is pending.
// Reset cancels the previous callback before scheduling a new one, and a
// generation counter drops callbacks that were already queued when they were
// superseded.
type Timer struct {
	sched Scheduler
	gen   uint64
	stop  func() bool
}

// NewTimer returns an idle timer backed by s.
func NewTimer(s Scheduler) *Timer {
	return &Timer{sched: s}
}

// Reset cancels any pending callback and schedules fn after d.
func (t *Timer) Reset(d time.Duration, fn func()) {
	t.Stop()
	gen := t.gen
	t.stop = t.sched.AfterFunc(d, func() {
		if gen != t.gen {
			return
		}
		t.stop = nil
		t.gen++
		fn()
	})
}

// Stop cancels the pending callback. It reports whether one was pending.
func (t *Timer) Stop() bool {
	pending := t.stop != nil
	if pending {
		t.stop()
		t.stop = nil
	}
	t.gen++
	return pending
}
