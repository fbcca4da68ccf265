package proposal

import (
	"sort"
	"time"
)

// fakeScheduler is a manual clock. Callbacks run synchronously from Advance,
// in due-time order.
type fakeScheduler struct {
	now     time.Duration
	seq     int
	pending []*fakeTimer
}

type fakeTimer struct {
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	s.seq++
	ft := &fakeTimer{due: s.now + d, seq: s.seq, fn: fn}
	s.pending = append(s.pending, ft)
	return func() bool {
		if ft.stopped || ft.fired {
			return false
		}
		ft.stopped = true
		return true
	}
}

// Advance moves the clock forward by d, firing every callback that comes due.
func (s *fakeScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		next.fired = true
		next.fn()
	}
	s.now = target
}

func (s *fakeScheduler) nextDue(limit time.Duration) *fakeTimer {
	live := s.pending[:0]
	for _, ft := range s.pending {
		if !ft.stopped && !ft.fired {
			live = append(live, ft)
		}
	}
	s.pending = live
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due != s.pending[j].due {
			return s.pending[i].due < s.pending[j].due
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	if len(s.pending) == 0 || s.pending[0].due > limit {
		return nil
	}
	return s.pending[0]
}

// Live returns the number of callbacks still scheduled.
func (s *fakeScheduler) Live() int {
	n := 0
	for _, ft := range s.pending {
		if !ft.stopped && !ft.fired {
			n++
		}
	}
	return n
}

// leakyScheduler queues callbacks and never manages to stop one.
type leakyScheduler struct {
	queued []func()
}

func (s *leakyScheduler) AfterFunc(_ time.Duration, fn func()) func() bool {
	s.queued = append(s.queued, fn)
	return func() bool { return false }
}

// scriptedRand returns queued values, then repeats the last one.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) IntN(n int) int {
	v := 0
	if len(r.ints) > 0 {
		v = r.ints[0]
		if len(r.ints) > 1 {
			r.ints = r.ints[1:]
		}
	}
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	v := 0.5
	if len(r.floats) > 0 {
		v = r.floats[0]
		if len(r.floats) > 1 {
			r.floats = r.floats[1:]
		}
	}
	return v
}

// fixedSurface reports a laid-out button and viewport.
type fixedSurface struct {
	button Rect
	vp     Viewport
	ready  bool
}

func (s fixedSurface) NoButton() (Rect, bool) { return s.button, s.ready }
func (s fixedSurface) Viewport() (Viewport, bool) { return s.vp, s.ready }

func desktopSurface() fixedSurface {
	return fixedSurface{
		button: Rect{X: 600, Y: 500, W: 100, H: 40},
		vp:     Viewport{Reported: Size{W: 1280, H: 800}},
		ready:  true,
	}
}

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) { r.events = append(r.events, e) }

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}
