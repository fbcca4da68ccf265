package ui

import (
	"testing"
	"time"

	"proposal/internal/proposal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// manualScheduler holds callbacks until Fire is called.
type manualScheduler struct {
	pending []*manualTimer
}

type manualTimer struct {
	fn      func()
	stopped bool
	fired   bool
}

func (s *manualScheduler) AfterFunc(_ time.Duration, fn func()) func() bool {
	mt := &manualTimer{fn: fn}
	s.pending = append(s.pending, mt)
	return func() bool {
		if mt.stopped || mt.fired {
			return false
		}
		mt.stopped = true
		return true
	}
}

// Fire runs every live callback scheduled so far.
func (s *manualScheduler) Fire() {
	due := s.pending
	s.pending = nil
	for _, mt := range due {
		if mt.stopped || mt.fired {
			continue
		}
		mt.fired = true
		mt.fn()
	}
}

// testRand always picks the first entry and returns floats from a queue,
// repeating the last one.
type testRand struct {
	floats []float64
}

func (r *testRand) IntN(int) int { return 0 }

func (r *testRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time { return c.t }

func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type testApp struct {
	app    *AppModel
	model  tea.Model
	sched  *manualScheduler
	clock  *testClock
	events []proposal.Event
}

func newTestApp(t *testing.T, width, height int, floats ...float64) *testApp {
	t.Helper()
	ta := &testApp{
		sched: &manualScheduler{},
		clock: &testClock{t: time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)},
	}
	ta.app = NewAppModel(Config{
		Rand:      &testRand{floats: floats},
		Scheduler: ta.sched,
		Observer: proposal.ObserverFunc(func(e proposal.Event) {
			ta.events = append(ta.events, e)
		}),
		Margin: 2,
		Now:    ta.clock.Now,
	})
	ta.model = ta.app.AsTeaModel()
	if width > 0 {
		ta.send(tea.WindowSizeMsg{Width: width, Height: height})
	}
	return ta
}

func (ta *testApp) view() *ProposalView { return ta.app.Proposal }

func (ta *testApp) state() *proposal.View { return ta.app.Proposal.State() }

func (ta *testApp) send(msg tea.Msg) tea.Cmd {
	_, cmd := ta.model.Update(msg)
	return cmd
}

func (ta *testApp) key(s string) tea.Cmd {
	return ta.send(keyMsg(s))
}

// press sends the command's message back through Update, as the program would.
func (ta *testApp) press(s string) tea.Cmd {
	cmd := ta.key(s)
	if cmd == nil {
		return nil
	}
	return ta.send(cmd())
}

func (ta *testApp) click(r proposal.Rect) tea.Cmd {
	x, y := center(r)
	return ta.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func (ta *testApp) move(x, y int) tea.Cmd {
	return ta.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
}

// settle finishes any relocation animation and releases the guard.
func (ta *testApp) settle() {
	ta.clock.Advance(proposal.TransitionDuration)
	ta.send(frameMsg(ta.clock.Now()))
	ta.sched.Fire()
}

func (ta *testApp) kinds() []proposal.EventKind {
	out := make([]proposal.EventKind, len(ta.events))
	for i, e := range ta.events {
		out[i] = e.Kind
	}
	return out
}

func (ta *testApp) count(kind proposal.EventKind) int {
	n := 0
	for _, e := range ta.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func center(r proposal.Rect) (int, int) {
	return int(r.X + r.W/2), int(r.Y + r.H/2)
}

func stripANSI(s string) string {
	return ansi.Strip(s)
}
