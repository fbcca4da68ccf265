package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerFiredMsg carries a due state machine callback onto the event loop.
type timerFiredMsg struct {
	fire func()
}

// loopScheduler implements proposal.Scheduler on top of time.AfterFunc.
// Due callbacks are not run on the timer goroutine: they are sent to the
// program as timerFiredMsg and executed inside Update, so the state machine
// only ever runs on the Bubble Tea loop.
type loopScheduler struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

// attach sets the function used to deliver callbacks, usually (*tea.Program).Send.
func (s *loopScheduler) attach(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

// AfterFunc implements proposal.Scheduler. Callbacks that come due before
// the scheduler is attached are dropped.
func (s *loopScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	t := time.AfterFunc(d, func() {
		s.mu.Lock()
		send := s.send
		s.mu.Unlock()
		if send != nil {
			send(timerFiredMsg{fire: fn})
		}
	})
	return t.Stop
}
