package proposal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer_FiresOnce(t *testing.T) {
	s := &fakeScheduler{}
	tm := NewTimer(s)
	fired := 0
	tm.Reset(100*time.Millisecond, func() { fired++ })
	assert.Equal(t, 1, s.Live())

	s.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, fired)
	s.Advance(1 * time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, s.Live())
	assert.False(t, tm.Stop(), "nothing pending after firing")

	s.Advance(time.Second)
	assert.Equal(t, 1, fired)
}

func TestTimer_ResetReplacesPending(t *testing.T) {
	s := &fakeScheduler{}
	tm := NewTimer(s)
	var got []string
	tm.Reset(100*time.Millisecond, func() { got = append(got, "first") })
	s.Advance(50 * time.Millisecond)
	tm.Reset(100*time.Millisecond, func() { got = append(got, "second") })

	assert.Equal(t, 1, s.Live(), "at most one pending callback")
	s.Advance(60 * time.Millisecond)
	assert.Empty(t, got)
	s.Advance(40 * time.Millisecond)
	assert.Equal(t, []string{"second"}, got)
}

func TestTimer_Stop(t *testing.T) {
	s := &fakeScheduler{}
	tm := NewTimer(s)
	fired := false
	tm.Reset(10*time.Millisecond, func() { fired = true })
	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())
	s.Advance(time.Second)
	assert.False(t, fired)
}

func TestTimer_DropsAlreadyQueuedCallback(t *testing.T) {
	// A scheduler whose stop never succeeds models a callback that was
	// already handed to the event loop when it was superseded.
	leaky := &leakyScheduler{}
	tm := NewTimer(leaky)
	var got []int
	tm.Reset(time.Millisecond, func() { got = append(got, 1) })
	tm.Reset(time.Millisecond, func() { got = append(got, 2) })

	for _, fn := range leaky.queued {
		fn()
	}
	assert.Equal(t, []int{2}, got)

	tm.Reset(time.Millisecond, func() { got = append(got, 3) })
	tm.Stop()
	leaky.queued[len(leaky.queued)-1]()
	assert.Equal(t, []int{2}, got)
}
