package trace

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"proposal/internal/proposal"
)

// exportTimeout bounds the synchronous export when a session closes.
const exportTimeout = 10 * time.Second

// Recorder builds a Trace from view events: a root session span with one
// child span per event. A hover taunt span stays open until the taunt is
// cleared; a relocation span lasts as long as its transition.
type Recorder struct {
	mu        sync.Mutex
	now       func() time.Time
	trace     *Trace
	openHover *Span
	exporter  *OTLPExporter
}

// Ensure Recorder can observe a proposal.View.
var _ proposal.Observer = (*Recorder)(nil)

// NewRecorder starts a running trace. exporter may be nil; when set the
// trace is exported once the session closes.
func NewRecorder(exporter *OTLPExporter, now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	start := now()
	id := NewTraceID()
	return &Recorder{
		now:      now,
		exporter: exporter,
		trace: &Trace{
			ID:        id,
			StartTime: start,
			Status:    StatusRunning,
			RootSpan: &Span{
				TraceID:    id,
				SpanID:     NewSpanID(),
				Name:       SpanSession,
				StartTime:  start,
				Attributes: make(map[string]string),
			},
		},
	}
}

// OnEvent implements proposal.Observer.
func (r *Recorder) OnEvent(e proposal.Event) {
	r.mu.Lock()
	var done *Trace
	if r.trace.Status != StatusCompleted {
		r.record(e)
		if e.Kind == proposal.EventClosed {
			done = r.snapshot()
		}
	}
	r.mu.Unlock()

	// Export outside the lock: this is the final event and it must be
	// flushed before the process exits.
	if done != nil && r.exporter != nil {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		if err := r.exporter.ExportTrace(ctx, done); err != nil {
			log.Printf("trace: export failed: %v", err)
		}
		cancel()
	}
}

// record must be called with r.mu held.
func (r *Recorder) record(e proposal.Event) {
	at := r.now()
	root := r.trace.RootSpan
	root.Attributes["rejections"] = strconv.Itoa(e.Rejections)

	switch e.Kind {
	case proposal.EventHoverCleared:
		if r.openHover != nil {
			r.closeHover(at)
			return
		}
	case proposal.EventAccepted:
		root.Attributes["outcome"] = "accepted"
		root.Attributes["caption"] = e.Text
	case proposal.EventClosed:
		r.closeHover(at)
		r.trace.EndTime = at
		r.trace.Status = StatusCompleted
		root.Duration = at.Sub(root.StartTime)
		if _, ok := root.Attributes["outcome"]; !ok {
			root.Attributes["outcome"] = "abandoned"
		}
		return
	}

	span := &Span{
		TraceID:    r.trace.ID,
		SpanID:     NewSpanID(),
		ParentID:   root.SpanID,
		Name:       spanPrefix + string(e.Kind),
		StartTime:  at,
		Attributes: eventAttributes(e),
	}
	switch e.Kind {
	case proposal.EventEvaded:
		span.Duration = e.Placement.Transition.Duration
	case proposal.EventHoverShown:
		r.closeHover(at)
		r.openHover = span
	}
	root.Children = append(root.Children, span)
}

// closeHover ends a taunt span that was never cleared. A re-shown taunt
// replaces the previous one.
func (r *Recorder) closeHover(at time.Time) {
	if r.openHover == nil {
		return
	}
	r.openHover.Duration = at.Sub(r.openHover.StartTime)
	r.openHover = nil
}

func eventAttributes(e proposal.Event) map[string]string {
	attrs := map[string]string{
		"rejections": strconv.Itoa(e.Rejections),
	}
	if e.Text != "" {
		attrs["text"] = e.Text
	}
	if e.Kind == proposal.EventEvaded {
		attrs["trigger"] = string(e.Trigger)
		attrs["x"] = strconv.FormatFloat(e.Placement.X, 'f', 1, 64)
		attrs["y"] = strconv.FormatFloat(e.Placement.Y, 'f', 1, 64)
	}
	return attrs
}

// Trace returns a copy of the trace recorded so far.
func (r *Recorder) Trace() *Trace {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// snapshot must be called with r.mu held.
func (r *Recorder) snapshot() *Trace {
	t := *r.trace
	t.RootSpan = r.trace.RootSpan.clone()
	return &t
}

// Shutdown flushes pending exports and closes the OTLP exporter.
// Must be called before process exit to ensure traces are exported.
func (r *Recorder) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	exporter := r.exporter
	r.mu.Unlock()

	if exporter != nil {
		return exporter.Shutdown(ctx)
	}
	return nil
}
