package trace

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Span names. Interaction spans are named "proposal.<event kind>".
const (
	SpanSession = "proposal.session"
	spanPrefix  = "proposal."
)

// Trace status values.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
)

// Span represents a span with start time and duration. Duration is zero
// while the span is still open.
type Span struct {
	TraceID    string
	SpanID     string
	ParentID   string
	Name       string
	StartTime  time.Time
	Duration   time.Duration
	Attributes map[string]string
	Children   []*Span
}

// Trace represents one proposal session.
type Trace struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	RootSpan  *Span
	Status    string
}

// NewTraceID generates a random 16-byte trace ID as hex string (32 characters)
func NewTraceID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// NewSpanID generates a random 8-byte span ID as hex string (16 characters)
func NewSpanID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// clone deep-copies a span tree.
func (s *Span) clone() *Span {
	if s == nil {
		return nil
	}
	c := *s
	c.Attributes = make(map[string]string, len(s.Attributes))
	for k, v := range s.Attributes {
		c.Attributes[k] = v
	}
	c.Children = make([]*Span, len(s.Children))
	for i, child := range s.Children {
		c.Children[i] = child.clone()
	}
	return &c
}
