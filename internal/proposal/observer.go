package proposal

// EventKind identifies a state transition reported to an Observer.
type EventKind string

const (
	EventRejected     EventKind = "rejected"
	EventEvaded       EventKind = "evaded"
	EventHoverShown   EventKind = "hover_shown"
	EventHoverCleared EventKind = "hover_cleared"
	EventAccepted     EventKind = "accepted"
	EventIgnored      EventKind = "ignored"
	EventClosed       EventKind = "closed"
)

// Event describes one transition of a View.
type Event struct {
	Kind       EventKind
	Rejections int
	Trigger    Trigger   // set for EventEvaded
	Placement  Placement // set for EventEvaded
	Text       string    // taunt, caption or ignore reason
}

// Observer receives view events synchronously, on the view's goroutine.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// OnEvent implements Observer.
func (f ObserverFunc) OnEvent(e Event) { f(e) }

// NoopObserver discards every event.
type NoopObserver struct{}

// OnEvent implements Observer.
func (NoopObserver) OnEvent(Event) {}

// MultiObserver fans events out to several observers in order.
type MultiObserver []Observer

// OnEvent implements Observer.
func (m MultiObserver) OnEvent(e Event) {
	for _, o := range m {
		if o != nil {
			o.OnEvent(e)
		}
	}
}
