package proposal

import (
	"time"

	"proposal/internal/proposal/content"
)

// Phase is the top-level state of the view.
type Phase int

const (
	PhaseProposing Phase = iota
	PhaseAccepted
)

func (p Phase) String() string {
	switch p {
	case PhaseProposing:
		return "Proposing"
	case PhaseAccepted:
		return "Accepted"
	default:
		return "Unknown"
	}
}

// Trigger names what caused a relocation.
type Trigger string

const (
	TriggerClick Trigger = "click"
	TriggerHover Trigger = "hover"
)

// Options configures a View. Zero values fall back to the package defaults.
type Options struct {
	Content   content.Content
	Rand      Rand
	Scheduler Scheduler
	Observer  Observer

	Threshold     int
	Margin        float64
	Transition    time.Duration
	HoverDuration time.Duration
}

// View is the proposal state machine. It is not safe for concurrent use; all
// methods and scheduled callbacks must run on one goroutine.
type View struct {
	content  content.Content
	rng      Rand
	observer Observer

	threshold     int
	margin        float64
	transition    time.Duration
	hoverDuration time.Duration

	rejections  int
	accepted    bool
	caption     string
	placement   Placement
	placed      bool
	hoverActive bool
	hoverTaunt  string
	animating   bool
	closed      bool

	hoverTimer *Timer
	guardTimer *Timer
}

// New creates a view in PhaseProposing. Rand and Scheduler are required.
func New(opts Options) *View {
	if opts.Threshold <= 0 {
		opts.Threshold = Threshold
	}
	if opts.Margin <= 0 {
		opts.Margin = DefaultMargin
	}
	if opts.Transition <= 0 {
		opts.Transition = TransitionDuration
	}
	if opts.HoverDuration <= 0 {
		opts.HoverDuration = HoverMessageDuration
	}
	if opts.Content.Initial == "" {
		opts.Content = content.Default()
	}
	if opts.Observer == nil {
		opts.Observer = NoopObserver{}
	}
	return &View{
		content:       opts.Content,
		rng:           opts.Rand,
		observer:      opts.Observer,
		threshold:     opts.Threshold,
		margin:        opts.Margin,
		transition:    opts.Transition,
		hoverDuration: opts.HoverDuration,
		hoverTimer:    NewTimer(opts.Scheduler),
		guardTimer:    NewTimer(opts.Scheduler),
	}
}

// Phase returns PhaseAccepted once Yes was pressed.
func (v *View) Phase() Phase {
	if v.accepted {
		return PhaseAccepted
	}
	return PhaseProposing
}

// Content returns the phrases and images the view draws from.
func (v *View) Content() content.Content { return v.content }

// Rejections returns how many times No was activated.
func (v *View) Rejections() int { return v.rejections }

// Accepted reports whether Yes was pressed.
func (v *View) Accepted() bool { return v.accepted }

// Caption returns the celebration caption, empty until accepted.
func (v *View) Caption() string { return v.caption }

// HoverActive reports whether a hover taunt is showing.
func (v *View) HoverActive() bool { return v.hoverActive }

// Animating reports whether the relocation guard is held.
func (v *View) Animating() bool { return v.animating }

// Closed reports whether Close was called.
func (v *View) Closed() bool { return v.closed }

// Threshold returns the rejection count from which No evades.
func (v *View) Threshold() int { return v.threshold }

// Evasive reports whether the No button has left its inline slot.
func (v *View) Evasive() bool {
	return v.rejections >= v.threshold
}

// Placement returns the absolute position of the No button. It is only
// meaningful once the view is evasive and a relocation has happened.
func (v *View) Placement() (Placement, bool) {
	if !v.Evasive() || !v.placed {
		return Placement{}, false
	}
	return v.placement, true
}

// Heading returns the current main phrase.
func (v *View) Heading() string {
	return Heading(v.content, v.rejections, v.hoverActive, v.hoverTaunt)
}

// Question returns the subheading.
func (v *View) Question() string {
	return Question(v.content)
}

// Mood returns the image to show for the current state.
func (v *View) Mood() content.Mood {
	return MoodFor(v.rejections, v.accepted)
}

// YesScale returns the current scale factor of the Yes button.
func (v *View) YesScale() float64 {
	return YesScale(v.rejections)
}

// NoLabel returns the current text of the No button.
func (v *View) NoLabel() string {
	return NoLabel(v.rejections)
}

// Reject handles a click on No. It is ignored while a relocation is animating
// or after acceptance. From the threshold on, the button is relocated.
// Reports whether the click was processed.
func (v *View) Reject(s Surface) bool {
	if v.closed {
		return false
	}
	if v.accepted {
		v.ignore(EventRejected, "accepted")
		return false
	}
	if v.animating {
		v.ignore(EventRejected, "animating")
		return false
	}
	v.rejections++
	v.observer.OnEvent(Event{Kind: EventRejected, Rejections: v.rejections})
	if v.rejections >= v.threshold {
		v.evade(s, TriggerClick)
	}
	return true
}

// HoverEnter handles the pointer entering the No button. Below the threshold,
// or while animating, it does nothing. Otherwise it relocates the button,
// shows a taunt and restarts the taunt's expiry. Reports whether it was processed.
func (v *View) HoverEnter(s Surface) bool {
	if v.closed || v.accepted || v.rejections < v.threshold {
		return false
	}
	if v.animating {
		v.ignore(EventHoverShown, "animating")
		return false
	}
	v.evade(s, TriggerHover)
	v.hoverActive = true
	v.hoverTaunt = PickTaunt(v.content, v.rng)
	v.hoverTimer.Reset(v.hoverDuration, v.clearHover)
	v.observer.OnEvent(Event{Kind: EventHoverShown, Rejections: v.rejections, Text: v.hoverTaunt})
	return true
}

// Accept handles a click on Yes. It always succeeds; the caption is chosen on
// the first call and kept afterwards.
func (v *View) Accept() {
	if v.closed || v.accepted {
		return
	}
	v.accepted = true
	v.caption = PickCaption(v.content, v.rng)
	v.hoverTimer.Stop()
	v.guardTimer.Stop()
	v.hoverActive = false
	v.animating = false
	v.observer.OnEvent(Event{Kind: EventAccepted, Rejections: v.rejections, Text: v.caption})
}

// Close releases pending timers. Nothing mutates the view afterwards.
func (v *View) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.hoverTimer.Stop()
	v.guardTimer.Stop()
	v.observer.OnEvent(Event{Kind: EventClosed, Rejections: v.rejections})
}

// evade relocates the No button and holds the animation guard for the
// transition. A surface that is not laid out makes it a no-op.
func (v *View) evade(s Surface, trigger Trigger) {
	if s == nil {
		return
	}
	button, ok := s.NoButton()
	if !ok {
		return
	}
	vp, ok := s.Viewport()
	if !ok {
		return
	}
	p, ok := Evade(button, vp, v.margin, v.rng)
	if !ok {
		return
	}
	p.Transition.Duration = v.transition
	v.placement = p
	v.placed = true
	v.animating = true
	v.guardTimer.Reset(v.transition, v.releaseGuard)
	v.observer.OnEvent(Event{Kind: EventEvaded, Rejections: v.rejections, Trigger: trigger, Placement: p})
}

func (v *View) releaseGuard() {
	if v.closed {
		return
	}
	v.animating = false
}

func (v *View) clearHover() {
	if v.closed {
		return
	}
	v.hoverActive = false
	v.observer.OnEvent(Event{Kind: EventHoverCleared, Rejections: v.rejections})
}

func (v *View) ignore(kind EventKind, reason string) {
	v.observer.OnEvent(Event{Kind: EventIgnored, Rejections: v.rejections, Text: string(kind) + ": " + reason})
}
