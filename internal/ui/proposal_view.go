package ui

import (
	"log"
	"math"
	"strings"
	"time"

	"proposal/internal/proposal"
	"proposal/internal/proposal/content"
	"proposal/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// frameInterval paces the relocation animation (~60fps).
const frameInterval = 16 * time.Millisecond

// ProbeFunc measures the terminal directly. It returns false when the
// measurement is unavailable.
type ProbeFunc func() (width, height int, ok bool)

// moveAnim interpolates the No button from one position to another.
type moveAnim struct {
	fromX, fromY float64
	to           proposal.Placement
	start        time.Time
}

// ProposalView renders the proposal state machine and translates mouse and
// keyboard input into its operations.
type ProposalView struct {
	state    *proposal.View
	registry *KeybindRegistry
	focus    *FocusManager
	probe    ProbeFunc
	now      func() time.Time

	width, height int
	fullHelp      bool

	frame         frame
	pointerInside bool
	anim          *moveAnim
}

// Ensure ProposalView implements View and proposal.Surface.
var (
	_ View             = (*ProposalView)(nil)
	_ proposal.Surface = (*ProposalView)(nil)
)

// NewProposalView wraps state. registry supplies the help bar; probe and now
// may be nil.
func NewProposalView(state *proposal.View, registry *KeybindRegistry, probe ProbeFunc, now func() time.Time) *ProposalView {
	if now == nil {
		now = time.Now
	}
	v := &ProposalView{
		state:    state,
		registry: registry,
		focus:    newButtonFocus(),
		probe:    probe,
		now:      now,
	}
	v.focus.OnChange = func(from, to string) {
		log.Printf("ui: focus %q -> %q", from, to)
	}
	v.relayout()
	return v
}

// State returns the underlying state machine.
func (v *ProposalView) State() *proposal.View {
	return v.state
}

// Mode returns the screen currently shown.
func (v *ProposalView) Mode() AppMode {
	return modeFor(v.state.Phase())
}

// Init implements View.
func (v *ProposalView) Init() tea.Cmd {
	return nil
}

// NoButton implements proposal.Surface: the rendered box of the No button.
func (v *ProposalView) NoButton() (proposal.Rect, bool) {
	if v.width <= 0 || v.height <= 0 || v.Mode() != ModeProposing {
		return proposal.Rect{}, false
	}
	return v.frame.no, !v.frame.no.Empty()
}

// Viewport implements proposal.Surface. The reported size comes from
// WindowSizeMsg, the probed size from the terminal itself.
func (v *ProposalView) Viewport() (proposal.Viewport, bool) {
	if v.width <= 0 || v.height <= 0 {
		return proposal.Viewport{}, false
	}
	vp := proposal.Viewport{Reported: proposal.Size{W: float64(v.width), H: float64(v.height)}}
	if v.probe != nil {
		if w, h, ok := v.probe(); ok {
			vp.Probed = proposal.Size{W: float64(w), H: float64(h)}
		}
	}
	return vp, true
}

// Update implements View.
func (v *ProposalView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.relayout()
		return v, nil
	case tea.MouseMsg:
		return v, v.handleMouse(msg)
	case AcceptMsg:
		v.accept()
		return v, nil
	case RejectMsg:
		return v, v.reject()
	case FocusNextMsg:
		v.focus.Next()
	case FocusPrevMsg:
		v.focus.Prev()
	case ActivateMsg:
		switch v.focus.Current {
		case focusYes:
			v.accept()
		case focusNo:
			return v, v.reject()
		}
	case ToggleHelpMsg:
		v.fullHelp = !v.fullHelp
	case frameMsg:
		if v.anim == nil {
			return v, nil
		}
		if v.animDone() {
			v.anim = nil
			v.relayout()
			return v, nil
		}
		v.relayout()
		return v, frameTick()
	}
	v.relayout()
	return v, nil
}

// handleMouse hit-tests a mouse event against the last laid-out frame.
// A left press on a button is consumed by that button only. No is tested
// first: once evasive it is drawn on top of everything else, Yes included.
func (v *ProposalView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if v.Mode() != ModeProposing {
		return nil
	}
	x, y := float64(msg.X), float64(msg.Y)
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		switch {
		case v.frame.no.Contains(x, y):
			v.focus.SetFocus(focusNo)
			return v.reject()
		case v.frame.yes.Contains(x, y):
			v.accept()
			return nil
		}
	case msg.Action == tea.MouseActionMotion:
		inside := v.frame.no.Contains(x, y)
		entered := inside && !v.pointerInside
		v.pointerInside = inside
		if entered {
			return v.hoverEnter()
		}
	}
	return nil
}

func (v *ProposalView) accept() {
	v.state.Accept()
	v.anim = nil
	v.relayout()
}

func (v *ProposalView) reject() tea.Cmd {
	v.relayout()
	before, _ := v.state.Placement()
	if !v.state.Reject(v) {
		return nil
	}
	return v.afterMove(before)
}

func (v *ProposalView) hoverEnter() tea.Cmd {
	v.relayout()
	before, _ := v.state.Placement()
	if !v.state.HoverEnter(v) {
		return nil
	}
	return v.afterMove(before)
}

// afterMove starts an animation from the currently rendered No button to the
// new placement, if the state machine relocated it.
func (v *ProposalView) afterMove(before proposal.Placement) tea.Cmd {
	after, ok := v.state.Placement()
	if !ok || after == before {
		v.relayout()
		return nil
	}
	v.anim = &moveAnim{
		fromX: v.frame.no.X,
		fromY: v.frame.no.Y,
		to:    after,
		start: v.now(),
	}
	v.relayout()
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// animDone reports whether the relocation transition has elapsed.
func (v *ProposalView) animDone() bool {
	if v.anim == nil {
		return true
	}
	return v.now().Sub(v.anim.start) >= v.anim.to.Transition.Duration
}

// noPosition is where the evasive No button is drawn right now.
func (v *ProposalView) noPosition(p proposal.Placement) (int, int) {
	x, y := p.X, p.Y
	if a := v.anim; a != nil && a.to == p && a.to.Transition.Duration > 0 {
		t := float64(v.now().Sub(a.start)) / float64(a.to.Transition.Duration)
		e := a.to.Transition.Easing.At(t)
		x = a.fromX + (p.X-a.fromX)*e
		y = a.fromY + (p.Y-a.fromY)*e
	}
	return int(math.Floor(x)), int(math.Floor(y))
}

// View implements View.
func (v *ProposalView) View() string {
	v.relayout()
	return v.frame.String()
}

func (v *ProposalView) size() (int, int) {
	w, h := v.width, v.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// relayout recomputes the frame and the button hit boxes from current state.
func (v *ProposalView) relayout() {
	w, h := v.size()
	footer := RenderKeybindHelp(v.registry, v.Mode(), v.fullHelp)
	footerH := 0
	if footer != "" {
		footerH = lipgloss.Height(footer)
	}
	bodyH := max(0, h-footerH)

	var f frame
	if v.Mode() == ModeAccepted {
		f = v.layoutAccepted(w, bodyH)
	} else {
		f = v.layoutProposing(w, bodyH)
	}
	f.lines = fit(f.lines, bodyH)
	if footer != "" {
		f.lines = append(f.lines, strings.Split(footer, "\n")...)
	}
	if !v.state.Evasive() || f.no.Empty() {
		v.frame = f
		return
	}
	if p, ok := v.state.Placement(); ok {
		block := noButton(v.state.NoLabel(), v.focus.Is(focusNo))
		x, y := v.noPosition(p)
		f.lines = textutil.Overlay(f.lines, block, x, y)
		f.no = proposal.Rect{X: float64(x), Y: float64(y), W: f.no.W, H: f.no.H}
	}
	v.frame = f
}

func (v *ProposalView) layoutProposing(w, h int) frame {
	s := v.state
	textW := min(max(w-4, 10), maxTextWidth)

	yes := yesButton(s.YesScale(), v.focus.Is(focusYes))
	no := noButton(s.NoLabel(), v.focus.Is(focusNo))

	_, evasive := s.Placement()
	var row string
	var rects []proposal.Rect
	if evasive {
		row, rects = buttonRow(yes)
	} else {
		row, rects = buttonRow(yes, no)
	}

	blocks := []string{
		Styles.Mood.Render(content.Art(s.Mood())),
		"",
		Styles.Heading.Width(textW).Render(s.Heading()),
		Styles.Question.Width(textW).Render(s.Question()),
		"",
		row,
		"",
		Styles.Signature.Render(textutil.Truncate(s.Content().Signature, textW)),
	}
	const rowIndex = 5
	lines, pos := stack(blocks, w, h)

	f := frame{lines: lines, yes: offset(rects[0], pos[rowIndex])}
	if evasive {
		// Size of the detached button; its origin is set by the overlay.
		f.no = proposal.Rect{W: float64(lipgloss.Width(no)), H: float64(lipgloss.Height(no))}
	} else {
		f.no = offset(rects[1], pos[rowIndex])
	}
	return f
}

func (v *ProposalView) layoutAccepted(w, h int) frame {
	s := v.state
	c := s.Content()
	src := c.Source(content.MoodCelebration)
	link := ansi.SetHyperlink(src) + Styles.Link.Render("▶ watch the celebration") + ansi.ResetHyperlink()

	blocks := []string{
		Styles.Mood.Render(content.Art(s.Mood())),
		"",
		Styles.Caption.Render(s.Caption()),
		"",
		Styles.Happiest.Render(c.Happiest),
		"",
		link,
		"",
		Styles.Muted.Render(textutil.Truncate(c.Credit, max(w-2, 1))),
	}
	lines, _ := stack(blocks, w, h)
	return frame{lines: lines}
}
