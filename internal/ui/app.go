package ui

import (
	"log"
	"time"

	"proposal/internal/proposal"
	"proposal/internal/proposal/content"

	tea "github.com/charmbracelet/bubbletea"
)

// Config wires an AppModel. Content, Margin, Probe and Now are optional.
// Scheduler defaults to a scheduler driven by the Bubble Tea loop, in which
// case Attach must be called with the running program.
type Config struct {
	Content   content.Content
	Rand      proposal.Rand
	Scheduler proposal.Scheduler
	Observer  proposal.Observer
	Margin    float64
	Probe     ProbeFunc
	Now       func() time.Time
}

// AppModel is the root model. It owns the proposal view and routes keys
// through the keybind registry before the view sees them.
type AppModel struct {
	Proposal   *ProposalView
	KeyHandler *KeyHandler

	scheduler *loopScheduler
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Proposal.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerFiredMsg:
		if msg.fire != nil {
			msg.fire()
		}
		return a, nil
	case QuitMsg:
		a.Close()
		return a, tea.Quit
	case tea.KeyMsg:
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Proposal.Mode()); consumed {
				return a, keyCmd
			}
		}
		return a, nil
	}

	v, cmd := a.Proposal.Update(msg)
	if p, ok := v.(*ProposalView); ok {
		a.Proposal = p
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.Proposal.View()
}

// NewAppModel creates the root application model.
func NewAppModel(cfg Config) *AppModel {
	m := &AppModel{}
	sched := cfg.Scheduler
	if sched == nil {
		m.scheduler = &loopScheduler{}
		sched = m.scheduler
	}
	rng := cfg.Rand
	if rng == nil {
		rng = proposal.NewRand(0)
	}
	state := proposal.New(proposal.Options{
		Content:   cfg.Content,
		Rand:      rng,
		Scheduler: sched,
		Observer:  cfg.Observer,
		Margin:    cfg.Margin,
	})

	reg := NewKeybindRegistry()
	proposing := []AppMode{ModeProposing}
	reg.BindWithDescForMode("y", msgCmd(AcceptMsg{}), "Yes", proposing)
	reg.BindWithDescForMode("n", msgCmd(RejectMsg{}), "No", proposing)
	reg.BindWithDescForMode("tab", msgCmd(FocusNextMsg{}), "Next button", proposing)
	reg.BindWithDescForMode("shift+tab", msgCmd(FocusPrevMsg{}), "Previous button", proposing)
	reg.BindWithDescForMode("enter", msgCmd(ActivateMsg{}), "Press", proposing)
	reg.BindWithDesc("?", msgCmd(ToggleHelpMsg{}), "Help")
	reg.BindWithDesc("q", msgCmd(QuitMsg{}), "Quit")
	reg.BindWithDesc("ctrl+c", msgCmd(QuitMsg{}), "Quit")
	reg.Bind("esc", msgCmd(QuitMsg{}))

	m.KeyHandler = NewKeyHandler(reg)
	m.Proposal = NewProposalView(state, reg, cfg.Probe, cfg.Now)
	return m
}

// Attach delivers scheduled callbacks to p. It is a no-op when the model was
// built with its own Scheduler.
func (m *AppModel) Attach(p *tea.Program) {
	if m.scheduler == nil || p == nil {
		return
	}
	m.scheduler.attach(p.Send)
}

// Close stops pending timers. Safe to call more than once.
func (m *AppModel) Close() {
	if m.Proposal == nil {
		return
	}
	st := m.Proposal.State()
	if !st.Closed() {
		log.Printf("ui: closing after %d rejection(s), accepted=%v", st.Rejections(), st.Accepted())
	}
	st.Close()
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
