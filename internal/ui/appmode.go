package ui

import "proposal/internal/proposal"

// AppMode represents the top-level screen: the interactive proposal or the celebration.
type AppMode int

const (
	ModeProposing AppMode = iota
	ModeAccepted
)

func (m AppMode) String() string {
	switch m {
	case ModeProposing:
		return "Proposing"
	case ModeAccepted:
		return "Accepted"
	default:
		return "Unknown"
	}
}

// modeFor maps the state machine phase to the screen shown for it.
func modeFor(p proposal.Phase) AppMode {
	if p == proposal.PhaseAccepted {
		return ModeAccepted
	}
	return ModeProposing
}
