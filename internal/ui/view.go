package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a screen with its own Bubble Tea style Init/Update/View cycle.
// Update may return a different View to replace itself.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
