package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the help bar for mode. With full set, every
// binding is listed in a bordered column; otherwise a compact one-line bar.
func RenderKeybindHelp(registry *KeybindRegistry, mode AppMode, full bool) string {
	if registry == nil {
		return ""
	}
	km := NewKeyMap(registry, mode)

	helpModel := help.New()
	helpModel.ShowAll = full
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.FullKey = helpModel.Styles.ShortKey
	helpModel.Styles.FullDesc = helpModel.Styles.ShortDesc
	helpModel.Styles.FullSeparator = helpModel.Styles.ShortSeparator

	content := helpModel.View(km)
	if content == "" || !full {
		return content
	}
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	return boxStyle.Render(content)
}
