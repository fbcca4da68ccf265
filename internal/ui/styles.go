package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for the signature, help keys
	ColorHighlight = "205" // Magenta - for borders, the question
	ColorDanger    = "196" // Red - for the No button
	ColorSuccess   = "35"  // Green - for the Yes button
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorGold      = "221" // Yellow - for the celebration caption
	ColorWhite     = "231"
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	// Text styles
	Heading   lipgloss.Style // Main phrase, wraps within the view width
	Question  lipgloss.Style // Bold highlight subheading
	Signature lipgloss.Style // Accent, italic
	Mood      lipgloss.Style // Mood art
	Muted     lipgloss.Style // Dimmed text
	Hint      lipgloss.Style // Help/hint text

	// Buttons
	YesButton lipgloss.Style // Green, white border; padding grows with scale
	NoButton  lipgloss.Style // Red, white border

	// Celebration
	Caption  lipgloss.Style // Bold gold caption in a rounded box
	Happiest lipgloss.Style
	Link     lipgloss.Style
}{
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)).
		Align(lipgloss.Center),
	Question: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)).
		Align(lipgloss.Center),
	Signature: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Italic(true),
	Mood: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	YesButton: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color(ColorSuccess)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorWhite)),
	NoButton: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color(ColorDanger)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorWhite)).
		Padding(0, 2),
	Caption: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorGold)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 3),
	Happiest: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Underline(true),
}

// focusedBorder marks the keyboard-focused button.
func focusedBorder(s lipgloss.Style) lipgloss.Style {
	return s.BorderStyle(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color(ColorGold))
}
