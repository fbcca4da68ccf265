package ui

import "time"

// AcceptMsg is sent when the user presses Yes from the keyboard (y).
type AcceptMsg struct{}

// RejectMsg is sent when the user presses No from the keyboard (n).
type RejectMsg struct{}

// FocusNextMsg moves keyboard focus to the next button (tab).
type FocusNextMsg struct{}

// FocusPrevMsg moves keyboard focus to the previous button (shift+tab).
type FocusPrevMsg struct{}

// ActivateMsg presses the focused button (enter).
type ActivateMsg struct{}

// ToggleHelpMsg switches between the compact and full help (?).
type ToggleHelpMsg struct{}

// QuitMsg tears the view down and exits the program (q, ctrl+c).
type QuitMsg struct{}

// frameMsg drives the No button relocation animation.
type frameMsg time.Time
