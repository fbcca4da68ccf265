// Package ui renders the proposal view in the terminal with Bubble Tea.
//
// Core abstractions:
//   - View: a screen with its own model, update, view (Elm-style)
//   - ProposalView: lays out the mood art, phrases and buttons, hit-tests the
//     mouse and forwards clicks and hover-enters to the state machine
//   - KeybindRegistry / KeyHandler: keyboard shortcuts, filtered by AppMode
//   - FocusManager: tab order between the Yes and No buttons
//   - loopScheduler: runs state machine timers on the Bubble Tea event loop
package ui
