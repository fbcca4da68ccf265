// Package proposal implements the proposal view as a terminal-independent state
// machine.
//
// A [View] starts in [PhaseProposing]. Every rejection increments a counter that
// drives the heading phrase, the mood image and the growth of the Yes button.
// From [Threshold] rejections on, the No button evades: each qualifying click or
// hover-enter relocates it through [Evade]. Accepting moves the view to
// [PhaseAccepted], which is terminal.
//
// Deferred work (clearing the hover taunt, releasing the animation guard) goes
// through a [Scheduler] so the rendering surface decides which goroutine runs
// the callbacks. Randomness comes from an injected [Rand].
package proposal
