// Copyright © 2025 Scrollsh contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/event.go
// Summary: Driver-neutral input events consumed by the session loop.

package shell

// EventType enumerates the key and terminal events the session reacts to.
// The driver translates its native events into these; anything it cannot
// map is dropped before reaching the session.
type EventType int

const (
	// EventRune is a printable character key.
	EventRune EventType = iota
	EventEnter
	EventEsc
	EventBackspace
	EventUp
	EventDown
	EventPageUp
	EventPageDown
	// EventResize carries the new viewport height after a terminal resize.
	EventResize
)

// Event is one discrete input event.
type Event struct {
	Type EventType
	// Rune is the character for EventRune.
	Rune rune
	// Ctrl marks the control modifier. On Up/Down it selects viewport
	// scrolling instead of history recall.
	Ctrl bool
	// Height is the new viewport height for EventResize.
	Height int
}
