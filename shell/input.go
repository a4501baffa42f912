// Copyright © 2025 Scrollsh contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/input.go
// Summary: The editable, not-yet-submitted command line.

package shell

// InputLine holds the command text being edited. Empty is valid.
type InputLine struct {
	runes []rune
}

// Push appends one character.
func (l *InputLine) Push(r rune) {
	l.runes = append(l.runes, r)
}

// PopBack removes the last character. No-op on an empty line.
func (l *InputLine) PopBack() {
	if len(l.runes) > 0 {
		l.runes = l.runes[:len(l.runes)-1]
	}
}

// Replace swaps the whole line, used by history recall.
func (l *InputLine) Replace(text string) {
	l.runes = []rune(text)
}

// Clear empties the line.
func (l *InputLine) Clear() {
	l.runes = l.runes[:0]
}

// Text returns the current line.
func (l *InputLine) Text() string {
	return string(l.runes)
}

// Len returns the number of characters in the line.
func (l *InputLine) Len() int { return len(l.runes) }
