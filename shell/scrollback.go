// Copyright © 2025 Scrollsh contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/scrollback.go
// Summary: Append-only scrollback log with a clamped viewport offset.

package shell

// Scrollback is the accumulated log of prompt echoes and command output,
// plus the scroll state of the viewport looking into it. Lines are never
// reordered or dropped; only the offset moves.
//
// Invariant: 0 <= offset <= max(0, len(lines)-height), re-established on
// every mutation of lines or height.
type Scrollback struct {
	lines  []string
	offset int
	height int
}

// NewScrollback creates an empty scrollback for a viewport of the given
// height. Heights below one are raised to one.
func NewScrollback(height int) *Scrollback {
	if height < 1 {
		height = 1
	}
	return &Scrollback{height: height}
}

// AppendLine adds one line at the end. If the view was pinned to the
// bottom it follows the new line; a user reading back in history is not
// yanked forward.
func (s *Scrollback) AppendLine(text string) {
	atBottom := s.offset == s.maxScroll()
	s.lines = append(s.lines, text)
	if atBottom {
		s.offset = s.maxScroll()
	}
}

// ScrollUp moves the viewport n lines toward the oldest line, saturating
// at the top.
func (s *Scrollback) ScrollUp(n int) {
	s.setOffset(s.offset - n)
}

// ScrollDown moves the viewport n lines toward the newest line,
// saturating at the bottom.
func (s *Scrollback) ScrollDown(n int) {
	s.setOffset(s.offset + n)
}

// Resize updates the viewport height and re-clamps the offset.
func (s *Scrollback) Resize(height int) {
	if height < 1 {
		height = 1
	}
	s.height = height
	s.setOffset(s.offset)
}

// VisibleSlice returns at most height lines starting at the scroll
// offset. Empty scrollback yields an empty slice.
func (s *Scrollback) VisibleSlice() []string {
	end := s.offset + s.height
	if end > len(s.lines) {
		end = len(s.lines)
	}
	if s.offset >= end {
		return nil
	}
	return s.lines[s.offset:end]
}

// Len returns the number of stored lines.
func (s *Scrollback) Len() int { return len(s.lines) }

// Offset returns the current scroll offset.
func (s *Scrollback) Offset() int { return s.offset }

// Height returns the viewport height.
func (s *Scrollback) Height() int { return s.height }

func (s *Scrollback) maxScroll() int {
	if m := len(s.lines) - s.height; m > 0 {
		return m
	}
	return 0
}

func (s *Scrollback) setOffset(n int) {
	if n < 0 {
		n = 0
	}
	if m := s.maxScroll(); n > m {
		n = m
	}
	s.offset = n
}
