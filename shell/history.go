// Copyright © 2025 Scrollsh contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/history.go
// Summary: Command-recall cursor over previously submitted lines.

package shell

import "strings"

// notBrowsing marks the cursor as parked: the input line is live text,
// not a recalled entry. It is distinct from both index 0 and the last
// index so that browsing down past the newest entry lands on an empty
// line instead of re-showing it.
const notBrowsing = -1

// History holds previously submitted commands and the recall cursor.
type History struct {
	entries []string
	cursor  int
}

// NewHistory creates an empty history with the cursor parked.
func NewHistory() *History {
	return &History{cursor: notBrowsing}
}

// Preload seeds entries restored from a persistent store, oldest first.
// Blank entries are skipped; the cursor stays parked so recall starts
// from the newest entry.
func (h *History) Preload(entries []string) {
	for _, e := range entries {
		if strings.TrimSpace(e) != "" {
			h.entries = append(h.entries, e)
		}
	}
	h.cursor = notBrowsing
}

// Record appends a submitted command and parks the cursor. Commands that
// are blank after trimming are never recorded, but the cursor still
// resets.
func (h *History) Record(entry string) {
	h.cursor = notBrowsing
	if strings.TrimSpace(entry) == "" {
		return
	}
	h.entries = append(h.entries, entry)
}

// Older moves the cursor toward the oldest entry and returns the entry at
// the new position. ok is false when there is nothing further back; the
// cursor does not move in that case.
func (h *History) Older() (entry string, ok bool) {
	switch {
	case len(h.entries) == 0:
		return "", false
	case h.cursor == notBrowsing:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	default:
		return "", false
	}
	return h.entries[h.cursor], true
}

// Newer moves the cursor toward the newest entry. ok=false means the
// cursor was parked and the input line must stay untouched. ok=true with
// an empty entry means browsing just finished: the caller should clear
// the input line back to live editing.
func (h *History) Newer() (entry string, ok bool) {
	if h.cursor == notBrowsing {
		return "", false
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
		return h.entries[h.cursor], true
	}
	h.cursor = notBrowsing
	return "", true
}

// Browsing reports whether the cursor currently points at an entry.
func (h *History) Browsing() bool { return h.cursor != notBrowsing }

// Len returns the number of recorded entries.
func (h *History) Len() int { return len(h.entries) }
