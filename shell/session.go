// Copyright © 2025 Scrollsh contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/session.go
// Summary: Session controller: the key-event loop over scrollback, input
// line and history, and the submit protocol handing lines to the runner.

package shell

import (
	"log"
	"strings"
	"time"

	"scrollsh/command"
)

// Frame is one rendered screen: the visible history slice plus the prompt
// and input text for the bottom row.
type Frame struct {
	Lines  []string
	Prompt string
	Input  string
}

// Driver is the terminal device the session runs against.
type Driver interface {
	// Poll reports whether an event is available, waiting at most timeout.
	Poll(timeout time.Duration) bool
	// Read returns the next event. Only valid after Poll reported true.
	Read() Event
	// Render draws a full frame: history rows above, prompt+input on the
	// last row.
	Render(Frame)
	// Height is the number of history rows (terminal rows minus the
	// input row).
	Height() int
}

// HistoryStore persists submitted commands across sessions. Failures are
// logged by the session and never surface in scrollback.
type HistoryStore interface {
	Append(command string) error
}

const (
	defaultPollTimeout = 100 * time.Millisecond

	farewell = "Exiting..."
)

// Session owns the scrollback, input line and history cursor, and is
// their sole mutator. It runs single-threaded: one loop alternates
// between a bounded wait for the next event and synchronous command
// execution.
type Session struct {
	drv    Driver
	runner command.Runner
	store  HistoryStore // optional

	scrollback *Scrollback
	input      *InputLine
	history    *History

	user, host string
	dir        string

	pollTimeout time.Duration
	running     bool
}

// NewSession wires a session over the given driver and command runner.
// dir is the initial working directory shown in the prompt and passed to
// the runner on every submit.
func NewSession(drv Driver, runner command.Runner, user, host, dir string) *Session {
	return &Session{
		drv:         drv,
		runner:      runner,
		scrollback:  NewScrollback(drv.Height()),
		input:       &InputLine{},
		history:     NewHistory(),
		user:        user,
		host:        host,
		dir:         dir,
		pollTimeout: defaultPollTimeout,
		running:     true,
	}
}

// SetHistoryStore attaches an optional persistent history store.
func (s *Session) SetHistoryStore(store HistoryStore) { s.store = store }

// PreloadHistory seeds the recall history, oldest first.
func (s *Session) PreloadHistory(entries []string) { s.history.Preload(entries) }

// SetPollTimeout bounds each wait for the next key event. Non-positive
// values are ignored.
func (s *Session) SetPollTimeout(d time.Duration) {
	if d > 0 {
		s.pollTimeout = d
	}
}

// Running reports whether the event loop is still live.
func (s *Session) Running() bool { return s.running }

// Dir returns the tracked working directory.
func (s *Session) Dir() string { return s.dir }

// Run executes the event loop until Esc or an exit command terminates the
// session. The poll timeout keeps resize notifications flowing even when
// no keys arrive.
func (s *Session) Run() error {
	s.appendBanner()
	s.redraw()
	for s.running {
		if !s.drv.Poll(s.pollTimeout) {
			continue
		}
		s.handleEvent(s.drv.Read())
	}
	return nil
}

func (s *Session) appendBanner() {
	s.scrollback.AppendLine("scrollsh: bash behind a scrollback pane")
	s.scrollback.AppendLine("Ctrl+Up/Down or PageUp/PageDown scroll history, Up/Down recall commands.")
	s.scrollback.AppendLine("Type 'exit' or press ESC to quit.")
	s.scrollback.AppendLine("")
}

// handleEvent dispatches one event. Redraws happen only for events that
// changed something visible; unmapped events never reach this point.
func (s *Session) handleEvent(ev Event) {
	switch ev.Type {
	case EventEsc:
		s.terminate()
	case EventEnter:
		s.submit()
	case EventRune:
		if ev.Ctrl {
			return
		}
		s.input.Push(ev.Rune)
		s.redraw()
	case EventBackspace:
		s.input.PopBack()
		s.redraw()
	case EventUp:
		if ev.Ctrl {
			s.scrollback.ScrollUp(1)
			s.redraw()
			return
		}
		if entry, ok := s.history.Older(); ok {
			s.input.Replace(entry)
			s.redraw()
		}
	case EventDown:
		if ev.Ctrl {
			s.scrollback.ScrollDown(1)
			s.redraw()
			return
		}
		if entry, ok := s.history.Newer(); ok {
			// The empty entry is the back-to-live-editing signal.
			s.input.Replace(entry)
			s.redraw()
		}
	case EventPageUp:
		s.scrollback.ScrollUp(s.scrollback.Height() / 2)
		s.redraw()
	case EventPageDown:
		s.scrollback.ScrollDown(s.scrollback.Height() / 2)
		s.redraw()
	case EventResize:
		s.scrollback.Resize(ev.Height)
		s.redraw()
	}
}

func (s *Session) terminate() {
	s.scrollback.AppendLine(farewell)
	s.redraw()
	s.running = false
}

// submit commits the current input line. The echoed prompt is computed
// now, not at render time, so it reflects the directory the command was
// submitted from.
func (s *Session) submit() {
	cmdLine := strings.TrimSpace(s.input.Text())
	s.scrollback.AppendLine(FormatPrompt(s.user, s.host, s.dir) + cmdLine)

	if cmdLine == "exit" {
		s.terminate()
		return
	}

	if cmdLine != "" {
		s.history.Record(cmdLine)
		if s.store != nil {
			if err := s.store.Append(cmdLine); err != nil {
				log.Printf("[HISTORY] append failed: %v", err)
			}
		}
	}

	s.input.Clear()

	if cmdLine != "" {
		s.execute(cmdLine)
	}
	s.redraw()
}

// execute hands the command to the runner and folds the classified result
// into scrollback. Every failure mode keeps the loop running.
func (s *Session) execute(cmdLine string) {
	res, err := s.runner.Run(s.dir, cmdLine)
	if err != nil {
		s.scrollback.AppendLine("Failed to execute command: " + err.Error())
		return
	}
	switch res.Kind {
	case command.KindOutput:
		for _, line := range res.Lines {
			s.scrollback.AppendLine(line)
		}
	case command.KindError:
		for _, line := range res.Lines {
			s.scrollback.AppendLine("Error: " + line)
		}
	case command.KindDirChanged:
		s.dir = res.Dir
	case command.KindEmpty:
		// Ran fine, nothing to show.
	}
}

func (s *Session) redraw() {
	s.drv.Render(Frame{
		Lines:  s.scrollback.VisibleSlice(),
		Prompt: FormatPrompt(s.user, s.host, s.dir),
		Input:  s.input.Text(),
	})
}
