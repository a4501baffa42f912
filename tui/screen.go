// Package tui drives a tcell terminal for the shell session: it owns raw
// mode, turns tcell events into shell events, and draws frames with the
// history viewport above a prompt+input row.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"scrollsh/shell"
)

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the tcell screen constructor used by
// NewScreen. Passing nil restores the default. Tests substitute a
// simulation screen through this.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Screen implements shell.Driver on top of a tcell screen.
type Screen struct {
	screen  tcell.Screen
	events  chan shell.Event
	pending *shell.Event
	hl      *highlighter

	promptStyle tcell.Style
	baseStyle   tcell.Style
}

// NewScreen initializes the terminal in raw mode and starts the event
// pump. syntaxStyle names the chroma style for input-line highlighting.
func NewScreen(syntaxStyle string) (*Screen, error) {
	sc, err := screenFactory()
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	if err := sc.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	sc.Clear()

	s := &Screen{
		screen:      sc,
		events:      make(chan shell.Event, 16),
		hl:          newHighlighter(syntaxStyle),
		promptStyle: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		baseStyle:   tcell.StyleDefault,
	}
	go s.pump()
	return s, nil
}

// Fini restores the terminal state. Call once at session end.
func (s *Screen) Fini() {
	s.screen.Fini()
}

// pump translates tcell events until the screen is finalized.
func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			close(s.events)
			return
		}
		if out, ok := translate(ev); ok {
			s.events <- out
		}
	}
}

// translate maps a tcell event onto a shell event. Events with no
// mapping are dropped here so the session never sees them.
func translate(ev tcell.Event) (shell.Event, bool) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		_, rows := tev.Size()
		h := rows - 1
		if h < 1 {
			h = 1
		}
		return shell.Event{Type: shell.EventResize, Height: h}, true
	case *tcell.EventKey:
		ctrl := tev.Modifiers()&tcell.ModCtrl != 0
		switch tev.Key() {
		case tcell.KeyEsc:
			return shell.Event{Type: shell.EventEsc}, true
		case tcell.KeyEnter:
			return shell.Event{Type: shell.EventEnter}, true
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return shell.Event{Type: shell.EventBackspace}, true
		case tcell.KeyUp:
			return shell.Event{Type: shell.EventUp, Ctrl: ctrl}, true
		case tcell.KeyDown:
			return shell.Event{Type: shell.EventDown, Ctrl: ctrl}, true
		case tcell.KeyPgUp:
			return shell.Event{Type: shell.EventPageUp}, true
		case tcell.KeyPgDn:
			return shell.Event{Type: shell.EventPageDown}, true
		case tcell.KeyRune:
			return shell.Event{Type: shell.EventRune, Rune: tev.Rune(), Ctrl: ctrl}, true
		}
	}
	return shell.Event{}, false
}

// Poll reports whether an event is available, waiting at most timeout.
func (s *Screen) Poll(timeout time.Duration) bool {
	if s.pending != nil {
		return true
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev, ok := <-s.events:
		if !ok {
			return false
		}
		s.pending = &ev
		return true
	case <-timer.C:
		return false
	}
}

// Read returns the event made available by the last successful Poll.
func (s *Screen) Read() shell.Event {
	if s.pending == nil {
		return <-s.events
	}
	ev := *s.pending
	s.pending = nil
	return ev
}

// Height returns the viewport height: terminal rows minus the input row.
func (s *Screen) Height() int {
	_, rows := s.screen.Size()
	if rows <= 1 {
		return 1
	}
	return rows - 1
}

// Render draws history rows above the prompt+input bottom row and places
// the hardware cursor after the input text.
func (s *Screen) Render(frame shell.Frame) {
	s.screen.Clear()
	cols, rows := s.screen.Size()

	for y, line := range frame.Lines {
		if y >= rows-1 {
			break
		}
		s.drawText(0, y, cols, line, s.baseStyle)
	}

	y := rows - 1
	x := s.drawText(0, y, cols, frame.Prompt, s.promptStyle)
	x = s.drawInput(x, y, cols, frame.Input)
	s.screen.ShowCursor(x, y)
	s.screen.Show()
}

// drawText writes text at (x,y), clipping at width. Returns the next x.
func (s *Screen) drawText(x, y, width int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		s.screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// drawInput writes the input text with per-rune syntax styling.
func (s *Screen) drawInput(x, y, width int, input string) int {
	perRune := s.hl.styledRunes(input, s.baseStyle)
	for i, r := range []rune(input) {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		s.screen.SetContent(x, y, r, nil, perRune[i])
		x += w
	}
	return x
}
