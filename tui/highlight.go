// Copyright © 2025 Scrollsh contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/highlight.go
// Summary: Chroma-based shell-syntax styling for the input line.

package tui

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

const defaultStyleName = "catppuccin-mocha"

// highlighter colors input-line text as shell syntax. The lexer is fixed:
// the only text styled here is the command being typed.
type highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

func newHighlighter(styleName string) *highlighter {
	if styleName == "" {
		styleName = defaultStyleName
	}
	lexer := lexers.Get("bash")
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}
	return &highlighter{lexer: lexer, style: styles.Get(styleName)}
}

// styledRunes returns one style per rune of text. Tokens whose color
// matches the style's base text color keep the base style; any
// tokenization problem falls back to base for every rune.
func (h *highlighter) styledRunes(text string, base tcell.Style) []tcell.Style {
	runes := []rune(text)
	out := make([]tcell.Style, len(runes))
	for i := range out {
		out[i] = base
	}
	if h.lexer == nil || h.style == nil || len(runes) == 0 {
		return out
	}

	tokens, err := chroma.Tokenise(h.lexer, nil, text)
	if err != nil {
		return out
	}

	baseColour := h.style.Get(chroma.Text).Colour
	pos := 0
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		st, distinct := tokenStyle(h.style.Get(tok.Type), baseColour, base)
		for range tok.Value {
			if pos >= len(out) {
				return out
			}
			if distinct {
				out[pos] = st
			}
			pos++
		}
	}
	return out
}

// tokenStyle maps a chroma style entry onto a tcell style over base.
// distinct is false when the entry adds nothing over the base text color.
func tokenStyle(entry chroma.StyleEntry, baseColour chroma.Colour, base tcell.Style) (tcell.Style, bool) {
	st := base
	distinct := false
	if entry.Colour.IsSet() && entry.Colour != baseColour {
		st = st.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
		distinct = true
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
		distinct = true
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
		distinct = true
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
		distinct = true
	}
	return st, distinct
}
