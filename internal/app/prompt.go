package app

import (
	"github.com/dshills/stanza/internal/input/key"
	"github.com/dshills/stanza/internal/renderer"
)

// prompt is the command line opened by the command_mode binding. The
// leading colon is part of the text but not editable; the cursor stays
// in [1, len(text)].
type prompt struct {
	text   []rune
	cursor int
}

func newPrompt() *prompt {
	return &prompt{text: []rune{':'}, cursor: 1}
}

// handle applies one key to the prompt line. It returns false when the
// prompt dismissed itself, which happens on backspace over an empty
// line.
func (p *prompt) handle(ev key.Event) bool {
	switch {
	case ev.IsRune() && !ev.Modifiers.HasCtrl() && !ev.Modifiers.HasAlt():
		tail := append([]rune{ev.Rune}, p.text[p.cursor:]...)
		p.text = append(p.text[:p.cursor], tail...)
		p.cursor++

	case ev.Key == key.KeyBackspace:
		if p.cursor <= 1 {
			return len(p.text) > 1
		}
		p.text = append(p.text[:p.cursor-1], p.text[p.cursor:]...)
		p.cursor--

	case ev.Key == key.KeyDelete:
		if p.cursor < len(p.text) {
			p.text = append(p.text[:p.cursor], p.text[p.cursor+1:]...)
		}

	case ev.Key == key.KeyLeft:
		if p.cursor > 1 {
			p.cursor--
		}

	case ev.Key == key.KeyRight:
		if p.cursor < len(p.text) {
			p.cursor++
		}

	case ev.Key == key.KeyHome:
		p.cursor = 1

	case ev.Key == key.KeyEnd:
		p.cursor = len(p.text)
	}
	return true
}

// input returns the typed command without the leading colon.
func (p *prompt) input() string {
	return string(p.text[1:])
}

// view renders the prompt for the frame.
func (p *prompt) view() *renderer.Prompt {
	return &renderer.Prompt{Text: string(p.text), Cursor: p.cursor}
}
