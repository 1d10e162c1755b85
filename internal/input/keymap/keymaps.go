package keymap

import (
	"fmt"

	"github.com/dshills/stanza/internal/input/key"
)

// Keymaps holds one keymap per editing mode, keyed by mode name.
type Keymaps struct {
	modes map[string]*Keymap
}

// NewKeymaps returns an empty keymap collection.
func NewKeymaps() *Keymaps {
	return &Keymaps{modes: make(map[string]*Keymap)}
}

// ForMode returns the named mode's keymap, creating an empty one on
// first use.
func (ks *Keymaps) ForMode(mode string) *Keymap {
	km, ok := ks.modes[mode]
	if !ok {
		km = New()
		ks.modes[mode] = km
	}
	return km
}

// Bind parses notation and binds it to command in the named mode.
func (ks *Keymaps) Bind(mode, notation, command string) error {
	seq, err := key.Parse(notation)
	if err != nil {
		return fmt.Errorf("keymap: %s: %w", notation, err)
	}
	return ks.ForMode(mode).Bind(seq, command)
}
