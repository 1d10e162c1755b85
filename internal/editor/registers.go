package editor

import "github.com/atotto/clipboard"

// Registers stores yanked and killed text. The unnamed register is the
// default target for every yank, kill, and paste. When clipboard sync is
// on, the unnamed register shadows the system clipboard.
type Registers struct {
	unnamed      string
	log          Logger
	useClipboard bool
}

// NewRegisters creates registers with clipboard sync off.
func NewRegisters() *Registers {
	return &Registers{log: NopLogger}
}

// EnableClipboard mirrors the unnamed register to the system clipboard.
func (r *Registers) EnableClipboard() {
	r.useClipboard = true
}

// Set stores text in the unnamed register. Clipboard failures are logged
// and otherwise ignored so headless sessions keep working.
func (r *Registers) Set(text string) {
	r.unnamed = text
	if !r.useClipboard {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		r.log.Debug("clipboard write failed: %v", err)
	}
}

// Get reads the unnamed register, preferring the system clipboard when
// sync is on and the clipboard holds text.
func (r *Registers) Get() string {
	if r.useClipboard {
		text, err := clipboard.ReadAll()
		if err != nil {
			r.log.Debug("clipboard read failed: %v", err)
		} else if text != "" {
			return text
		}
	}
	return r.unnamed
}
