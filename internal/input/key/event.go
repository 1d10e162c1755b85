package key

import "fmt"

// Event is a single key press. It carries no timestamp so values
// compare with == and work as map keys.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// notationNames maps special keys to their names in key notation.
var notationNames = map[Key]string{
	KeyEscape:    "ESC",
	KeyEnter:     "CR",
	KeyTab:       "TAB",
	KeyBackspace: "BS",
	KeyDelete:    "DEL",
	KeyHome:      "HOME",
	KeyEnd:       "END",
	KeyPageUp:    "PGUP",
	KeyPageDown:  "PGDN",
	KeyUp:        "UP",
	KeyDown:      "DOWN",
	KeyLeft:      "LEFT",
	KeyRight:     "RIGHT",
}

// String renders the event in key notation, so that parsing the result
// yields the event back.
func (e Event) String() string {
	if e.Key == KeyRune {
		switch {
		case e.Modifiers.HasCtrl():
			return "<C-" + string(e.Rune) + ">"
		case e.Modifiers.HasAlt():
			return "<M-" + string(e.Rune) + ">"
		default:
			return string(e.Rune)
		}
	}

	if e.Key == KeyBackTab {
		return "<S-TAB>"
	}
	if e.Key >= KeyF1 && e.Key <= KeyF12 {
		return fmt.Sprintf("<F%d>", int(e.Key-KeyF1)+1)
	}
	if name, ok := notationNames[e.Key]; ok {
		return "<" + name + ">"
	}
	return "<" + e.Key.String() + ">"
}
