package key

import "github.com/gdamore/tcell/v2"

// tcellSpecials maps tcell's named keys onto events that compare equal
// to parsed notation.
var tcellSpecials = map[tcell.Key]Event{
	tcell.KeyEnter:      {Key: KeyEnter},
	tcell.KeyTab:        {Key: KeyTab},
	tcell.KeyBacktab:    {Key: KeyBackTab, Modifiers: ModShift},
	tcell.KeyEscape:     {Key: KeyEscape},
	tcell.KeyBackspace:  {Key: KeyBackspace},
	tcell.KeyBackspace2: {Key: KeyBackspace},
	tcell.KeyDelete:     {Key: KeyDelete},
	tcell.KeyUp:         {Key: KeyUp},
	tcell.KeyDown:       {Key: KeyDown},
	tcell.KeyLeft:       {Key: KeyLeft},
	tcell.KeyRight:      {Key: KeyRight},
	tcell.KeyHome:       {Key: KeyHome},
	tcell.KeyEnd:        {Key: KeyEnd},
	tcell.KeyPgUp:       {Key: KeyPageUp},
	tcell.KeyPgDn:       {Key: KeyPageDown},
}

// FromTcell normalizes a terminal key event into an Event that compares
// equal to the notation naming the same press: Ctrl letters become rune
// events with ModCtrl, uppercase characters carry ModShift, and the
// named specials map across directly. Unsupported keys come back as
// KeyNone.
func FromTcell(ev *tcell.EventKey) Event {
	k := ev.Key()

	if k == tcell.KeyRune {
		r := ev.Rune()
		mods := ModNone
		if r >= 'A' && r <= 'Z' {
			mods = ModShift
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			mods = mods.With(ModAlt)
		}
		return Event{Key: KeyRune, Rune: r, Modifiers: mods}
	}

	if special, ok := tcellSpecials[k]; ok {
		if ev.Modifiers()&tcell.ModAlt != 0 {
			special.Modifiers = special.Modifiers.With(ModAlt)
		}
		return special
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Event{Key: KeyRune, Rune: 'a' + rune(k-tcell.KeyCtrlA), Modifiers: ModCtrl}
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return Event{Key: KeyF1 + Key(k-tcell.KeyF1)}
	}

	return Event{}
}
