package key

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse converts key notation into the sequence of events it names,
// for example "dd", "<C-b>c" or "<S-TAB>". Parsing stops at the first
// whitespace character.
func Parse(notation string) ([]Event, error) {
	tokens, err := tokenize(notation)
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(tokens))
	for _, tok := range tokens {
		ev, err := tok.event()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// validChar reports whether ch may appear in notation. '^' is reserved.
func validChar(ch rune) bool {
	return ch != '^' && ch >= '!' && ch <= '~'
}

// token is either a single character or the content of a "<...>" group.
type token struct {
	text    string
	diamond bool
}

func tokenize(notation string) ([]token, error) {
	var tokens []token
	diamondStart := -1

	for i, ch := range notation {
		if unicode.IsSpace(ch) {
			break
		}
		if !validChar(ch) {
			return nil, fmt.Errorf("key: invalid character %q at position %d", ch, i)
		}

		switch {
		case diamondStart < 0 && ch == '<':
			diamondStart = i
		case diamondStart < 0 && ch == '>':
			return nil, fmt.Errorf("key: unexpected %q at position %d", ch, i)
		case diamondStart < 0:
			tokens = append(tokens, token{text: string(ch)})
		case ch == '<':
			return nil, fmt.Errorf("key: unexpected %q at position %d", ch, i)
		case ch == '>':
			tokens = append(tokens, token{text: notation[diamondStart+1 : i], diamond: true})
			diamondStart = -1
		}
	}

	if diamondStart >= 0 {
		return nil, fmt.Errorf("key: unterminated group at position %d", diamondStart)
	}
	return tokens, nil
}

func (t token) event() (Event, error) {
	if !t.diamond {
		r := rune(t.text[0])
		mods := ModNone
		if r >= 'A' && r <= 'Z' {
			mods = ModShift
		}
		return NewRuneEvent(r, mods), nil
	}
	return diamondEvent(t.text)
}

func diamondEvent(content string) (Event, error) {
	if content == "" {
		return Event{}, fmt.Errorf("key: empty <> group")
	}

	if first := unicode.ToUpper(rune(content[0])); first == 'F' {
		num, err := strconv.Atoi(content[1:])
		if err != nil || num < 1 || num > 12 {
			return Event{}, fmt.Errorf("key: bad function key <%s>", content)
		}
		return NewSpecialEvent(KeyF1+Key(num-1), ModNone), nil
	}

	if ev, ok := specialEvent(content); ok {
		return ev, nil
	}

	var mod Modifier
	switch unicode.ToUpper(rune(content[0])) {
	case 'C':
		mod = ModCtrl
	case 'M':
		mod = ModAlt
	default:
		return Event{}, fmt.Errorf("key: unknown modifier %q in <%s>", content[0], content)
	}

	rest := content[1:]
	if len(rest) == 0 || rest[0] != '-' {
		return Event{}, fmt.Errorf("key: expected - after modifier in <%s>", content)
	}
	rest = rest[1:]

	switch {
	case len(rest) == 0:
		return Event{}, fmt.Errorf("key: missing key in <%s>", content)
	case len(rest) > 1:
		return Event{}, fmt.Errorf("key: trailing input in <%s>", content)
	}
	return NewRuneEvent(rune(rest[0]), mod), nil
}

func specialEvent(content string) (Event, bool) {
	var (
		k    Key
		mods Modifier
	)

	switch strings.ToUpper(content) {
	case "ESC":
		k = KeyEscape
	case "CR":
		k = KeyEnter
	case "TAB":
		k = KeyTab
	case "S-TAB":
		k, mods = KeyBackTab, ModShift
	case "BS":
		k = KeyBackspace
	case "DEL":
		k = KeyDelete
	case "HOME":
		k = KeyHome
	case "END":
		k = KeyEnd
	case "PGUP":
		k = KeyPageUp
	case "PGDN":
		k = KeyPageDown
	case "UP":
		k = KeyUp
	case "DOWN":
		k = KeyDown
	case "LEFT":
		k = KeyLeft
	case "RIGHT":
		k = KeyRight
	default:
		return Event{}, false
	}

	return NewSpecialEvent(k, mods), true
}
