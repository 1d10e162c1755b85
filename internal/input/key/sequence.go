package key

import "strings"

// Sequence is an ordered series of key events.
type Sequence []Event

// String renders the sequence in key notation.
func (s Sequence) String() string {
	var b strings.Builder
	for _, e := range s {
		b.WriteString(e.String())
	}
	return b.String()
}
