package transaction

import (
	"fmt"

	"github.com/dshills/stanza/internal/engine/rope"
)

// Transaction is an ordered list of changesets recorded against one text,
// replayable repeat times. The length fields are recorded at construction
// and maintained through edits; Undo checks them to catch inversions built
// from the wrong text.
type Transaction struct {
	repeat     int
	lenBefore  int
	lenAfter   int
	changesets []*ChangeSet
}

// New creates a transaction anchored at pos with a single empty changeset.
func New(text rope.Rope, pos int) *Transaction {
	length := text.Len()
	return &Transaction{
		repeat:     1,
		lenBefore:  length,
		lenAfter:   length,
		changesets: []*ChangeSet{NewChangeSet(pos)},
	}
}

// Repeat returns the replay count.
func (t *Transaction) Repeat() int {
	return t.repeat
}

// SetRepeat sets the replay count. A count below one is a programmer
// error and panics.
func (t *Transaction) SetRepeat(repeat int) {
	if repeat < 1 {
		panic("transaction: repeat must be positive")
	}
	t.repeat = repeat
}

// Insert records an insertion at the head changeset.
func (t *Transaction) Insert(text string) {
	if text == "" {
		return
	}
	t.lenAfter += t.head().Insert(text)
}

// InsertRune records a single-rune insertion.
func (t *Transaction) InsertRune(r rune) {
	t.Insert(string(r))
}

// Delete records a deletion of count chars.
func (t *Transaction) Delete(count int) {
	t.head().Delete(count)
	t.lenAfter -= count
}

// Replace records a single-rune overwrite: delete one char, insert r.
func (t *Transaction) Replace(r rune) {
	t.Delete(1)
	t.InsertRune(r)
}

// MoveForwardBy records a forward cursor move.
func (t *Transaction) MoveForwardBy(count int) {
	t.head().MoveForwardBy(count)
}

// MoveBackwardBy records a backward cursor move. When the head changeset
// is still empty its anchor simply shifts back; otherwise a fresh
// changeset is pushed, anchored count chars before the head's end.
func (t *Transaction) MoveBackwardBy(count int) {
	head := t.head()

	if len(head.changes) == 0 {
		newPos := head.startPos - count
		if newPos < 0 {
			panic(fmt.Sprintf("transaction: move backward by %d from %d underflows", count, head.startPos))
		}
		head.startPos = newPos
		head.endPos = newPos
		return
	}

	newPos := head.endPos - count
	if newPos < 0 {
		panic(fmt.Sprintf("transaction: move backward by %d from %d underflows", count, head.endPos))
	}
	t.changesets = append(t.changesets, NewChangeSet(newPos))
}

// MoveTo records whatever move reaches pos from the head's end position.
func (t *Transaction) MoveTo(pos int) {
	endPos := t.head().EndPos()

	switch {
	case pos > endPos:
		t.MoveForwardBy(pos - endPos)
	case pos < endPos:
		t.MoveBackwardBy(endPos - pos)
	}
}

// Apply replays all changesets repeat times against text and returns the
// final cursor position.
func (t *Transaction) Apply(text *rope.Rope) int {
	return t.applyImpl(text, false)
}

// ApplyRepeats replays only the trailing repeat-1 passes, for callers
// that already performed the first pass live against the text. With a
// repeat of one the text is untouched and the head's end position is
// returned.
func (t *Transaction) ApplyRepeats(text *rope.Rope) int {
	return t.applyImpl(text, true)
}

func (t *Transaction) applyImpl(text *rope.Rope, onlyRepeats bool) int {
	if len(t.changesets) == 0 {
		panic("transaction: apply on transaction without changesets")
	}

	pos := t.head().EndPos()
	firstStart := t.changesets[0].StartPos()

	// The displacement of one full pass, measured after the first replay
	// and reused unchanged for every pass after it.
	offset := 0
	haveOffset := false

	passes := t.repeat
	if onlyRepeats {
		passes--
	}

	for i := 0; i < passes; i++ {
		for _, cs := range t.changesets {
			pos = cs.Apply(offset, text)
		}
		if !haveOffset {
			offset = pos - firstStart
			haveOffset = true
		}
	}

	return pos
}

// Undo derives the inverse transaction from the text as it was before
// this transaction applied. Each changeset is inverted in place and the
// changeset order is reversed. Applying the result to the edited text
// restores the original exactly.
func (t *Transaction) Undo(original rope.Rope) *Transaction {
	if original.Len() != t.lenBefore {
		panic(fmt.Sprintf("transaction: undo against text of %d chars, recorded %d", original.Len(), t.lenBefore))
	}

	revert := make([]*ChangeSet, len(t.changesets))
	for i, cs := range t.changesets {
		revert[len(t.changesets)-1-i] = cs.Undo(original)
	}

	return &Transaction{
		repeat:     t.repeat,
		lenBefore:  t.lenAfter,
		lenAfter:   t.lenAfter,
		changesets: revert,
	}
}

// ChangesText reports whether any changeset inserts or deletes text.
func (t *Transaction) ChangesText() bool {
	for _, cs := range t.changesets {
		if cs.ChangesText() {
			return true
		}
	}
	return false
}

// LenBefore returns the recorded char length of the text the transaction
// was opened against.
func (t *Transaction) LenBefore() int {
	return t.lenBefore
}

// LenAfter returns the recorded char length after one replay of the
// recorded changes.
func (t *Transaction) LenAfter() int {
	return t.lenAfter
}

// EndPos returns the head changeset's end position: where the cursor
// stands after the recorded changes.
func (t *Transaction) EndPos() int {
	return t.head().EndPos()
}

func (t *Transaction) head() *ChangeSet {
	if len(t.changesets) == 0 {
		panic("transaction: no changesets")
	}
	return t.changesets[len(t.changesets)-1]
}
