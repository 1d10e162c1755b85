package transaction

import (
	"unicode/utf8"

	"github.com/dshills/stanza/internal/engine/rope"
)

// ChangeKind identifies a primitive change.
type ChangeKind uint8

const (
	// ChangeMoveForward advances the cursor without touching text.
	ChangeMoveForward ChangeKind = iota

	// ChangeInsert splices text at the cursor.
	ChangeInsert

	// ChangeDelete removes chars after the cursor without moving it.
	ChangeDelete
)

// Change is one primitive edit. Count carries move and delete lengths;
// Text carries insert payloads.
type Change struct {
	Kind  ChangeKind
	Count int
	Text  string
}

// ChangeSet is an ordered run of changes anchored at an absolute char
// position. startPos never moves once set; endPos tracks where the cursor
// lands after replaying the recorded changes (deletes do not advance it).
type ChangeSet struct {
	startPos int
	endPos   int
	changes  []Change
}

// NewChangeSet creates an empty changeset anchored at pos.
func NewChangeSet(pos int) *ChangeSet {
	return &ChangeSet{startPos: pos, endPos: pos}
}

// StartPos returns the anchor position.
func (cs *ChangeSet) StartPos() int {
	return cs.startPos
}

// EndPos returns the cursor position after the recorded changes.
func (cs *ChangeSet) EndPos() int {
	return cs.endPos
}

// Insert records an insertion and returns its char length.
// Empty text is a no-op. Consecutive inserts merge into one change.
func (cs *ChangeSet) Insert(text string) int {
	chars := utf8.RuneCountInString(text)
	if chars == 0 {
		return 0
	}

	if n := len(cs.changes); n > 0 && cs.changes[n-1].Kind == ChangeInsert {
		cs.changes[n-1].Text += text
	} else {
		cs.changes = append(cs.changes, Change{Kind: ChangeInsert, Text: text})
	}

	cs.endPos += chars
	return chars
}

// MoveForwardBy records a forward cursor move. Zero is a no-op.
// Consecutive moves merge into one change.
func (cs *ChangeSet) MoveForwardBy(count int) {
	if count == 0 {
		return
	}

	if n := len(cs.changes); n > 0 && cs.changes[n-1].Kind == ChangeMoveForward {
		cs.changes[n-1].Count += count
	} else {
		cs.changes = append(cs.changes, Change{Kind: ChangeMoveForward, Count: count})
	}

	cs.endPos += count
}

// Delete records a deletion of count chars after the cursor. Zero is a
// no-op. Consecutive deletes merge into one change. The end position is
// unchanged: deletion removes text ahead of the cursor.
func (cs *ChangeSet) Delete(count int) {
	if count == 0 {
		return
	}

	if n := len(cs.changes); n > 0 && cs.changes[n-1].Kind == ChangeDelete {
		cs.changes[n-1].Count += count
	} else {
		cs.changes = append(cs.changes, Change{Kind: ChangeDelete, Count: count})
	}
}

// Apply replays the changes against text, starting at startPos shifted by
// offset. It returns the final cursor position. Deletes clamp to the end
// of text.
func (cs *ChangeSet) Apply(offset int, text *rope.Rope) int {
	pos := cs.startPos + offset

	for _, change := range cs.changes {
		switch change.Kind {
		case ChangeMoveForward:
			pos += change.Count
		case ChangeInsert:
			*text = text.Insert(pos, change.Text)
			pos += utf8.RuneCountInString(change.Text)
		case ChangeDelete:
			*text = text.Delete(pos, pos+change.Count)
		}
	}

	return pos
}

// ChangesText reports whether any change inserts or deletes text.
func (cs *ChangeSet) ChangesText() bool {
	for _, change := range cs.changes {
		if change.Kind == ChangeInsert || change.Kind == ChangeDelete {
			return true
		}
	}
	return false
}

// Undo builds the inverse changeset given the text as it was before this
// changeset applied. Moves are echoed, inserts become deletes, and deletes
// re-insert the original text found at the inverse changeset's current end
// position.
func (cs *ChangeSet) Undo(original rope.Rope) *ChangeSet {
	revert := NewChangeSet(cs.startPos)

	for _, change := range cs.changes {
		switch change.Kind {
		case ChangeMoveForward:
			revert.MoveForwardBy(change.Count)
		case ChangeInsert:
			revert.Delete(utf8.RuneCountInString(change.Text))
		case ChangeDelete:
			pos := revert.endPos
			revert.Insert(original.Slice(pos, pos+change.Count))
		}
	}

	return revert
}
