package history

import (
	"testing"

	"github.com/dshills/stanza/internal/engine/rope"
	"github.com/dshills/stanza/internal/engine/transaction"
)

// Helper building a history of n empty commits with the head at the end
func filledHistory(n int) *History {
	h := &History{}

	for i := 0; i < n; i++ {
		text := rope.New()
		h.commits = append(h.commits, NewCommit(text, transaction.New(text, 0)))
	}
	h.head = n

	return h
}

func TestUndoMovesHead(t *testing.T) {
	h := filledHistory(10)

	if _, ok := h.Undo(); !ok {
		t.Fatal("Undo() not ok on full history")
	}
	if got := h.Head(); got != 9 {
		t.Errorf("Head() = %d, want 9", got)
	}
	if got := h.Len(); got != 10 {
		t.Errorf("Len() = %d, want 10", got)
	}
}

func TestRedoAtEnd(t *testing.T) {
	h := filledHistory(10)

	if _, ok := h.Redo(); ok {
		t.Error("Redo() ok at end of history")
	}
	if got := h.Head(); got != 10 {
		t.Errorf("Head() = %d, want 10", got)
	}
}

func TestUndoAtStart(t *testing.T) {
	h := &History{}

	if _, ok := h.Undo(); ok {
		t.Error("Undo() ok on empty history")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	h := filledHistory(3)

	for i := 2; i >= 0; i-- {
		if _, ok := h.Undo(); !ok {
			t.Fatalf("Undo() not ok at head %d", h.Head())
		}
		if got := h.Head(); got != i {
			t.Errorf("Head() = %d, want %d", got, i)
		}
	}
	if _, ok := h.Undo(); ok {
		t.Error("Undo() ok past start")
	}

	for i := 1; i <= 3; i++ {
		if _, ok := h.Redo(); !ok {
			t.Fatalf("Redo() not ok at head %d", h.Head())
		}
		if got := h.Head(); got != i {
			t.Errorf("Head() = %d, want %d", got, i)
		}
	}
}

func TestCreateCommitSkipsMoveOnly(t *testing.T) {
	h := &History{}
	text := rope.FromString("abc")

	tx := transaction.New(text, 0)
	tx.MoveForwardBy(2)
	h.CreateCommit(text, tx)

	if got := h.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestCreateCommitTruncatesRedoTail(t *testing.T) {
	h := &History{}
	text := rope.FromString("abc")

	for i := 0; i < 3; i++ {
		tx := transaction.New(text, 0)
		tx.Insert("x")
		h.CreateCommit(text, tx)
		text = text.Insert(0, "x")
	}

	h.Undo()
	h.Undo()

	if got := h.Head(); got != 1 {
		t.Fatalf("Head() = %d, want 1", got)
	}

	tx := transaction.New(rope.FromString("xabc"), 0)
	tx.Insert("y")
	h.CreateCommit(rope.FromString("xabc"), tx)

	if got := h.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := h.Head(); got != 2 {
		t.Errorf("Head() = %d, want 2", got)
	}
	if _, ok := h.Redo(); ok {
		t.Error("Redo() ok after tail truncation")
	}
}

func TestCommitInversionRestoresText(t *testing.T) {
	before := rope.FromString("hello")
	tx := transaction.New(before, 0)
	tx.MoveForwardBy(5)
	tx.Insert(" world")

	h := &History{}
	h.CreateCommit(before, tx)

	edited := before
	tx.Apply(&edited)
	if got := edited.String(); got != "hello world" {
		t.Fatalf("Apply() = %q, want %q", got, "hello world")
	}

	inv, ok := h.Undo()
	if !ok {
		t.Fatal("Undo() not ok")
	}
	inv.Apply(&edited)

	if !edited.Equal(before) {
		t.Errorf("inversion produced %q, want %q", edited.String(), before.String())
	}

	fwd, ok := h.Redo()
	if !ok {
		t.Fatal("Redo() not ok")
	}
	if fwd != tx {
		t.Error("Redo() returned a different transaction than was committed")
	}
	fwd.Apply(&edited)

	if got := edited.String(); got != "hello world" {
		t.Errorf("redo produced %q, want %q", got, "hello world")
	}
}

func TestCommitTimestamp(t *testing.T) {
	text := rope.New()
	tx := transaction.New(text, 0)
	tx.Insert("a")

	c := NewCommit(text, tx)
	if c.Timestamp().IsZero() {
		t.Error("timestamp not set")
	}
	if c.Forward() != tx {
		t.Error("wrong forward transaction")
	}
	if c.Inversion() == nil {
		t.Error("inversion not built")
	}
}
