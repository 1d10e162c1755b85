// Package history keeps the linear edit history of a document as a list
// of commits with a movable head. Each commit stores a transaction
// together with its precomputed inversion, so undo and redo are plain
// replays with no diffing at traversal time.
package history

import (
	"time"

	"github.com/dshills/stanza/internal/engine/rope"
	"github.com/dshills/stanza/internal/engine/transaction"
)

// History is a linear commit list with a head index. Commits before the
// head are applied; commits at and after it are the redo tail. The zero
// value is an empty history ready for use.
type History struct {
	commits []Commit
	head    int
}

// Commit pairs a transaction with the inversion that takes the text back
// to its state before the transaction ran.
type Commit struct {
	forward   *transaction.Transaction
	inversion *transaction.Transaction
	timestamp time.Time
}

// NewCommit builds a commit for tx, deriving the inversion from before,
// the text as it was when tx was opened.
func NewCommit(before rope.Rope, tx *transaction.Transaction) Commit {
	return Commit{
		forward:   tx,
		inversion: tx.Undo(before),
		timestamp: time.Now(),
	}
}

// Forward returns the committed transaction.
func (c Commit) Forward() *transaction.Transaction {
	return c.forward
}

// Inversion returns the transaction that reverts the commit.
func (c Commit) Inversion() *transaction.Transaction {
	return c.inversion
}

// Timestamp returns when the commit was created.
func (c Commit) Timestamp() time.Time {
	return c.timestamp
}

// CreateCommit records tx as a new commit, dropping any redo tail beyond
// the head. Transactions that move the cursor without touching text are
// discarded. before must be the text tx was opened against.
func (h *History) CreateCommit(before rope.Rope, tx *transaction.Transaction) {
	if !tx.ChangesText() {
		return
	}

	h.commits = h.commits[:h.head]
	h.commits = append(h.commits, NewCommit(before, tx))
	h.head++
}

// Undo steps the head back one commit and returns the transaction that
// reverts it. It reports false at the start of history.
func (h *History) Undo() (*transaction.Transaction, bool) {
	if h.head == 0 {
		return nil, false
	}

	h.head--
	return h.commits[h.head].inversion, true
}

// Redo steps the head forward one commit and returns its transaction.
// It reports false at the end of history.
func (h *History) Redo() (*transaction.Transaction, bool) {
	if h.head == len(h.commits) {
		return nil, false
	}

	tx := h.commits[h.head].forward
	h.head++
	return tx, true
}

// CanUndo reports whether a commit is available to undo.
func (h *History) CanUndo() bool {
	return h.head > 0
}

// CanRedo reports whether a commit is available to redo.
func (h *History) CanRedo() bool {
	return h.head < len(h.commits)
}

// Len returns the number of commits, applied or not.
func (h *History) Len() int {
	return len(h.commits)
}

// Head returns the head index: the number of currently applied commits.
func (h *History) Head() int {
	return h.head
}
