// Package document binds a text, its edit history, and an optional
// filesystem backing into one unit, and owns the transaction protocol:
// commands record edits through a scoped callback, and the document
// decides whether the recording is committed, kept open, or rolled back.
package document

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dshills/stanza/internal/engine/history"
	"github.com/dshills/stanza/internal/engine/rope"
	"github.com/dshills/stanza/internal/engine/transaction"
)

// AttachPolicy states what a transaction scope expects of the document's
// pending transaction. Violations are programmer errors and panic.
type AttachPolicy uint8

const (
	// AttachRequireOpen resumes the open transaction; there must be one.
	AttachRequireOpen AttachPolicy = iota

	// AttachAllow resumes the open transaction or opens a fresh one.
	AttachAllow

	// AttachDisallow opens a fresh transaction; none may be open.
	AttachDisallow
)

// Leave states what happens to the transaction when its scope exits.
type Leave uint8

const (
	// LeaveCommit closes the transaction and records it in history.
	LeaveCommit Leave = iota

	// LeaveKeep holds the transaction open for a later scope.
	LeaveKeep

	// LeaveRollback discards the transaction and restores the text
	// captured when it was opened.
	LeaveRollback
)

// TxFunc is a transaction scope body. It edits the text through the
// transaction (and mirrors the edits into the document's text) and
// reports what to do with the recording.
type TxFunc func(*Document, *transaction.Transaction) Leave

type pendingTx struct {
	tx       *transaction.Transaction
	saved    rope.Rope
	startPos int
}

// Backing is a document's filesystem binding.
type Backing struct {
	path     string
	writable bool
}

// Document is a text with its history and optional filesystem backing.
// Scratch documents have no backing; Save is a no-op for them.
type Document struct {
	text       rope.Rope
	pending    *pendingTx
	history    history.History
	backing    *Backing
	lineEnding LineEnding
	savedHead  int
}

// NewScratch creates an empty document with no filesystem backing.
func NewScratch() *Document {
	return &Document{text: rope.New()}
}

// FromPath creates a document bound to path. A missing file yields an
// empty writable document; saving creates the file. Line endings are
// normalized to LF in memory and the original style is remembered.
func FromPath(path string) (*Document, error) {
	doc := NewScratch()
	doc.backing = &Backing{path: path, writable: true}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	doc.backing.writable = info.Mode().Perm()&0o222 != 0

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc.lineEnding = DetectLineEnding(string(data))
	doc.text = rope.FromString(normalizeToLF(string(data)))

	return doc, nil
}

// Text returns the current text snapshot.
func (d *Document) Text() rope.Rope {
	return d.text
}

// TextMut returns the text for in-place replacement. Transaction scopes
// use it to mirror recorded edits into the document.
func (d *Document) TextMut() *rope.Rope {
	return &d.text
}

// Len returns the text length in chars.
func (d *Document) Len() int {
	return d.text.Len()
}

// LineCount returns the number of lines in the text.
func (d *Document) LineCount() int {
	return d.text.LineCount()
}

// IsScratch reports whether the document has no filesystem backing.
func (d *Document) IsScratch() bool {
	return d.backing == nil
}

// Path returns the backing path, empty for scratch documents.
func (d *Document) Path() string {
	if d.backing == nil {
		return ""
	}
	return d.backing.path
}

// Writable reports whether saving writes to disk.
func (d *Document) Writable() bool {
	return d.backing != nil && d.backing.writable
}

// LineEnding returns the on-disk line ending style.
func (d *Document) LineEnding() LineEnding {
	return d.lineEnding
}

// InTransaction reports whether a transaction is open.
func (d *Document) InTransaction() bool {
	return d.pending != nil
}

// Modified reports whether the text differs from the last save: a
// transaction is open, or the history head has moved since then.
// Undoing back to the save point clears it.
func (d *Document) Modified() bool {
	return d.pending != nil || d.history.Head() != d.savedHead
}

// History exposes the document's commit history.
func (d *Document) History() *history.History {
	return &d.history
}

// WithTransaction runs fn inside a transaction scope. The policy decides
// whether an already-open transaction is resumed; a fresh transaction is
// anchored at pos with a snapshot of the current text. fn's Leave value
// decides whether the recording is committed, kept open, or rolled back.
func (d *Document) WithTransaction(policy AttachPolicy, pos int, fn TxFunc) {
	switch policy {
	case AttachRequireOpen:
		if d.pending == nil {
			panic("document: no open transaction to attach to")
		}
	case AttachDisallow:
		if d.pending != nil {
			panic("document: transaction already open")
		}
	case AttachAllow:
	}

	ctx := d.pending
	d.pending = nil

	if ctx == nil {
		ctx = &pendingTx{
			tx:       transaction.New(d.text, pos),
			saved:    d.text,
			startPos: pos,
		}
	}

	switch fn(d, ctx.tx) {
	case LeaveCommit:
		d.history.CreateCommit(ctx.saved, ctx.tx)
	case LeaveKeep:
		d.pending = ctx
	case LeaveRollback:
		d.text = ctx.saved
	}
}

// WithNewTransaction runs fn inside a fresh transaction scope; an open
// transaction is a programmer error.
func (d *Document) WithNewTransaction(pos int, fn TxFunc) {
	d.WithTransaction(AttachDisallow, pos, fn)
}

// Undo reverts the newest applied commit and returns the resulting
// cursor position. It reports false at the start of history. Calling it
// with a transaction open is a programmer error.
func (d *Document) Undo() (int, bool) {
	if d.pending != nil {
		panic("document: undo with open transaction")
	}

	tx, ok := d.history.Undo()
	if !ok {
		return 0, false
	}
	return tx.Apply(&d.text), true
}

// Redo reapplies the next commit and returns the resulting cursor
// position. It reports false at the end of history. Calling it with a
// transaction open is a programmer error.
func (d *Document) Redo() (int, bool) {
	if d.pending != nil {
		panic("document: redo with open transaction")
	}

	tx, ok := d.history.Redo()
	if !ok {
		return 0, false
	}
	return tx.Apply(&d.text), true
}

// Save writes the text to the backing path, restoring the remembered
// line ending style. Scratch documents and non-writable backings are
// silent no-ops.
func (d *Document) Save() error {
	if d.backing == nil || !d.backing.writable {
		return nil
	}

	f, err := os.Create(d.backing.path)
	if err != nil {
		return fmt.Errorf("save %s: %w", d.backing.path, err)
	}

	if d.lineEnding == LineEndingLF {
		_, err = d.text.WriteTo(f)
	} else {
		_, err = io.WriteString(f, strings.ReplaceAll(d.text.String(), "\n", d.lineEnding.Sequence()))
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", d.backing.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", d.backing.path, err)
	}

	d.savedHead = d.history.Head()
	return nil
}
