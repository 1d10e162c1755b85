// Package editor holds the modal editing state: the arena of documents
// and buffers, the cursor and mode bookkeeping per buffer, and the
// registers. Commands in the command subpackage mutate this state.
package editor

import (
	"sort"

	"github.com/dshills/stanza/internal/engine/document"
)

// DocumentID is an editor-issued document handle.
type DocumentID int

// BufferID is an editor-issued buffer handle.
type BufferID int

// Logger is the subset of the application logger the editor reports
// through.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// NopLogger discards everything logged to it.
var NopLogger Logger = nopLogger{}

// Editor owns every document and buffer and issues their handles.
// Handles start at 1 and are never reused within a session.
type Editor struct {
	documents map[DocumentID]*document.Document
	buffers   map[BufferID]*Buffer
	current   BufferID
	nextDoc   DocumentID
	nextBuf   BufferID
	registers *Registers
	log       Logger
	exitCode  int
	exitSet   bool
}

// NewEditor creates an empty editor. Callers open at least one buffer
// before dispatching commands.
func NewEditor() *Editor {
	return &Editor{
		documents: make(map[DocumentID]*document.Document),
		buffers:   make(map[BufferID]*Buffer),
		nextDoc:   1,
		nextBuf:   1,
		registers: NewRegisters(),
		log:       NopLogger,
	}
}

// SetLogger routes editor diagnostics to l.
func (e *Editor) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger
	}
	e.log = l
	e.registers.log = l
}

// Logger returns the editor's logger.
func (e *Editor) Logger() Logger {
	return e.log
}

// Registers returns the editor's registers.
func (e *Editor) Registers() *Registers {
	return e.registers
}

// OpenPath opens path as a new document with one buffer viewing it.
func (e *Editor) OpenPath(path string, setCurrent bool) (BufferID, error) {
	doc, err := document.FromPath(path)
	if err != nil {
		return 0, err
	}
	return e.add(doc, setCurrent), nil
}

// OpenScratch opens an empty unbacked document with one buffer.
func (e *Editor) OpenScratch(setCurrent bool) BufferID {
	return e.add(document.NewScratch(), setCurrent)
}

func (e *Editor) add(doc *document.Document, setCurrent bool) BufferID {
	docID := e.nextDoc
	e.nextDoc++

	buf, err := NewBuffer(docID, doc, 0)
	if err != nil {
		panic("editor: fresh buffer rejected position 0: " + err.Error())
	}

	bufID := e.nextBuf
	e.nextBuf++

	e.documents[docID] = doc
	e.buffers[bufID] = buf

	if setCurrent || len(e.buffers) == 1 {
		e.current = bufID
	}

	return bufID
}

// Current returns the current buffer and its document. An empty arena is
// a programmer error.
func (e *Editor) Current() (*Buffer, *document.Document) {
	buf, ok := e.buffers[e.current]
	if !ok {
		panic("editor: no current buffer")
	}
	return buf, e.documents[buf.documentID]
}

// CurrentID returns the current buffer's handle.
func (e *Editor) CurrentID() BufferID {
	return e.current
}

// SetCurrent makes id the current buffer.
func (e *Editor) SetCurrent(id BufferID) {
	if _, ok := e.buffers[id]; !ok {
		panic("editor: unknown buffer")
	}
	e.current = id
}

// Buffer looks up a buffer by handle.
func (e *Editor) Buffer(id BufferID) (*Buffer, bool) {
	buf, ok := e.buffers[id]
	return buf, ok
}

// Document looks up a document by handle.
func (e *Editor) Document(id DocumentID) (*document.Document, bool) {
	doc, ok := e.documents[id]
	return doc, ok
}

// BufferIDs returns all buffer handles in ascending order.
func (e *Editor) BufferIDs() []BufferID {
	ids := make([]BufferID, 0, len(e.buffers))
	for id := range e.buffers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// BufferCount returns the number of open buffers.
func (e *Editor) BufferCount() int {
	return len(e.buffers)
}

// CloseBuffer removes a buffer, and its document once no other buffer
// views it. The caller repoints current when it closes the current
// buffer.
func (e *Editor) CloseBuffer(id BufferID) {
	buf, ok := e.buffers[id]
	if !ok {
		return
	}
	delete(e.buffers, id)

	for _, other := range e.buffers {
		if other.documentID == buf.documentID {
			return
		}
	}
	delete(e.documents, buf.documentID)
}

// Quit asks the application loop to exit with code.
func (e *Editor) Quit(code int) {
	e.exitCode = code
	e.exitSet = true
}

// ShouldExit reports the requested exit code, if any.
func (e *Editor) ShouldExit() (int, bool) {
	return e.exitCode, e.exitSet
}
