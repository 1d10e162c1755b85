package editor

import (
	"fmt"

	"github.com/dshills/stanza/internal/engine/document"
	"github.com/dshills/stanza/internal/engine/grapheme"
	"github.com/dshills/stanza/internal/engine/rope"
)

// LineKeep restricts how far a position update may leave the current line.
type LineKeep uint8

const (
	// LineKeepNone places the position on whatever line it lands on.
	LineKeepNone LineKeep = iota

	// LineKeepMin clamps moves toward earlier lines to the current
	// line's first char.
	LineKeepMin

	// LineKeepMax clamps moves toward later lines to the current line's
	// last char.
	LineKeepMax
)

// PositionOptions controls UpdateTextPosition.
type PositionOptions struct {
	// UpdateSavedColumn recomputes the column vertical moves return to.
	UpdateSavedColumn bool

	// Keep clamps line crossings.
	Keep LineKeep

	// AllowOnNewline permits the position to sit on a trailing newline,
	// as insert mode does.
	AllowOnNewline bool
}

// DefaultPositionOptions returns the options normal-mode moves use.
func DefaultPositionOptions() PositionOptions {
	return PositionOptions{UpdateSavedColumn: true}
}

// InsertPositionOptions returns the options insert-mode edits use.
func InsertPositionOptions() PositionOptions {
	return PositionOptions{UpdateSavedColumn: true, AllowOnNewline: true}
}

// Buffer is a view over a document: a cursor with its line bookkeeping,
// the current mode, and the vertical scroll. Several buffers may view
// one document.
type Buffer struct {
	documentID  DocumentID
	mode        Mode
	textPos     int // char offset into the document text
	lineIdx     int // line containing textPos
	lineChar    int // char offset of that line's first char
	savedColumn int // display column vertical moves return to
	vscroll     int // first visible line
}

// NewBuffer creates a buffer viewing docID's document with the cursor at
// pos. pos past the text's last char is an error.
func NewBuffer(docID DocumentID, doc *document.Document, pos int) (*Buffer, error) {
	text := doc.Text()

	max := text.Len() - 1
	if max < 0 {
		max = 0
	}
	if pos > max {
		return nil, fmt.Errorf("buffer: start position %d out of bounds", pos)
	}

	b := &Buffer{documentID: docID}
	b.UpdateTextPosition(text, pos, DefaultPositionOptions())

	return b, nil
}

// DocumentID returns the viewed document's handle.
func (b *Buffer) DocumentID() DocumentID {
	return b.documentID
}

// ModeKind returns the current mode's kind.
func (b *Buffer) ModeKind() ModeKind {
	return b.mode.Kind()
}

// SetMode enters a mode at the current position. Visual mode anchors its
// selection there.
func (b *Buffer) SetMode(kind ModeKind) {
	b.mode = NewMode(kind, b.textPos)
}

// Selection returns the visual selection, false outside visual mode.
func (b *Buffer) Selection() (Selection, bool) {
	return b.mode.Selection()
}

// TextPos returns the cursor's char offset.
func (b *Buffer) TextPos() int {
	return b.textPos
}

// LineIdx returns the cursor's line.
func (b *Buffer) LineIdx() int {
	return b.lineIdx
}

// LineChar returns the char offset of the cursor line's first char.
func (b *Buffer) LineChar() int {
	return b.lineChar
}

// SavedColumn returns the display column vertical moves return to.
func (b *Buffer) SavedColumn() int {
	return b.savedColumn
}

// Vscroll returns the first visible line.
func (b *Buffer) Vscroll() int {
	return b.vscroll
}

// UpdateTextPosition moves the cursor to pos within text, applying the
// line clamping, newline retreat, and saved-column bookkeeping selected
// by opts. It returns the final position and whether it differs from the
// requested one. A pos beyond the text is ignored entirely.
func (b *Buffer) UpdateTextPosition(text rope.Rope, pos int, opts PositionOptions) (int, bool) {
	if pos > text.Len() {
		return 0, false
	}

	lineIdx := text.CharToLine(pos)
	newPos := pos

	switch opts.Keep {
	case LineKeepMin:
		if lineIdx < b.lineIdx {
			newPos = b.lineChar
			lineIdx = b.lineIdx
		}
	case LineKeepMax:
		if lineIdx > b.lineIdx {
			next := b.lineIdx + 1
			if last := text.LineCount() - 1; next > last {
				next = last
			}
			newPos = text.LineToChar(next) - 1
			lineIdx = b.lineIdx
		}
	}

	if lineIdx != b.lineIdx {
		b.lineChar = text.LineToChar(lineIdx)
	}

	if !opts.AllowOnNewline && text.LineChars(lineIdx) > 1 {
		if r, ok := text.RuneAt(newPos); !ok || r == '\n' {
			newPos = b.lineChar + grapheme.PrevBoundary(text.Line(lineIdx), newPos-b.lineChar)
		}
	}

	b.lineIdx = lineIdx
	oldPos := b.textPos
	b.textPos = newPos

	if opts.UpdateSavedColumn {
		b.savedColumn = grapheme.WidthTo(text.Line(lineIdx), b.textPos-b.lineChar)
	}

	if oldPos != b.textPos {
		b.mode.update(b.textPos)
	}

	return newPos, newPos != pos
}

// UpdateVscroll scrolls so the cursor line stays within a viewport of
// height lines.
func (b *Buffer) UpdateVscroll(height int) {
	b.UpdateVscrollMargin(height, 0)
}

// UpdateVscrollMargin scrolls like UpdateVscroll but keeps margin lines
// visible above and below the cursor where the viewport allows. The
// margin is capped at half the viewport.
func (b *Buffer) UpdateVscrollMargin(height, margin int) {
	if height <= 0 {
		return
	}
	if margin < 0 {
		margin = 0
	}
	if half := (height - 1) / 2; margin > half {
		margin = half
	}

	lower := b.vscroll + margin
	upper := b.vscroll + height - 1 - margin

	if b.lineIdx >= upper {
		b.vscroll += b.lineIdx - upper
	} else if b.lineIdx < lower {
		b.vscroll -= lower - b.lineIdx
		if b.vscroll < 0 {
			b.vscroll = 0
		}
	}
}
