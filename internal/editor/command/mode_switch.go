package command

import (
	"github.com/dshills/stanza/internal/editor"
	"github.com/dshills/stanza/internal/engine/document"
	"github.com/dshills/stanza/internal/engine/grapheme"
	"github.com/dshills/stanza/internal/engine/transaction"
)

// switchToInsertMode enters insert mode and opens the transaction that
// collects the whole insert session. place repositions the cursor
// before the transaction anchors; the typed count becomes the session's
// repeat so leaving insert mode replays the edits.
func switchToInsertMode(ctx *Context, place func(buf *editor.Buffer, doc *document.Document)) {
	buf, doc := ctx.Editor.Current()

	buf.SetMode(editor.ModeInsert)
	if place != nil {
		place(buf, doc)
	}

	doc.WithTransaction(document.AttachDisallow, buf.TextPos(), func(_ *document.Document, tx *transaction.Transaction) document.Leave {
		tx.SetRepeat(ctx.CountOr(1))
		return document.LeaveKeep
	})
}

func switchToInsertModeInplace(ctx *Context) {
	switchToInsertMode(ctx, nil)
}

func switchToInsertModeLineStart(ctx *Context) {
	switchToInsertMode(ctx, func(buf *editor.Buffer, doc *document.Document) {
		buf.UpdateTextPosition(doc.Text(), buf.LineChar(), editor.InsertPositionOptions())
	})
}

func switchToInsertModeAfter(ctx *Context) {
	switchToInsertMode(ctx, func(buf *editor.Buffer, doc *document.Document) {
		text := doc.Text()
		line := text.Line(buf.LineIdx())
		rel := grapheme.NextBoundary(line, buf.TextPos()-buf.LineChar())
		buf.UpdateTextPosition(text, buf.LineChar()+rel, editor.InsertPositionOptions())
	})
}

func switchToInsertModeLineEnd(ctx *Context) {
	switchToInsertMode(ctx, func(buf *editor.Buffer, doc *document.Document) {
		text := doc.Text()
		end := lineContentEnd(text, buf.LineIdx(), buf.LineChar())
		buf.UpdateTextPosition(text, end, editor.InsertPositionOptions())
	})
}

// switchToNormalMode leaves the current mode. Leaving insert mode
// retreats the cursor one position, replays the session's remaining
// repeats and commits the transaction.
func switchToNormalMode(ctx *Context) {
	buf, doc := ctx.Editor.Current()

	wasInsert := buf.ModeKind().IsInsert()
	buf.SetMode(editor.ModeNormal)

	if !wasInsert {
		return
	}

	pos := buf.TextPos() - 1
	if pos < 0 {
		pos = 0
	}
	opts := editor.DefaultPositionOptions()
	opts.Keep = editor.LineKeepMin
	buf.UpdateTextPosition(doc.Text(), pos, opts)

	doc.WithTransaction(document.AttachRequireOpen, buf.TextPos(), func(d *document.Document, tx *transaction.Transaction) document.Leave {
		tx.ApplyRepeats(d.TextMut())
		return document.LeaveCommit
	})
}

func switchToVisualMode(ctx *Context) {
	buf, _ := ctx.Editor.Current()
	buf.SetMode(editor.ModeVisual)
}
