package command

import (
	"github.com/dshills/stanza/internal/editor"
	"github.com/dshills/stanza/internal/engine/document"
	"github.com/dshills/stanza/internal/engine/transaction"
	"github.com/dshills/stanza/internal/input/key"
)

// InsertModeOnKey feeds one key into the open insert session. Edits are
// applied to the text and recorded in the transaction in lockstep so
// the session replays on repeat and undo; the transaction stays open
// until insert mode ends.
func InsertModeOnKey(ctx *Context, ev key.Event) {
	buf, doc := ctx.Editor.Current()

	pos := buf.TextPos()
	doc.WithTransaction(document.AttachRequireOpen, pos, func(d *document.Document, tx *transaction.Transaction) document.Leave {
		text := d.TextMut()

		switch {
		case ev.Key == key.KeyRune && ev.Rune != 0:
			*text = text.Insert(pos, string(ev.Rune))
			tx.InsertRune(ev.Rune)
			pos++

		case ev.Key == key.KeyEnter:
			*text = text.Insert(pos, "\n")
			tx.InsertRune('\n')
			pos++

		case ev.Key == key.KeyBackspace:
			if pos > 0 {
				*text = text.Delete(pos-1, pos)
				tx.MoveBackwardBy(1)
				tx.Delete(1)
				pos--
			}

		case ev.Key == key.KeyLeft:
			if pos > 0 {
				tx.MoveBackwardBy(1)
				pos--
			}

		case ev.Key == key.KeyRight:
			if pos+1 < text.Len() {
				tx.MoveForwardBy(1)
				pos++
			}
		}

		buf.UpdateTextPosition(d.Text(), pos, editor.InsertPositionOptions())
		return document.LeaveKeep
	})
}
