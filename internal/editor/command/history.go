package command

import "github.com/dshills/stanza/internal/editor"

func undo(ctx *Context) {
	buf, doc := ctx.Editor.Current()

	for i := 0; i < ctx.CountOr(1); i++ {
		pos, ok := doc.Undo()
		if !ok {
			break
		}
		buf.UpdateTextPosition(doc.Text(), pos, editor.DefaultPositionOptions())
	}
}

func redo(ctx *Context) {
	buf, doc := ctx.Editor.Current()

	for i := 0; i < ctx.CountOr(1); i++ {
		pos, ok := doc.Redo()
		if !ok {
			break
		}
		buf.UpdateTextPosition(doc.Text(), pos, editor.DefaultPositionOptions())
	}
}
