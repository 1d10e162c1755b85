package command

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/stanza/internal/editor"
	"github.com/dshills/stanza/internal/engine/document"
	"github.com/dshills/stanza/internal/engine/grapheme"
	"github.com/dshills/stanza/internal/engine/rope"
	"github.com/dshills/stanza/internal/engine/transaction"
)

// boundaryAfter returns the position just past the grapheme cluster at
// pos. Clusters never span a line break, so the scan stays on one line.
func boundaryAfter(text rope.Rope, pos int) int {
	if pos >= text.Len() {
		return text.Len()
	}
	lineIdx := text.CharToLine(pos)
	lineChar := text.LineToChar(lineIdx)
	return lineChar + grapheme.NextBoundary(text.Line(lineIdx), pos-lineChar)
}

// lineContentEnd returns the position just past the line's last content
// character, before the line break when the line has one.
func lineContentEnd(text rope.Rope, lineIdx, lineChar int) int {
	end := lineChar + text.LineChars(lineIdx)
	if end > lineChar {
		if r, ok := text.RuneAt(end - 1); ok && r == '\n' {
			end--
		}
	}
	return end
}

// kill deletes the visual selection, or characters under the cursor in
// normal mode. The removed text lands in the unnamed register.
func kill(ctx *Context) {
	buf, _ := ctx.Editor.Current()

	if sel, ok := buf.Selection(); ok {
		killSelection(ctx, sel)
		buf.SetMode(editor.ModeNormal)
		return
	}
	deleteChars(ctx, true)
}

// removeChar deletes like kill in normal mode but leaves the register
// alone.
func removeChar(ctx *Context) {
	deleteChars(ctx, false)
}

func killSelection(ctx *Context, sel editor.Selection) {
	buf, doc := ctx.Editor.Current()
	text := doc.Text()

	start, end := sel.Range()
	end = boundaryAfter(text, end)
	if end <= start {
		return
	}

	ctx.Editor.Registers().Set(text.Slice(start, end))

	doc.WithNewTransaction(start, func(d *document.Document, tx *transaction.Transaction) document.Leave {
		tx.Delete(end - start)

		tmp := d.Text()
		tx.Apply(&tmp)

		if newPos, adjusted := buf.UpdateTextPosition(tmp, start, editor.DefaultPositionOptions()); adjusted {
			tx.MoveTo(newPos)
		}

		tx.Apply(d.TextMut())
		return document.LeaveCommit
	})
}

// deleteChars removes up to count characters under the cursor, stopping
// at the line's content end so the line break survives.
func deleteChars(ctx *Context, toRegister bool) {
	buf, doc := ctx.Editor.Current()
	text := doc.Text()

	pos := buf.TextPos()
	n := lineContentEnd(text, buf.LineIdx(), buf.LineChar()) - pos
	if c := ctx.CountOr(1); c < n {
		n = c
	}
	if n <= 0 {
		return
	}

	if toRegister {
		ctx.Editor.Registers().Set(text.Slice(pos, pos+n))
	}

	doc.WithNewTransaction(pos, func(d *document.Document, tx *transaction.Transaction) document.Leave {
		tx.Delete(n)

		tmp := d.Text()
		tx.Apply(&tmp)

		opts := editor.DefaultPositionOptions()
		opts.Keep = editor.LineKeepMin
		if newPos, adjusted := buf.UpdateTextPosition(tmp, pos, opts); adjusted {
			tx.MoveTo(newPos)
		}

		tx.Apply(d.TextMut())
		return document.LeaveCommit
	})
}

// killLine deletes count whole lines starting at the cursor line and
// puts them in the unnamed register. The cursor lands on the start of
// the line that takes the killed lines' place.
func killLine(ctx *Context) {
	buf, doc := ctx.Editor.Current()
	text := doc.Text()

	lineStart := buf.LineChar()
	endLine := buf.LineIdx() + ctx.CountOr(1)
	if endLine > text.LineCount() {
		endLine = text.LineCount()
	}
	lineEnd := text.LineToChar(endLine)
	if lineEnd <= lineStart {
		return
	}

	ctx.Editor.Registers().Set(text.Slice(lineStart, lineEnd))

	doc.WithNewTransaction(buf.TextPos(), func(d *document.Document, tx *transaction.Transaction) document.Leave {
		tx.MoveTo(lineStart)
		tx.Delete(lineEnd - lineStart)
		tx.Apply(d.TextMut())
		return document.LeaveCommit
	})

	buf.UpdateTextPosition(doc.Text(), lineStart, editor.DefaultPositionOptions())
}

// yank copies the visual selection, or count whole lines in normal
// mode, into the unnamed register.
func yank(ctx *Context) {
	buf, doc := ctx.Editor.Current()
	text := doc.Text()

	if sel, ok := buf.Selection(); ok {
		start, end := sel.Range()
		end = boundaryAfter(text, end)
		if end > start {
			ctx.Editor.Registers().Set(text.Slice(start, end))
		}
		buf.SetMode(editor.ModeNormal)
		buf.UpdateTextPosition(text, start, editor.DefaultPositionOptions())
		return
	}

	lineStart := buf.LineChar()
	endLine := buf.LineIdx() + ctx.CountOr(1)
	if endLine > text.LineCount() {
		endLine = text.LineCount()
	}
	if lineEnd := text.LineToChar(endLine); lineEnd > lineStart {
		ctx.Editor.Registers().Set(text.Slice(lineStart, lineEnd))
	}
}

// paste inserts the unnamed register count times. Register text ending
// in a line break goes on a fresh line below the cursor; anything else
// goes right after the cursor's cluster.
func paste(ctx *Context) {
	buf, doc := ctx.Editor.Current()

	reg := ctx.Editor.Registers().Get()
	if reg == "" {
		return
	}

	text := doc.Text()
	count := ctx.CountOr(1)
	linewise := strings.HasSuffix(reg, "\n")

	var at int
	if linewise {
		at = text.LineToChar(buf.LineIdx() + 1)
	} else {
		at = boundaryAfter(text, buf.TextPos())
	}

	doc.WithNewTransaction(at, func(d *document.Document, tx *transaction.Transaction) document.Leave {
		tx.Insert(reg)
		tx.SetRepeat(count)
		tx.Apply(d.TextMut())
		return document.LeaveCommit
	})

	cursor := at
	if !linewise {
		cursor = at + count*utf8.RuneCountInString(reg) - 1
	}
	buf.UpdateTextPosition(doc.Text(), cursor, editor.DefaultPositionOptions())
}
