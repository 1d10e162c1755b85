package command

import (
	"github.com/dshills/stanza/internal/editor"
	"github.com/dshills/stanza/internal/engine/grapheme"
	"github.com/dshills/stanza/internal/engine/rope"
)

// Horizontal moves resolve grapheme boundaries against the cursor line
// only. Clusters never span a line break, so this matches a whole-text
// scan without materializing the text.

func moveLeft(ctx *Context) {
	buf, doc := ctx.Editor.Current()
	text := doc.Text()

	line := text.Line(buf.LineIdx())
	rel := grapheme.NthPrevBoundary(line, buf.TextPos()-buf.LineChar(), ctx.CountOr(1))

	opts := editor.DefaultPositionOptions()
	opts.Keep = editor.LineKeepMin
	buf.UpdateTextPosition(text, buf.LineChar()+rel, opts)
}

func moveRight(ctx *Context) {
	buf, doc := ctx.Editor.Current()
	text := doc.Text()

	line := text.Line(buf.LineIdx())
	rel := grapheme.NthNextBoundary(line, buf.TextPos()-buf.LineChar(), ctx.CountOr(1))

	opts := editor.DefaultPositionOptions()
	opts.Keep = editor.LineKeepMax
	buf.UpdateTextPosition(text, buf.LineChar()+rel, opts)
}

func moveUp(ctx *Context) {
	buf, doc := ctx.Editor.Current()
	gotoLine(buf, doc.Text(), buf.LineIdx()-ctx.CountOr(1))
}

func moveDown(ctx *Context) {
	buf, doc := ctx.Editor.Current()
	gotoLine(buf, doc.Text(), buf.LineIdx()+ctx.CountOr(1))
}

func gotoLineDefaultTop(ctx *Context) {
	buf, doc := ctx.Editor.Current()
	gotoLine(buf, doc.Text(), ctx.CountOr(1)-1)
}

func gotoLineDefaultBottom(ctx *Context) {
	buf, doc := ctx.Editor.Current()
	text := doc.Text()

	line := text.LineCount() - 1
	if ctx.Count > 0 {
		line = ctx.Count - 1
	}
	gotoLine(buf, text, line)
}

// gotoLine puts the cursor on the target line at the character closest
// to the saved column, clamped to the line's bounds. The saved column
// stays untouched so chained vertical moves keep aiming at it.
func gotoLine(buf *editor.Buffer, text rope.Rope, target int) {
	if target < 0 {
		target = 0
	}
	if last := text.LineCount() - 1; target > last {
		target = last
	}

	lineStart := text.LineToChar(target)
	lineEnd := text.LineToChar(target+1) - 1

	pos := lineStart + grapheme.CharAtWidth(text.Line(target), buf.SavedColumn())
	if pos > lineEnd {
		pos = lineEnd
	}
	if pos < lineStart {
		pos = lineStart
	}

	buf.UpdateTextPosition(text, pos, editor.PositionOptions{})
}
