package command

import (
	"testing"

	"github.com/dshills/stanza/internal/editor"
)

func TestKillCharUnderCursor(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "lala\n", 1)

	kill(ctx)

	if got := doc.Text().String(); got != "lla\n" {
		t.Errorf("text = %q, want %q", got, "lla\n")
	}
	if got := ctx.Editor.Registers().Get(); got != "a" {
		t.Errorf("register = %q, want %q", got, "a")
	}
	if buf.TextPos() != 1 {
		t.Errorf("pos = %d, want 1", buf.TextPos())
	}
}

func TestKillCountStopsAtLineEnd(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "abc\nd", 1)
	ctx.Count = 9

	kill(ctx)

	if got := doc.Text().String(); got != "a\nd" {
		t.Errorf("text = %q, want %q", got, "a\nd")
	}
	if got := ctx.Editor.Registers().Get(); got != "bc" {
		t.Errorf("register = %q, want %q", got, "bc")
	}
	// The cursor retreats off the newline left under it.
	if buf.TextPos() != 0 {
		t.Errorf("pos = %d, want 0", buf.TextPos())
	}
}

func TestKillOnEmptyLineDoesNothing(t *testing.T) {
	ctx, _, doc := newTestContext(t, "a\n\nb", 2)
	ctx.Editor.Registers().Set("keep")

	kill(ctx)

	if got := doc.Text().String(); got != "a\n\nb" {
		t.Errorf("text = %q, want unchanged", got)
	}
	if got := ctx.Editor.Registers().Get(); got != "keep" {
		t.Errorf("register = %q, want untouched", got)
	}
}

func TestKillVisualSelection(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "lalala", 1)

	switchToVisualMode(ctx)
	moveRight(ctx)
	moveRight(ctx)
	kill(ctx)

	if got := doc.Text().String(); got != "lla" {
		t.Errorf("text = %q, want %q", got, "lla")
	}
	if got := ctx.Editor.Registers().Get(); got != "ala" {
		t.Errorf("register = %q, want %q", got, "ala")
	}
	if buf.ModeKind() != editor.ModeNormal {
		t.Errorf("mode = %v, want normal", buf.ModeKind())
	}
	if buf.TextPos() != 1 {
		t.Errorf("pos = %d, want 1", buf.TextPos())
	}
}

func TestKillVisualSelectionBackwards(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "abc", 2)

	switchToVisualMode(ctx)
	moveLeft(ctx)
	moveLeft(ctx)
	kill(ctx)

	if got := doc.Text().String(); got != "" {
		t.Errorf("text = %q, want empty", got)
	}
	if got := ctx.Editor.Registers().Get(); got != "abc" {
		t.Errorf("register = %q, want %q", got, "abc")
	}
	if buf.TextPos() != 0 {
		t.Errorf("pos = %d, want 0", buf.TextPos())
	}
}

func TestRemoveCharLeavesRegisterAlone(t *testing.T) {
	ctx, _, doc := newTestContext(t, "ab", 0)
	ctx.Editor.Registers().Set("keep")

	removeChar(ctx)

	if got := doc.Text().String(); got != "b" {
		t.Errorf("text = %q, want %q", got, "b")
	}
	if got := ctx.Editor.Registers().Get(); got != "keep" {
		t.Errorf("register = %q, want untouched", got)
	}
}

func TestKillLine(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "one\ntwo", 1)

	killLine(ctx)

	if got := doc.Text().String(); got != "two" {
		t.Errorf("text = %q, want %q", got, "two")
	}
	if got := ctx.Editor.Registers().Get(); got != "one\n" {
		t.Errorf("register = %q, want %q", got, "one\n")
	}
	if buf.TextPos() != 0 {
		t.Errorf("pos = %d, want 0", buf.TextPos())
	}
}

func TestKillLineWithCount(t *testing.T) {
	ctx, _, doc := newTestContext(t, "a\nb\nc", 0)
	ctx.Count = 2

	killLine(ctx)

	if got := doc.Text().String(); got != "c" {
		t.Errorf("text = %q, want %q", got, "c")
	}
	if got := ctx.Editor.Registers().Get(); got != "a\nb\n" {
		t.Errorf("register = %q, want %q", got, "a\nb\n")
	}
}

func TestKillLastLineWithoutNewline(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "a\nbc", 2)

	killLine(ctx)

	if got := doc.Text().String(); got != "a\n" {
		t.Errorf("text = %q, want %q", got, "a\n")
	}
	if got := ctx.Editor.Registers().Get(); got != "bc" {
		t.Errorf("register = %q, want %q", got, "bc")
	}
	// The trailing newline leaves an empty last line for the cursor.
	if buf.TextPos() != 2 {
		t.Errorf("pos = %d, want 2", buf.TextPos())
	}
}

func TestKillLineWholeBuffer(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "abc", 1)

	killLine(ctx)

	if got := doc.Text().String(); got != "" {
		t.Errorf("text = %q, want empty", got)
	}
	if got := ctx.Editor.Registers().Get(); got != "abc" {
		t.Errorf("register = %q, want %q", got, "abc")
	}
	if buf.TextPos() != 0 {
		t.Errorf("pos = %d, want 0", buf.TextPos())
	}
}

func TestKillLineCountPastEndClamps(t *testing.T) {
	ctx, _, doc := newTestContext(t, "a\nb", 0)
	ctx.Count = 5

	killLine(ctx)

	if got := doc.Text().String(); got != "" {
		t.Errorf("text = %q, want empty", got)
	}
	if got := ctx.Editor.Registers().Get(); got != "a\nb" {
		t.Errorf("register = %q, want %q", got, "a\nb")
	}
}

func TestYankLines(t *testing.T) {
	ctx, _, doc := newTestContext(t, "ab\ncd", 1)

	yank(ctx)

	if got := ctx.Editor.Registers().Get(); got != "ab\n" {
		t.Errorf("register = %q, want %q", got, "ab\n")
	}
	if got := doc.Text().String(); got != "ab\ncd" {
		t.Errorf("text = %q, want unchanged", got)
	}

	ctx.Count = 2
	yank(ctx)
	if got := ctx.Editor.Registers().Get(); got != "ab\ncd" {
		t.Errorf("register = %q, want %q", got, "ab\ncd")
	}
}

func TestYankVisualSelection(t *testing.T) {
	ctx, buf, _ := newTestContext(t, "abc", 0)

	switchToVisualMode(ctx)
	moveRight(ctx)
	yank(ctx)

	if got := ctx.Editor.Registers().Get(); got != "ab" {
		t.Errorf("register = %q, want %q", got, "ab")
	}
	if buf.ModeKind() != editor.ModeNormal {
		t.Errorf("mode = %v, want normal", buf.ModeKind())
	}
	if buf.TextPos() != 0 {
		t.Errorf("pos = %d, want selection start", buf.TextPos())
	}
}

func TestPasteLinewiseBelowCursor(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "ab\ncd", 0)

	yank(ctx)
	paste(ctx)

	if got := doc.Text().String(); got != "ab\nab\ncd" {
		t.Errorf("text = %q, want %q", got, "ab\nab\ncd")
	}
	if buf.TextPos() != 3 {
		t.Errorf("pos = %d, want start of pasted line", buf.TextPos())
	}
}

func TestPasteLinewiseWithCount(t *testing.T) {
	ctx, _, doc := newTestContext(t, "ab\ncd", 0)

	yank(ctx)
	ctx.Count = 2
	paste(ctx)

	if got := doc.Text().String(); got != "ab\nab\nab\ncd" {
		t.Errorf("text = %q, want %q", got, "ab\nab\nab\ncd")
	}
}

func TestPasteCharwiseAfterCursor(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "abc", 0)
	ctx.Editor.Registers().Set("xy")

	paste(ctx)

	if got := doc.Text().String(); got != "axybc" {
		t.Errorf("text = %q, want %q", got, "axybc")
	}
	if buf.TextPos() != 2 {
		t.Errorf("pos = %d, want last pasted char", buf.TextPos())
	}
}

func TestPasteCharwiseWithCount(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "abc", 0)
	ctx.Editor.Registers().Set("xy")
	ctx.Count = 2

	paste(ctx)

	if got := doc.Text().String(); got != "axyxybc" {
		t.Errorf("text = %q, want %q", got, "axyxybc")
	}
	if buf.TextPos() != 4 {
		t.Errorf("pos = %d, want last pasted char", buf.TextPos())
	}
}

func TestPasteEmptyRegisterDoesNothing(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "abc", 1)

	paste(ctx)

	if got := doc.Text().String(); got != "abc" {
		t.Errorf("text = %q, want unchanged", got)
	}
	if buf.TextPos() != 1 {
		t.Errorf("pos = %d, want unchanged", buf.TextPos())
	}
	if doc.Modified() {
		t.Error("document reports modified after a no-op paste")
	}
}
