package command

import (
	"testing"

	"github.com/dshills/stanza/internal/editor"
	"github.com/dshills/stanza/internal/input/key"
)

func typeText(ctx *Context, s string) {
	for _, r := range s {
		InsertModeOnKey(ctx, key.NewRuneEvent(r, key.ModNone))
	}
}

func TestSwitchToInsertModeOpensTransaction(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "lala\n", 2)

	switchToInsertModeInplace(ctx)

	if !buf.ModeKind().IsInsert() {
		t.Fatalf("mode = %v, want insert", buf.ModeKind())
	}
	if !doc.InTransaction() {
		t.Error("no transaction open after entering insert mode")
	}
}

func TestInsertSessionCommitsOnEscape(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "", 0)

	switchToInsertModeInplace(ctx)
	typeText(ctx, "hi!")
	switchToNormalMode(ctx)

	if got := doc.Text().String(); got != "hi!" {
		t.Errorf("text = %q, want %q", got, "hi!")
	}
	if doc.InTransaction() {
		t.Error("transaction still open after leaving insert mode")
	}
	if buf.ModeKind() != editor.ModeNormal {
		t.Errorf("mode = %v, want normal", buf.ModeKind())
	}
	if buf.TextPos() != 2 {
		t.Errorf("pos = %d, want 2", buf.TextPos())
	}

	undo(ctx)
	if got := doc.Text().String(); got != "" {
		t.Errorf("text after undo = %q, want the whole session gone", got)
	}
}

func TestInsertSessionRepeatsCount(t *testing.T) {
	ctx, _, doc := newTestContext(t, "", 0)
	ctx.Count = 3

	switchToInsertModeInplace(ctx)
	typeText(ctx, "hi")
	switchToNormalMode(ctx)

	if got := doc.Text().String(); got != "hihihi" {
		t.Errorf("text = %q, want %q", got, "hihihi")
	}

	undo(ctx)
	if got := doc.Text().String(); got != "" {
		t.Errorf("text after undo = %q, want all repeats gone", got)
	}
}

func TestEmptyInsertSessionLeavesNoCommit(t *testing.T) {
	ctx, _, doc := newTestContext(t, "ab", 1)

	switchToInsertModeInplace(ctx)
	switchToNormalMode(ctx)

	if doc.Modified() {
		t.Error("document reports modified after an empty insert session")
	}
}

func TestInsertModeLineStart(t *testing.T) {
	ctx, _, doc := newTestContext(t, "lala\n", 2)

	switchToInsertModeLineStart(ctx)
	typeText(ctx, "x")
	switchToNormalMode(ctx)

	if got := doc.Text().String(); got != "xlala\n" {
		t.Errorf("text = %q, want %q", got, "xlala\n")
	}
}

func TestInsertModeAfterCursor(t *testing.T) {
	ctx, _, doc := newTestContext(t, "lala\n", 1)

	switchToInsertModeAfter(ctx)
	typeText(ctx, "x")
	switchToNormalMode(ctx)

	if got := doc.Text().String(); got != "laxla\n" {
		t.Errorf("text = %q, want %q", got, "laxla\n")
	}
}

func TestInsertModeAfterLastChar(t *testing.T) {
	ctx, _, doc := newTestContext(t, "lala\n", 3)

	switchToInsertModeAfter(ctx)
	typeText(ctx, "!")
	switchToNormalMode(ctx)

	if got := doc.Text().String(); got != "lala!\n" {
		t.Errorf("text = %q, want %q", got, "lala!\n")
	}
}

func TestInsertModeLineEnd(t *testing.T) {
	ctx, _, doc := newTestContext(t, "lala\n", 0)

	switchToInsertModeLineEnd(ctx)
	typeText(ctx, "!")
	switchToNormalMode(ctx)

	if got := doc.Text().String(); got != "lala!\n" {
		t.Errorf("text = %q, want %q", got, "lala!\n")
	}
}

func TestInsertBackspace(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "ab", 1)

	switchToInsertModeInplace(ctx)
	InsertModeOnKey(ctx, key.Event{Key: key.KeyBackspace})
	InsertModeOnKey(ctx, key.Event{Key: key.KeyBackspace})
	switchToNormalMode(ctx)

	if got := doc.Text().String(); got != "b" {
		t.Errorf("text = %q, want %q", got, "b")
	}
	if buf.TextPos() != 0 {
		t.Errorf("pos = %d, want 0", buf.TextPos())
	}

	undo(ctx)
	if got := doc.Text().String(); got != "ab" {
		t.Errorf("text after undo = %q, want %q", got, "ab")
	}
}

func TestInsertEnterSplitsLine(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "ab", 1)

	switchToInsertModeInplace(ctx)
	InsertModeOnKey(ctx, key.Event{Key: key.KeyEnter})
	switchToNormalMode(ctx)

	if got := doc.Text().String(); got != "a\nb" {
		t.Errorf("text = %q, want %q", got, "a\nb")
	}
	// Escape retreats off the fresh newline onto the first line.
	if buf.TextPos() != 0 {
		t.Errorf("pos = %d, want 0", buf.TextPos())
	}
}

func TestInsertArrowKeys(t *testing.T) {
	ctx, _, doc := newTestContext(t, "abc", 1)

	switchToInsertModeInplace(ctx)
	InsertModeOnKey(ctx, key.Event{Key: key.KeyRight})
	InsertModeOnKey(ctx, key.Event{Key: key.KeyRight}) // blocked before the end
	InsertModeOnKey(ctx, key.Event{Key: key.KeyLeft})
	InsertModeOnKey(ctx, key.Event{Key: key.KeyLeft})
	typeText(ctx, "X")
	switchToNormalMode(ctx)

	if got := doc.Text().String(); got != "Xabc" {
		t.Errorf("text = %q, want %q", got, "Xabc")
	}
}

func TestEscapeAtStartClampsToZero(t *testing.T) {
	ctx, buf, _ := newTestContext(t, "ab", 0)

	switchToInsertModeInplace(ctx)
	switchToNormalMode(ctx)

	if buf.TextPos() != 0 {
		t.Errorf("pos = %d, want 0", buf.TextPos())
	}
}

func TestSwitchToNormalFromVisualKeepsPosition(t *testing.T) {
	ctx, buf, doc := newTestContext(t, "abc", 1)

	switchToVisualMode(ctx)
	moveRight(ctx)
	switchToNormalMode(ctx)

	if buf.ModeKind() != editor.ModeNormal {
		t.Errorf("mode = %v, want normal", buf.ModeKind())
	}
	if buf.TextPos() != 2 {
		t.Errorf("pos = %d, want 2 with no insert retreat", buf.TextPos())
	}
	if doc.InTransaction() {
		t.Error("leaving visual mode should not touch transactions")
	}
}

func TestVisualModeAnchorsSelection(t *testing.T) {
	ctx, buf, _ := newTestContext(t, "abcdef", 2)

	switchToVisualMode(ctx)
	sel, ok := buf.Selection()
	if !ok {
		t.Fatal("no selection in visual mode")
	}
	if sel.Anchor() != 2 || sel.Head() != 2 {
		t.Errorf("selection = (%d, %d), want anchored at 2", sel.Anchor(), sel.Head())
	}

	moveRight(ctx)
	sel, _ = buf.Selection()
	if sel.Anchor() != 2 || sel.Head() != 3 {
		t.Errorf("selection = (%d, %d), want head following cursor", sel.Anchor(), sel.Head())
	}
}
