// Package renderer draws editor state onto a backend surface: the
// visible window of the current buffer, a statusline, and the command
// prompt while one is open.
package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/stanza/internal/editor"
	"github.com/dshills/stanza/internal/engine/document"
	"github.com/dshills/stanza/internal/engine/grapheme"
	"github.com/dshills/stanza/internal/renderer/backend"
)

// Prompt is the command line under edit while the prompt is open.
type Prompt struct {
	// Text includes the leading colon.
	Text string
	// Cursor is the char offset of the cursor within Text.
	Cursor int
}

// Frame carries per-draw state owned by the event loop.
type Frame struct {
	// Pending is the undecided key sequence, shown in the statusline.
	Pending string
	// Prompt is non-nil while the command prompt is open. It replaces
	// the statusline row and takes the cursor.
	Prompt *Prompt
}

// Options configure a renderer.
type Options struct {
	// TabWidth is the number of columns per tab stop. Zero means 4.
	TabWidth int
	// Numbers shows the line number gutter.
	Numbers bool
}

// Renderer draws onto a backend. The bottom row holds the statusline,
// or the prompt while one is open; the rows above show buffer text.
type Renderer struct {
	backend  backend.Backend
	tabWidth int
	numbers  bool

	textStyle   tcell.Style
	selStyle    tcell.Style
	gutterStyle tcell.Style
	statusStyle tcell.Style
}

// New creates a renderer over b.
func New(b backend.Backend, opts Options) *Renderer {
	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}
	return &Renderer{
		backend:     b,
		tabWidth:    opts.TabWidth,
		numbers:     opts.Numbers,
		textStyle:   tcell.StyleDefault,
		selStyle:    tcell.StyleDefault.Reverse(true),
		gutterStyle: tcell.StyleDefault.Dim(true),
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
}

// SetTabWidth changes the tab stop width. Values below 1 are ignored.
func (r *Renderer) SetTabWidth(n int) {
	if n >= 1 {
		r.tabWidth = n
	}
}

// SetNumbers toggles the line number gutter.
func (r *Renderer) SetNumbers(on bool) {
	r.numbers = on
}

// TextHeight returns the rows available for buffer text.
func (r *Renderer) TextHeight() int {
	_, h := r.backend.Size()
	if h <= 1 {
		return 0
	}
	return h - 1
}

// Draw renders one frame: visible buffer lines, the statusline or the
// open prompt, and the cursor.
func (r *Renderer) Draw(ed *editor.Editor, frame Frame) {
	buf, doc := ed.Current()
	text := doc.Text()

	w, h := r.backend.Size()
	if w <= 0 || h <= 1 {
		return
	}
	r.backend.Clear()

	textHeight := h - 1
	origin := 0
	if r.numbers {
		origin = digits(text.LineCount()) + 1
	}

	sel, hasSel := buf.Selection()
	vscroll := buf.Vscroll()
	cursorDist := buf.TextPos() - buf.LineChar()

	cursorX := origin
	for y := 0; y < textHeight; y++ {
		lineIdx := vscroll + y
		if lineIdx >= text.LineCount() {
			break
		}

		if r.numbers {
			num := strconv.Itoa(lineIdx + 1)
			r.drawText(origin-1-len(num), y, origin-1, num, r.gutterStyle)
		}

		want := -1
		if lineIdx == buf.LineIdx() {
			want = cursorDist
		}
		col := r.drawLine(text.Line(lineIdx), y, origin, w, text.LineToChar(lineIdx), sel, hasSel, want)
		if want >= 0 {
			cursorX = col
		}
	}

	if frame.Prompt != nil {
		r.drawPrompt(frame.Prompt, w, h-1)
	} else {
		r.drawStatus(buf, doc, frame.Pending, w, h-1)
		r.placeCursor(buf, cursorX, buf.LineIdx()-vscroll, w, textHeight)
	}

	r.backend.Show()
}

// drawLine renders one buffer line and returns the screen column for
// the char offset wantDist, or the end of the line when wantDist lies
// past it. Tabs expand to the next tab stop; selected cells use the
// selection style.
func (r *Renderer) drawLine(raw string, y, origin, width, lineStart int, sel editor.Selection, hasSel bool, wantDist int) int {
	col := origin
	cursorCol := -1
	charOff := 0

	gr := uniseg.NewGraphemes(strings.TrimSuffix(raw, "\n"))
	for gr.Next() && col < width {
		runes := gr.Runes()
		if wantDist >= charOff && wantDist < charOff+len(runes) {
			cursorCol = col
		}

		style := r.textStyle
		if hasSel && sel.Contains(lineStart+charOff) {
			style = r.selStyle
		}

		if len(runes) == 1 && runes[0] == '\t' {
			next := origin + ((col-origin)/r.tabWidth+1)*r.tabWidth
			if next > width {
				next = width
			}
			for ; col < next; col++ {
				r.backend.SetCell(col, y, ' ', nil, style)
			}
		} else {
			cw := grapheme.ClusterWidth(gr.Str())
			if col+cw > width {
				col = width
				break
			}
			r.backend.SetCell(col, y, runes[0], runes[1:], style)
			col += cw
		}

		charOff += len(runes)
	}

	if cursorCol < 0 {
		cursorCol = col
	}
	return cursorCol
}

// drawStatus renders the statusline: mode and file on the left, the
// pending key sequence and cursor position on the right.
func (r *Renderer) drawStatus(buf *editor.Buffer, doc *document.Document, pending string, w, row int) {
	name := doc.Path()
	if name == "" {
		name = "[scratch]"
	}

	left := " " + strings.ToUpper(buf.ModeKind().Name()) + "  " + name
	if doc.Modified() {
		left += " [+]"
	}

	pos := fmt.Sprintf("%d:%d", buf.LineIdx()+1, buf.TextPos()-buf.LineChar()+1)
	right := pos + " "
	if pending != "" {
		right = pending + "  " + right
	}

	for x := 0; x < w; x++ {
		r.backend.SetCell(x, row, ' ', nil, r.statusStyle)
	}
	end := r.drawText(0, row, w, left, r.statusStyle)

	start := w - grapheme.Width(right)
	if start > end {
		r.drawText(start, row, w, right, r.statusStyle)
	}
}

// drawPrompt renders the open prompt on the bottom row and moves the
// cursor into it.
func (r *Renderer) drawPrompt(p *Prompt, w, row int) {
	for x := 0; x < w; x++ {
		r.backend.SetCell(x, row, ' ', nil, r.textStyle)
	}
	r.drawText(0, row, w, p.Text, r.textStyle)

	x := grapheme.WidthTo(p.Text, p.Cursor)
	if x >= w {
		x = w - 1
	}
	r.backend.SetCursorStyle(tcell.CursorStyleSteadyBar)
	r.backend.ShowCursor(x, row)
}

// placeCursor positions the buffer cursor, hiding it when the cursor
// line is scrolled out of view.
func (r *Renderer) placeCursor(buf *editor.Buffer, x, y, w, textHeight int) {
	if y < 0 || y >= textHeight {
		r.backend.HideCursor()
		return
	}
	if x >= w {
		x = w - 1
	}

	shape := tcell.CursorStyleSteadyBlock
	if buf.ModeKind().IsInsert() {
		shape = tcell.CursorStyleSteadyBar
	}
	r.backend.SetCursorStyle(shape)
	r.backend.ShowCursor(x, y)
}

// drawText writes s starting at x, clipped to limit, and returns the
// column after the last cell written.
func (r *Renderer) drawText(x, y, limit int, s string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() && x < limit {
		runes := gr.Runes()
		cw := grapheme.ClusterWidth(gr.Str())
		if x+cw > limit {
			break
		}
		r.backend.SetCell(x, y, runes[0], runes[1:], style)
		x += cw
	}
	return x
}

func digits(n int) int {
	if n <= 0 {
		return 1
	}
	d := 0
	for ; n > 0; n /= 10 {
		d++
	}
	return d
}
