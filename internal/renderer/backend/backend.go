// Package backend abstracts the terminal screen so the renderer and
// the event loop can run against an in-memory surface in tests.
package backend

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Backend is the display surface stanza draws on. Terminal implements
// it over tcell; NullBackend implements it in memory.
type Backend interface {
	// Init prepares the surface for use. Must be called first.
	Init() error

	// Fini releases the surface and restores the terminal.
	Fini()

	// Size returns the surface dimensions in cells.
	Size() (width, height int)

	// SetCell writes one cell. Combining runes attach to the primary.
	// Out-of-range positions are ignored.
	SetCell(x, y int, primary rune, combining []rune, style tcell.Style)

	// ShowCursor places the cursor and makes it visible.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle sets the cursor shape.
	SetCursorStyle(style tcell.CursorStyle)

	// Clear erases the surface to the default style.
	Clear()

	// Show flushes pending writes to the display.
	Show()

	// PollEvent blocks for the next event. It returns nil once the
	// surface is finalized.
	PollEvent() tcell.Event

	// PostQuit wakes a blocked PollEvent with an interrupt event.
	PostQuit()
}

// cell is one NullBackend grid entry.
type cell struct {
	primary   rune
	combining []rune
	style     tcell.Style
}

// NullBackend is an in-memory Backend for tests. Events arrive through
// PostEvent; the grid is inspected with Line and StyleAt.
type NullBackend struct {
	width, height int
	cells         [][]cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   tcell.CursorStyle
	events        chan tcell.Event
	shown         int
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan tcell.Event, 128),
	}
}

// Init allocates the cell grid.
func (b *NullBackend) Init() error {
	b.cells = emptyGrid(b.width, b.height)
	return nil
}

// Fini is a no-op.
func (b *NullBackend) Fini() {}

// Size returns the grid dimensions.
func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

// SetCell writes one grid entry, ignoring out-of-range positions.
func (b *NullBackend) SetCell(x, y int, primary rune, combining []rune, style tcell.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = cell{primary: primary, combining: combining, style: style}
}

// ShowCursor records the cursor position and marks it visible.
func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

// HideCursor marks the cursor hidden.
func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

// SetCursorStyle records the cursor shape.
func (b *NullBackend) SetCursorStyle(style tcell.CursorStyle) {
	b.cursorStyle = style
}

// Clear resets every cell to a blank.
func (b *NullBackend) Clear() {
	b.cells = emptyGrid(b.width, b.height)
}

// Show counts flushes so tests can assert a frame was produced.
func (b *NullBackend) Show() {
	b.shown++
}

// PollEvent blocks for the next posted event.
func (b *NullBackend) PollEvent() tcell.Event {
	return <-b.events
}

// PostQuit posts an interrupt event.
func (b *NullBackend) PostQuit() {
	b.PostEvent(tcell.NewEventInterrupt(nil))
}

// PostEvent queues an event for PollEvent. Full queues drop the event
// rather than block the test.
func (b *NullBackend) PostEvent(ev tcell.Event) {
	select {
	case b.events <- ev:
	default:
	}
}

// PostKey queues a key event.
func (b *NullBackend) PostKey(k tcell.Key, r rune, mod tcell.ModMask) {
	b.PostEvent(tcell.NewEventKey(k, r, mod))
}

// PostRunes queues one key event per rune.
func (b *NullBackend) PostRunes(s string) {
	for _, r := range s {
		b.PostKey(tcell.KeyRune, r, tcell.ModNone)
	}
}

// Resize changes the grid dimensions and posts a resize event.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.cells = emptyGrid(width, height)
	b.PostEvent(tcell.NewEventResize(width, height))
}

// CursorPosition reports the cursor state for assertions.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorShape reports the recorded cursor style.
func (b *NullBackend) CursorShape() tcell.CursorStyle {
	return b.cursorStyle
}

// ShowCount reports how many frames were flushed.
func (b *NullBackend) ShowCount() int {
	return b.shown
}

// Line returns row y as a string with trailing blanks trimmed. Columns
// shadowed by a wide cell are skipped.
func (b *NullBackend) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}

	runes := make([]rune, 0, b.width)
	for x := 0; x < b.width; x++ {
		c := b.cells[y][x]
		if c.primary == 0 {
			runes = append(runes, ' ')
			continue
		}
		runes = append(runes, c.primary)
		runes = append(runes, c.combining...)
		if runewidth.RuneWidth(c.primary) > 1 {
			x++
		}
	}

	end := len(runes)
	for end > 0 && runes[end-1] == ' ' {
		end--
	}
	return string(runes[:end])
}

// StyleAt returns the style of the cell at (x, y).
func (b *NullBackend) StyleAt(x, y int) tcell.Style {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return tcell.StyleDefault
	}
	return b.cells[y][x].style
}

func emptyGrid(width, height int) [][]cell {
	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, width)
	}
	return grid
}
