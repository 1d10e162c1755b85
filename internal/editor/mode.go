package editor

// ModeKind identifies an editing mode.
type ModeKind uint8

const (
	// ModeNormal is the command mode keys dispatch from.
	ModeNormal ModeKind = iota

	// ModeInsert routes keys into the open transaction as text.
	ModeInsert

	// ModeVisual extends a selection as the cursor moves.
	ModeVisual
)

// Name returns the mode's lowercase name.
func (k ModeKind) Name() string {
	switch k {
	case ModeInsert:
		return "insert"
	case ModeVisual:
		return "visual"
	default:
		return "normal"
	}
}

// IsInsert reports whether the mode is insert.
func (k ModeKind) IsInsert() bool {
	return k == ModeInsert
}

func (k ModeKind) String() string {
	return k.Name()
}

// Mode is a mode along with its data; visual mode carries the selection.
type Mode struct {
	kind ModeKind
	sel  Selection
}

// NewMode enters kind at pos. Visual mode anchors its selection there.
func NewMode(kind ModeKind, pos int) Mode {
	m := Mode{kind: kind}
	if kind == ModeVisual {
		m.sel = SelectionAt(pos)
	}
	return m
}

// Kind returns the mode's kind.
func (m Mode) Kind() ModeKind {
	return m.kind
}

// Selection returns the visual selection, false outside visual mode.
func (m Mode) Selection() (Selection, bool) {
	if m.kind != ModeVisual {
		return Selection{}, false
	}
	return m.sel, true
}

// update moves the selection head when in visual mode.
func (m *Mode) update(pos int) {
	if m.kind == ModeVisual {
		m.sel = m.sel.WithHead(pos)
	}
}
