package keymap

import (
	"fmt"

	"github.com/dshills/stanza/internal/input/key"
)

// Result classifies what a key sequence reaches in a keymap.
type Result uint8

const (
	// Miss means no binding starts with the sequence.
	Miss Result = iota

	// Prefix means the sequence starts one or more longer bindings.
	Prefix

	// Match means the sequence names a complete binding.
	Match
)

func (r Result) String() string {
	switch r {
	case Prefix:
		return "prefix"
	case Match:
		return "match"
	default:
		return "miss"
	}
}

// Keymap is a prefix tree mapping key sequences to command names.
type Keymap struct {
	root map[key.Event]*node
}

// node is a leaf holding a command name or an inner node holding
// children, never both.
type node struct {
	command  string
	children map[key.Event]*node
}

func (n *node) leaf() bool {
	return n.children == nil
}

// New returns an empty keymap.
func New() *Keymap {
	return &Keymap{root: make(map[key.Event]*node)}
}

// Bind maps seq to the named command. Binding through an existing
// shorter binding or stopping on a prefix of a longer one is rejected;
// rebinding the exact sequence replaces the command.
func (k *Keymap) Bind(seq []key.Event, command string) error {
	if len(seq) == 0 {
		return fmt.Errorf("keymap: empty key sequence for %s", command)
	}
	if command == "" {
		return fmt.Errorf("keymap: empty command for %s", key.Sequence(seq))
	}

	nodes := k.root
	for i, ev := range seq {
		last := i == len(seq)-1

		n, ok := nodes[ev]
		switch {
		case !ok:
			n = &node{}
			nodes[ev] = n
			if last {
				n.command = command
				return nil
			}
			n.children = make(map[key.Event]*node)

		case last:
			if !n.leaf() {
				return fmt.Errorf("keymap: %s already starts longer bindings", key.Sequence(seq))
			}
			n.command = command
			return nil

		case n.leaf():
			return fmt.Errorf("keymap: %s already bound to %s", key.Sequence(seq[:i+1]), n.command)
		}

		nodes = n.children
	}
	return nil
}

// Lookup walks seq through the tree. It returns the command name when
// the walk lands on a complete binding.
func (k *Keymap) Lookup(seq []key.Event) (Result, string) {
	nodes := k.root
	for i, ev := range seq {
		n, ok := nodes[ev]
		if !ok {
			return Miss, ""
		}
		if n.leaf() {
			if i == len(seq)-1 {
				return Match, n.command
			}
			return Miss, ""
		}
		if i == len(seq)-1 {
			return Prefix, ""
		}
		nodes = n.children
	}
	return Miss, ""
}
