// Package command implements the editing commands and the registry
// that resolves them by name for keymap dispatch and the command
// prompt. Commands receive a Context and drive document changes
// through transactions.
package command

import (
	"github.com/dshills/stanza/internal/editor"
	"github.com/dshills/stanza/internal/input/key"
)

// Func is the implementation of a single editing command.
type Func func(*Context)

// Context carries the state a command may touch during one dispatch.
type Context struct {
	Editor *editor.Editor

	// Count is the numeric prefix typed before the command, 0 when none.
	Count int

	// Trigger is the key event that resolved to this command.
	Trigger key.Event

	// OpenPrompt switches the client into the command prompt. Nil when
	// the dispatcher has no prompt, such as scripted or test dispatch.
	OpenPrompt func()
}

// CountOr returns the typed count, or def when no count was typed.
func (c *Context) CountOr(def int) int {
	if c.Count < 1 {
		return def
	}
	return c.Count
}

// Command couples a dispatchable name with its implementation.
// Mappable commands may be bound to key sequences, typable commands
// may be entered at the prompt, and aliases are extra prompt names.
type Command struct {
	Name     string
	Fn       Func
	Aliases  []string
	Mappable bool
	Typable  bool
}

// Call runs the command against ctx.
func (c *Command) Call(ctx *Context) {
	c.Fn(ctx)
}
