package command

import (
	"fmt"
	"sort"
)

// Registry resolves command names to commands. Keymap bindings resolve
// through Mappable, the prompt resolves through Typable. The registry
// is populated once at startup and read-only afterwards.
type Registry struct {
	commands map[string]*Command
	typable  map[string]*Command
}

// NewRegistry returns a registry populated with the built-in commands.
func NewRegistry() *Registry {
	r := &Registry{
		commands: make(map[string]*Command),
		typable:  make(map[string]*Command),
	}
	for _, cmd := range builtins() {
		r.Register(cmd)
	}
	return r
}

// Register adds cmd, replacing any previous command with the same name.
// A command reachable neither from keymaps nor from the prompt is a
// programming error, so Register panics on it.
func (r *Registry) Register(cmd *Command) {
	if !cmd.Mappable && !cmd.Typable {
		panic(fmt.Sprintf("command: %s is neither mappable nor typable", cmd.Name))
	}
	r.commands[cmd.Name] = cmd
	if cmd.Typable {
		r.typable[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			r.typable[alias] = cmd
		}
	}
}

// Lookup returns the command registered under its canonical name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Mappable returns the command a keymap may bind under name.
func (r *Registry) Mappable(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	if !ok || !cmd.Mappable {
		return nil, false
	}
	return cmd, true
}

// Typable resolves a prompt name or alias.
func (r *Registry) Typable(name string) (*Command, bool) {
	cmd, ok := r.typable[name]
	return cmd, ok
}

// Names returns the canonical command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func builtins() []*Command {
	mapped := func(name string, fn Func, aliases ...string) *Command {
		return &Command{Name: name, Fn: fn, Aliases: aliases, Mappable: true, Typable: true}
	}

	return []*Command{
		mapped("switch_to_normal_mode", switchToNormalMode),
		mapped("switch_to_insert_mode_inplace", switchToInsertModeInplace),
		mapped("switch_to_insert_mode_line_start", switchToInsertModeLineStart),
		mapped("switch_to_insert_mode_after", switchToInsertModeAfter),
		mapped("switch_to_insert_mode_line_end", switchToInsertModeLineEnd),
		mapped("switch_to_visual_mode", switchToVisualMode),
		mapped("move_left", moveLeft),
		mapped("move_down", moveDown),
		mapped("move_up", moveUp),
		mapped("move_right", moveRight),
		mapped("goto_line_default_top", gotoLineDefaultTop),
		mapped("goto_line_default_bottom", gotoLineDefaultBottom),
		mapped("kill", kill),
		mapped("kill_line", killLine),
		mapped("remove_char", removeChar),
		mapped("yank", yank),
		mapped("paste", paste),
		mapped("undo", undo),
		mapped("redo", redo),
		mapped("save", save, "w"),
		mapped("close", closeEditor, "q"),
		mapped("buffer_next", bufferNext),
		mapped("buffer_prev", bufferPrev),
		mapped("buffer_create", bufferCreate),
		mapped("buffer_kill", bufferKill),
		{Name: "command_mode", Fn: commandMode, Mappable: true},
	}
}
