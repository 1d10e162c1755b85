package keymap

import "fmt"

// defaultBindings lists the stock bindings per mode name.
var defaultBindings = map[string][]struct{ notation, command string }{
	"normal": {
		{"<TAB>", "buffer_next"},
		{"<S-TAB>", "buffer_prev"},
		{"<C-b>c", "buffer_create"},
		{"<C-b>k", "buffer_kill"},
		{"zs", "save"},
		{"ZZ", "close"},
		{"i", "switch_to_insert_mode_inplace"},
		{"I", "switch_to_insert_mode_line_start"},
		{"a", "switch_to_insert_mode_after"},
		{"A", "switch_to_insert_mode_line_end"},
		{"v", "switch_to_visual_mode"},
		{"h", "move_left"},
		{"j", "move_down"},
		{"k", "move_up"},
		{"l", "move_right"},
		{"gg", "goto_line_default_top"},
		{"G", "goto_line_default_bottom"},
		{"dd", "kill_line"},
		{"x", "kill"},
		{"y", "yank"},
		{"p", "paste"},
		{":", "command_mode"},
		{"u", "undo"},
		{"<C-r>", "redo"},
	},
	"insert": {
		{"<ESC>", "switch_to_normal_mode"},
	},
	"visual": {
		{"<ESC>", "switch_to_normal_mode"},
		{":", "command_mode"},
		{"h", "move_left"},
		{"j", "move_down"},
		{"k", "move_up"},
		{"l", "move_right"},
		{"gg", "goto_line_default_top"},
		{"G", "goto_line_default_bottom"},
		{"x", "kill"},
		{"y", "yank"},
	},
}

// Defaults returns the stock keymaps for the normal, insert, and
// visual modes.
func Defaults() *Keymaps {
	ks := NewKeymaps()
	for mode, bindings := range defaultBindings {
		for _, b := range bindings {
			if err := ks.Bind(mode, b.notation, b.command); err != nil {
				panic(fmt.Sprintf("keymap: bad default binding %s: %v", b.notation, err))
			}
		}
	}
	return ks
}
