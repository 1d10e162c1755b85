package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Bindings are the application hooks init.lua scripts reach through
// the stanza module. Errors returned here surface as Lua errors in the
// script.
type Bindings struct {
	// Map binds a key sequence to a command in one mode:
	// stanza.map("normal", "<C-s>", "save").
	Map func(mode, notation, command string) error

	// Opt sets an editor option: stanza.opt("scrolloff", 3). The value
	// is a bool, float64, or string.
	Opt func(name string, value any) error

	// Log writes to the application log: stanza.log("loaded").
	Log func(msg string)
}

// Host owns the interpreter that runs init.lua with the stanza module
// installed.
type Host struct {
	state    *State
	bindings Bindings
}

// NewHost creates a host wired to the given application bindings.
func NewHost(bindings Bindings) *Host {
	h := &Host{
		state:    NewState(),
		bindings: bindings,
	}

	h.state.RegisterModule("stanza", map[string]lua.LGFunction{
		"map": h.luaMap,
		"opt": h.luaOpt,
		"log": h.luaLog,
	})

	return h
}

// RunInit executes the user's init script. Script failures come back
// as wrapped errors; the caller decides whether startup continues.
func (h *Host) RunInit(path string) error {
	if err := h.state.DoFile(path); err != nil {
		return fmt.Errorf("init script %s: %w", path, err)
	}
	return nil
}

// DoString executes a Lua chunk, for tests and ad-hoc evaluation.
func (h *Host) DoString(code string) error {
	return h.state.DoString(code)
}

// Close shuts the interpreter down.
func (h *Host) Close() error {
	return h.state.Close()
}

func (h *Host) luaMap(L *lua.LState) int {
	mode := L.CheckString(1)
	notation := L.CheckString(2)
	command := L.CheckString(3)

	if h.bindings.Map == nil {
		return 0
	}
	if err := h.bindings.Map(mode, notation, command); err != nil {
		L.RaiseError("map(%q, %q, %q): %s", mode, notation, command, err)
	}
	return 0
}

func (h *Host) luaOpt(L *lua.LState) int {
	name := L.CheckString(1)
	raw := L.CheckAny(2)

	value, ok := goValue(raw)
	if !ok {
		L.RaiseError("opt(%q): unsupported value type %s", name, raw.Type())
	}

	if h.bindings.Opt == nil {
		return 0
	}
	if err := h.bindings.Opt(name, value); err != nil {
		L.RaiseError("opt(%q): %s", name, err)
	}
	return 0
}

func (h *Host) luaLog(L *lua.LState) int {
	msg := L.CheckString(1)
	if h.bindings.Log != nil {
		h.bindings.Log(msg)
	}
	return 0
}

// goValue converts a Lua scalar to its Go counterpart.
func goValue(v lua.LValue) (any, bool) {
	switch val := v.(type) {
	case lua.LBool:
		return bool(val), true
	case lua.LNumber:
		return float64(val), true
	case lua.LString:
		return string(val), true
	default:
		return nil, false
	}
}
