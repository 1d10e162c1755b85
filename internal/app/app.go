package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/stanza/internal/config"
	"github.com/dshills/stanza/internal/editor"
	"github.com/dshills/stanza/internal/editor/command"
	"github.com/dshills/stanza/internal/input/key"
	"github.com/dshills/stanza/internal/input/keymap"
	"github.com/dshills/stanza/internal/plugin/lua"
	"github.com/dshills/stanza/internal/renderer"
	"github.com/dshills/stanza/internal/renderer/backend"
)

// Options configures a new App.
type Options struct {
	// Config is the loaded configuration. Nil means defaults.
	Config *config.Config

	// ConfigPath is where Config was loaded from. It anchors the
	// init.lua lookup and may be empty.
	ConfigPath string

	// Backend is the screen the app draws to and polls events from.
	Backend backend.Backend

	// Logger receives application logs. Nil disables logging; a TUI
	// must not write to the terminal it draws on.
	Logger *Logger

	// Files are the paths to open at startup, first one current.
	Files []string
}

// App couples the editor core with key dispatch, rendering and
// scripting. It owns the event loop.
type App struct {
	editor   *editor.Editor
	keymaps  *keymap.Keymaps
	registry *command.Registry
	renderer *renderer.Renderer
	backend  backend.Backend
	logger   *Logger

	scrollOff int

	// pending buffers the keys of a partially matched sequence and
	// count accumulates the numeric prefix. Both belong to the
	// dispatch protocol in handleKey.
	pending []key.Event
	count   int

	prompt   *prompt
	exitCode int
}

// New builds a ready-to-run App: editor with the startup documents,
// registry, keymaps with config overrides applied, renderer, and the
// init script already executed.
func New(opts Options) (*App, error) {
	if opts.Backend == nil {
		return nil, errors.New("app: backend is required")
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	a := &App{
		editor:    editor.NewEditor(),
		keymaps:   keymap.Defaults(),
		registry:  command.NewRegistry(),
		backend:   opts.Backend,
		logger:    logger,
		scrollOff: cfg.Editor.ScrollOff,
	}
	a.editor.SetLogger(logger.WithComponent("editor"))
	a.renderer = renderer.New(opts.Backend, renderer.Options{
		TabWidth: cfg.Editor.TabWidth,
		Numbers:  cfg.Editor.Numbers,
	})

	if cfg.Editor.Clipboard {
		a.editor.Registers().EnableClipboard()
	}

	for mode, bindings := range cfg.Keys {
		for notation, name := range bindings {
			if err := a.bind(mode, notation, name); err != nil {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	for i, path := range opts.Files {
		if _, err := a.editor.OpenPath(path, i == 0); err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
	}
	if len(opts.Files) == 0 {
		a.editor.OpenScratch(true)
	}

	if path := cfg.InitPath(opts.ConfigPath); path != "" {
		if err := a.runInitScript(path); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// bind validates the command name against the registry before binding,
// so a typo in config or init.lua fails at startup instead of at key
// press time.
func (a *App) bind(mode, notation, name string) error {
	if _, ok := a.registry.Mappable(name); !ok {
		return fmt.Errorf("binding %s: unknown command %q", notation, name)
	}
	return a.keymaps.Bind(mode, notation, name)
}

func (a *App) runInitScript(path string) error {
	host := lua.NewHost(lua.Bindings{
		Map: a.bind,
		Opt: a.setOption,
		Log: func(msg string) { a.logger.Info("init.lua: %s", msg) },
	})
	defer func() { _ = host.Close() }()

	a.logger.Debug("running init script %s", path)
	return host.RunInit(path)
}

// setOption applies a stanza.opt() call from the init script.
func (a *App) setOption(name string, value any) error {
	switch name {
	case "scrolloff":
		n, ok := value.(float64)
		if !ok || n < 0 {
			return fmt.Errorf("scrolloff wants a non-negative number, got %v", value)
		}
		a.scrollOff = int(n)

	case "tab_width":
		n, ok := value.(float64)
		if !ok || n < 1 {
			return fmt.Errorf("tab_width wants a positive number, got %v", value)
		}
		a.renderer.SetTabWidth(int(n))

	case "numbers":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("numbers wants a boolean, got %v", value)
		}
		a.renderer.SetNumbers(b)

	case "clipboard":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("clipboard wants a boolean, got %v", value)
		}
		if b {
			a.editor.Registers().EnableClipboard()
		}

	default:
		return fmt.Errorf("unknown option %q", name)
	}
	return nil
}

// Run initializes the backend and drives the event loop until the
// editor requests exit. The requested exit code is available from
// ExitCode afterwards.
func (a *App) Run() error {
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("app: screen init: %w", err)
	}
	defer a.backend.Fini()

	a.draw()

	for {
		ev := a.backend.PollEvent()
		if ev == nil {
			return nil
		}
		if err := a.dispatch(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		a.draw()
	}
}

// Stop wakes the event loop and asks it to exit. Safe to call from
// another goroutine, such as a signal handler.
func (a *App) Stop() {
	a.backend.PostQuit()
}

// ExitCode returns the code the editor exited with.
func (a *App) ExitCode() int {
	return a.exitCode
}

func (a *App) dispatch(ev tcell.Event) error {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(key.FromTcell(tev))
	case *tcell.EventResize:
		// The redraw after dispatch picks up the new size.
	case *tcell.EventInterrupt:
		a.editor.Quit(0)
	}

	if code, ok := a.editor.ShouldExit(); ok {
		a.exitCode = code
		return ErrQuit
	}
	return nil
}

// handleKey is the dispatch protocol. Digits accumulate the count in
// normal and visual mode while no sequence is pending; a digit typed
// mid-sequence resets the dispatch state and is swallowed. Everything
// else feeds the mode keymap: a match runs the command, a prefix
// buffers the key, a miss resets any pending sequence. Keys unbound in
// insert mode fall through to the insert session.
func (a *App) handleKey(ev key.Event) {
	if a.prompt != nil {
		a.handlePromptKey(ev)
		return
	}

	buf, _ := a.editor.Current()
	mode := buf.ModeKind()

	if !mode.IsInsert() && ev.IsRune() && ev.Modifiers.IsEmpty() && ev.Rune >= '0' && ev.Rune <= '9' {
		if len(a.pending) > 0 {
			a.reset()
			return
		}
		a.count = a.count*10 + int(ev.Rune-'0')
		return
	}

	seq := append(append(key.Sequence{}, a.pending...), ev)
	result, name := a.keymaps.ForMode(mode.Name()).Lookup(seq)
	switch result {
	case keymap.Match:
		a.pending = a.pending[:0]
		a.runCommand(name, ev)
		a.count = 0

	case keymap.Prefix:
		a.pending = seq

	case keymap.Miss:
		if len(a.pending) > 0 {
			a.reset()
			return
		}
		if mode.IsInsert() {
			command.InsertModeOnKey(a.cmdContext(ev), ev)
		}
	}
}

func (a *App) runCommand(name string, trigger key.Event) {
	cmd, ok := a.registry.Mappable(name)
	if !ok {
		a.logger.Warn("binding resolves to unknown command %q", name)
		return
	}
	a.logger.Debug("dispatch %s count=%d", name, a.count)
	cmd.Call(a.cmdContext(trigger))
}

func (a *App) cmdContext(trigger key.Event) *command.Context {
	return &command.Context{
		Editor:     a.editor,
		Count:      a.count,
		Trigger:    trigger,
		OpenPrompt: a.openPrompt,
	}
}

func (a *App) reset() {
	a.pending = a.pending[:0]
	a.count = 0
}

func (a *App) openPrompt() {
	a.prompt = newPrompt()
}

func (a *App) handlePromptKey(ev key.Event) {
	switch ev.Key {
	case key.KeyEscape:
		a.prompt = nil
	case key.KeyEnter:
		input := a.prompt.input()
		a.prompt = nil
		a.execute(input)
	default:
		if !a.prompt.handle(ev) {
			a.prompt = nil
		}
	}
}

// execute runs a typed command line. Unknown names are logged, not
// fatal; there is no message area to surface them in yet.
func (a *App) execute(input string) {
	name := strings.TrimSpace(input)
	if name == "" {
		return
	}

	cmd, ok := a.registry.Typable(name)
	if !ok {
		a.logger.Warn("unknown command: %s", name)
		return
	}
	a.logger.Debug("execute :%s", name)
	cmd.Call(&command.Context{
		Editor:     a.editor,
		Trigger:    key.NewSpecialEvent(key.KeyEnter, key.ModNone),
		OpenPrompt: a.openPrompt,
	})
}

func (a *App) draw() {
	buf, _ := a.editor.Current()
	buf.UpdateVscrollMargin(a.renderer.TextHeight(), a.scrollOff)

	frame := renderer.Frame{Pending: key.Sequence(a.pending).String()}
	if a.prompt != nil {
		frame.Prompt = a.prompt.view()
	}
	a.renderer.Draw(a.editor, frame)
}
