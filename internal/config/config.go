// Package config loads and validates the stanza configuration file.
//
// Configuration lives in a single TOML file, by default
// $XDG_CONFIG_HOME/stanza/config.toml. A missing file is not an error:
// Load falls back to the built-in defaults so stanza runs out of the
// box.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the root of the configuration file.
type Config struct {
	Editor  Editor  `toml:"editor"`
	Logging Logging `toml:"logging"`

	// Keys holds per-mode binding overrides: mode name to a table of
	// key notation ("<C-s>", "dd") to command name.
	Keys map[string]map[string]string `toml:"keys"`

	// Init is the path to the user's init.lua. Empty means "init.lua
	// next to the config file, if present".
	Init string `toml:"init"`
}

// Editor holds editing and display settings.
type Editor struct {
	// ScrollOff is the minimum number of lines kept visible above and
	// below the cursor.
	ScrollOff int `toml:"scroll_off"`

	// TabWidth is the number of columns a tab advances to.
	TabWidth int `toml:"tab_width"`

	// Numbers shows line numbers in the gutter.
	Numbers bool `toml:"numbers"`

	// Clipboard mirrors the unnamed register to the system clipboard.
	Clipboard bool `toml:"clipboard"`
}

// Logging holds log output settings.
type Logging struct {
	// Level is the minimum level to write: debug, info, warn, error.
	Level string `toml:"level"`

	// File is the log destination. Empty disables logging; a terminal
	// editor cannot log to its own screen.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: Editor{
			ScrollOff: 5,
			TabWidth:  4,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, newParseError(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// modeNames are the modes key overrides may target.
var modeNames = map[string]bool{
	"normal": true,
	"insert": true,
	"visual": true,
}

// Validate rejects values no component can act on.
func (c *Config) Validate() error {
	if c.Editor.ScrollOff < 0 {
		return fmt.Errorf("%w: editor.scroll_off must be >= 0, got %d", ErrInvalidValue, c.Editor.ScrollOff)
	}
	if c.Editor.TabWidth < 1 {
		return fmt.Errorf("%w: editor.tab_width must be >= 1, got %d", ErrInvalidValue, c.Editor.TabWidth)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidValue, c.Logging.Level)
	}

	for mode, bindings := range c.Keys {
		if !modeNames[mode] {
			return fmt.Errorf("%w: keys.%s", ErrUnknownMode, mode)
		}
		for notation, command := range bindings {
			if command == "" {
				return fmt.Errorf("%w: keys.%s.%q maps to an empty command", ErrInvalidValue, mode, notation)
			}
		}
	}
	return nil
}

// InitPath resolves the init.lua to run: the configured path, or an
// init.lua sibling of the config file. Empty means no script.
func (c *Config) InitPath(configPath string) string {
	if c.Init != "" {
		return c.Init
	}
	if configPath == "" {
		return ""
	}
	sibling := filepath.Join(filepath.Dir(configPath), "init.lua")
	if _, err := os.Stat(sibling); err != nil {
		return ""
	}
	return sibling
}

// DefaultPath returns the conventional config file location, honoring
// XDG_CONFIG_HOME. The path may not exist.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "stanza", "config.toml"), nil
}

// newParseError wraps a toml decode failure, pulling out the position
// when the decoder reports one.
func newParseError(path string, err error) error {
	pe := &ParseError{Path: path, Message: err.Error(), Err: err}

	var de *toml.DecodeError
	if errors.As(err, &de) {
		pe.Line, pe.Column = de.Position()
		pe.Message = de.Error()
	}
	return pe
}
