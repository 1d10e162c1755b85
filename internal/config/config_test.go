package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Editor.ScrollOff != 5 {
		t.Errorf("ScrollOff = %d, want 5", cfg.Editor.ScrollOff)
	}
	if cfg.Editor.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want 4", cfg.Editor.TabWidth)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if cfg.Editor.ScrollOff != Default().Editor.ScrollOff {
		t.Errorf("missing file should load defaults, got ScrollOff = %d", cfg.Editor.ScrollOff)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "config.toml", `
[editor]
scroll_off = 2
clipboard = true

[logging]
level = "debug"
file = "/tmp/stanza.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Editor.ScrollOff != 2 {
		t.Errorf("ScrollOff = %d, want 2", cfg.Editor.ScrollOff)
	}
	if !cfg.Editor.Clipboard {
		t.Error("Clipboard not set")
	}
	// Absent keys keep their defaults.
	if cfg.Editor.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want default 4", cfg.Editor.TabWidth)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "/tmp/stanza.log" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadKeyBindings(t *testing.T) {
	path := writeFile(t, "config.toml", `
[keys.normal]
"<C-s>" = "save"
"ZQ" = "close"

[keys.insert]
"<C-c>" = "switch_to_normal_mode"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.Keys["normal"]["<C-s>"]; got != "save" {
		t.Errorf(`Keys["normal"]["<C-s>"] = %q, want "save"`, got)
	}
	if got := cfg.Keys["insert"]["<C-c>"]; got != "switch_to_normal_mode" {
		t.Errorf(`Keys["insert"]["<C-c>"] = %q, want "switch_to_normal_mode"`, got)
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeFile(t, "config.toml", "[editor\nscroll_off = 2\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load accepted malformed TOML")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not a ParseError", err)
	}
	if pe.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", pe.Path, path)
	}
	if pe.Line == 0 {
		t.Error("ParseError.Line not set")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "negative scroll_off",
			mutate:  func(c *Config) { c.Editor.ScrollOff = -1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "zero tab_width",
			mutate:  func(c *Config) { c.Editor.TabWidth = 0 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: ErrInvalidValue,
		},
		{
			name: "unknown mode",
			mutate: func(c *Config) {
				c.Keys = map[string]map[string]string{"ex": {"q": "close"}}
			},
			wantErr: ErrUnknownMode,
		},
		{
			name: "empty command",
			mutate: func(c *Config) {
				c.Keys = map[string]map[string]string{"normal": {"q": ""}}
			},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeFile(t, "config.toml", "[editor]\nscroll_off = -3\n")

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Load = %v, want ErrInvalidValue", err)
	}
}

func TestInitPath(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		cfg := Default()
		cfg.Init = "/elsewhere/init.lua"
		if got := cfg.InitPath("/etc/stanza/config.toml"); got != "/elsewhere/init.lua" {
			t.Errorf("InitPath = %q", got)
		}
	})

	t.Run("sibling init.lua", func(t *testing.T) {
		dir := t.TempDir()
		sibling := filepath.Join(dir, "init.lua")
		if err := os.WriteFile(sibling, []byte("-- init"), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg := Default()
		if got := cfg.InitPath(filepath.Join(dir, "config.toml")); got != sibling {
			t.Errorf("InitPath = %q, want %q", got, sibling)
		}
	})

	t.Run("no script", func(t *testing.T) {
		cfg := Default()
		if got := cfg.InitPath(filepath.Join(t.TempDir(), "config.toml")); got != "" {
			t.Errorf("InitPath = %q, want empty", got)
		}
	})
}
