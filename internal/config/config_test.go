package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kk-code-lab/rjump/internal/tags"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
alphabet = "fjdk"
target_mode = true
tab_width = 8
visible_only = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Alphabet: "fjdk", TargetMode: true, TabWidth: 8, VisibleOnly: true}
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
	a, err := cfg.TagAlphabet()
	if err != nil || a.Size() != 4 {
		t.Fatalf("TagAlphabet = %v (size %d), %v", a, a.Size(), err)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", `colour = "red"`},
		{"syntax", `alphabet = `},
		{"duplicate alphabet rune", `alphabet = "aa"`},
		{"uppercase alphabet", `alphabet = "AB"`},
		{"tab width zero", `tab_width = 0`},
		{"tab width too large", `tab_width = 17`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if cfg != Default() {
				t.Fatalf("expected defaults on error, got %+v", cfg)
			}
		})
	}
}

func TestValidateWrapsAlphabetError(t *testing.T) {
	cfg := Default()
	cfg.Alphabet = "a b"
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, tags.ErrInvalidAlphabet) {
		t.Fatalf("expected both sentinels, got %v", err)
	}
}

func TestLoadDefaultHonorsEnvironment(t *testing.T) {
	path := writeConfig(t, `tab_width = 2`)
	t.Setenv("RJUMP_CONFIG", path)
	t.Setenv("RJUMP_ALPHABET", "qwer")

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if cfg.TabWidth != 2 || cfg.Alphabet != "qwer" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	t.Setenv("RJUMP_ALPHABET", "q!q")
	if _, err := LoadDefault(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected invalid env alphabet to fail, got %v", err)
	}
}

func TestPathPrefersEnvironment(t *testing.T) {
	t.Setenv("RJUMP_CONFIG", "/tmp/custom.toml")
	got, err := Path()
	if err != nil || got != "/tmp/custom.toml" {
		t.Fatalf("Path = %q, %v", got, err)
	}
}
