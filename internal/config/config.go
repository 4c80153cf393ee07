// Package config loads viewer settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/kk-code-lab/rjump/internal/tags"
	"github.com/kk-code-lab/rjump/internal/textutil"
)

const (
	minTabWidth = 1
	maxTabWidth = 16
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings a user can change.
type Config struct {
	Alphabet    string `toml:"alphabet"`
	TargetMode  bool   `toml:"target_mode"`
	TabWidth    int    `toml:"tab_width"`
	VisibleOnly bool   `toml:"visible_only"`
	DebugLog    bool   `toml:"debug_log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Alphabet: tags.DefaultAlphabet,
		TabWidth: textutil.DefaultTabWidth,
	}
}

// Path returns the config file location: RJUMP_CONFIG if set, otherwise
// rjump/config.toml under the user config directory.
func Path() (string, error) {
	if p := os.Getenv("RJUMP_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rjump", "config.toml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Default(), fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the file at Path and applies environment overrides.
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		cfg := Default()
		return cfg, cfg.applyEnv()
	}
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.applyEnv()
}

func (c *Config) applyEnv() error {
	if alphabet := os.Getenv("RJUMP_ALPHABET"); alphabet != "" {
		c.Alphabet = alphabet
		if err := c.Validate(); err != nil {
			return fmt.Errorf("RJUMP_ALPHABET: %w", err)
		}
	}
	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := tags.NewAlphabet(c.Alphabet); err != nil {
		return fmt.Errorf("%w: alphabet: %w", ErrInvalidConfig, err)
	}
	if c.TabWidth < minTabWidth || c.TabWidth > maxTabWidth {
		return fmt.Errorf("%w: tab_width %d out of range %d..%d", ErrInvalidConfig, c.TabWidth, minTabWidth, maxTabWidth)
	}
	return nil
}

// TagAlphabet returns the validated tag alphabet.
func (c Config) TagAlphabet() (tags.Alphabet, error) {
	a, err := tags.NewAlphabet(c.Alphabet)
	if err != nil {
		return tags.Alphabet{}, fmt.Errorf("%w: alphabet: %w", ErrInvalidConfig, err)
	}
	return a, nil
}
