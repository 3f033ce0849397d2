// Package config loads window and logging settings.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds startup settings. Zero Width/Height mean "fill the
// viewport": the surface takes whatever size the window gives it.
type Config struct {
	Title    string `toml:"title"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	LogLevel string `toml:"log_level"`
}

// Default returns the settings used when no file or flag overrides them.
func Default() Config {
	return Config{
		Title:    "Sketchpad",
		LogLevel: "info",
	}
}

// Load reads a TOML file over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks that explicit sizes are positive and the log level is known.
func (c Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("%w: width %d must not be negative", ErrInvalid, c.Width)
	}
	if c.Height < 0 {
		return fmt.Errorf("%w: height %d must not be negative", ErrInvalid, c.Height)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// HasSize reports whether both dimensions were given explicitly.
func (c Config) HasSize() bool {
	return c.Width > 0 && c.Height > 0
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: log level %q (must be debug, info, warn, or error)", ErrInvalid, name)
}
