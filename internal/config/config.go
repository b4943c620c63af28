// Package config loads application configuration from TOML files and
// environment variables layered over built-in defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the application configuration.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Input   InputConfig   `toml:"input"`
	History HistoryConfig `toml:"history"`
	UI      UIConfig      `toml:"ui"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// File receives log output when set. Logging to the terminal would
	// corrupt the drawing surface, so the default is no output.
	File string `toml:"file"`
}

// InputConfig configures click sequencing.
type InputConfig struct {
	// DoubleClickMs is the longest gap between clicks of a double click.
	DoubleClickMs int `toml:"double_click_ms"`

	// DoubleClickDistance is the largest cell distance between clicks of
	// a double click.
	DoubleClickDistance int `toml:"double_click_distance"`
}

// DoubleClickTime returns the click gap threshold as a duration.
func (c InputConfig) DoubleClickTime() time.Duration {
	return time.Duration(c.DoubleClickMs) * time.Millisecond
}

// HistoryConfig configures the undo chain.
type HistoryConfig struct {
	// MaxEntries bounds the undo stack.
	MaxEntries int `toml:"max_entries"`
}

// UIConfig holds hex colors for scene elements. Empty values keep the
// terminal defaults.
type UIConfig struct {
	FinishedColor string `toml:"finished_color"`
	CurrentColor  string `toml:"current_color"`
	PreviewColor  string `toml:"preview_color"`
	ToolbarColor  string `toml:"toolbar_color"`
	StatusColor   string `toml:"status_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Input: InputConfig{
			DoubleClickMs:       400,
			DoubleClickDistance: 1,
		},
		History: HistoryConfig{
			MaxEntries: 1000,
		},
		UI: UIConfig{
			CurrentColor: "#ff5f5f",
			PreviewColor: "#808080",
		},
	}
}

// Load builds the configuration: defaults, then the TOML file at path if it
// exists, then environment overrides. An empty path skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile overlays the TOML file at path. A missing file is not an error.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// Validate checks field ranges. Color values are validated where they are
// parsed, when the theme is built.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}

	if c.Input.DoubleClickMs <= 0 {
		return fmt.Errorf("input.double_click_ms must be positive, got %d", c.Input.DoubleClickMs)
	}
	if c.Input.DoubleClickDistance < 0 {
		return fmt.Errorf("input.double_click_distance must not be negative, got %d", c.Input.DoubleClickDistance)
	}
	if c.History.MaxEntries <= 0 {
		return fmt.Errorf("history.max_entries must be positive, got %d", c.History.MaxEntries)
	}
	return nil
}
