package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "info" || cfg.Input.DoubleClickMs != 400 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polysketch.toml")
	content := `
[log]
level = "debug"

[input]
double_click_ms = 250

[ui]
current_color = "#00ff00"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	if cfg.Input.DoubleClickMs != 250 {
		t.Errorf("double_click_ms = %d", cfg.Input.DoubleClickMs)
	}
	if cfg.UI.CurrentColor != "#00ff00" {
		t.Errorf("current_color = %q", cfg.UI.CurrentColor)
	}
	// Untouched sections keep defaults.
	if cfg.History.MaxEntries != 1000 {
		t.Errorf("max_entries = %d", cfg.History.MaxEntries)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[log\nlevel="), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(envLogLevel, "warn")
	t.Setenv(envDoubleClickMs, "150")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	if cfg.Input.DoubleClickMs != 150 {
		t.Errorf("double_click_ms = %d", cfg.Input.DoubleClickMs)
	}
}

func TestEnvIgnoresUnparsableNumbers(t *testing.T) {
	t.Setenv(envDoubleClickMs, "soon")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input.DoubleClickMs != 400 {
		t.Errorf("double_click_ms = %d, want default", cfg.Input.DoubleClickMs)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"zero double click", func(c *Config) { c.Input.DoubleClickMs = 0 }},
		{"negative distance", func(c *Config) { c.Input.DoubleClickDistance = -1 }},
		{"zero history", func(c *Config) { c.History.MaxEntries = 0 }},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}
