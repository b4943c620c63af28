package config

import (
	"os"
	"strconv"
)

// Environment variables recognized as overrides.
const (
	envLogLevel      = "POLYSKETCH_LOG_LEVEL"
	envLogFile       = "POLYSKETCH_LOG_FILE"
	envDoubleClickMs = "POLYSKETCH_DOUBLE_CLICK_MS"
	envMaxEntries    = "POLYSKETCH_HISTORY_MAX"
)

// applyEnv overlays environment variables on the configuration. Empty values
// are treated as set, matching os.LookupEnv semantics; unparsable numbers are
// ignored rather than failing startup.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(envLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv(envLogFile); ok {
		cfg.Log.File = v
	}
	if v, ok := os.LookupEnv(envDoubleClickMs); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Input.DoubleClickMs = n
		}
	}
	if v, ok := os.LookupEnv(envMaxEntries); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.History.MaxEntries = n
		}
	}
}
