package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Error("messages below level should be dropped")
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Error("messages at or above level should be written")
	}
}

func TestLoggerPrefixAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf, Prefix: "polysketch"})

	logger.WithComponent("renderer").Info("frame drawn")

	out := buf.String()
	if !strings.Contains(out, "[INFO] polysketch: frame drawn") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "component=renderer") {
		t.Errorf("fields missing: %q", out)
	}
}

func TestLoggerFormatArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	logger.Info("action %s at %d", "undo", 3)

	if !strings.Contains(buf.String(), "action undo at 3") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	child := logger.WithField("k", "v")
	logger.Info("parent message")

	if strings.Contains(buf.String(), "k=v") {
		t.Error("parent logger should not carry the child's field")
	}

	buf.Reset()
	child.Info("child message")
	if !strings.Contains(buf.String(), "k=v") {
		t.Error("child logger should carry its field")
	}
}

func TestNullLoggerIsSilent(t *testing.T) {
	// Must not panic or write anywhere.
	NullLogger.Error("nothing happens")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
