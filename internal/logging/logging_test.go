package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelWarn, Output: &buf})

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("below-threshold messages logged: %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("expected messages missing: %q", out)
	}
}

func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelDebug, Output: &buf, Prefix: "test"})

	log.Info("count %d", 7)

	out := buf.String()
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("missing level tag: %q", out)
	}
	if !strings.Contains(out, "test:") {
		t.Errorf("missing prefix: %q", out)
	}
	if !strings.Contains(out, "count 7") {
		t.Errorf("format args not applied: %q", out)
	}
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelDebug, Output: &buf})

	child := log.WithComponent("render")
	child.Info("painted")

	if !strings.Contains(buf.String(), "component=render") {
		t.Errorf("field missing: %q", buf.String())
	}

	// The parent is unaffected.
	buf.Reset()
	log.Info("plain")
	if strings.Contains(buf.String(), "component=") {
		t.Errorf("parent picked up child field: %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelError, Output: &buf})

	log.Info("quiet")
	log.SetLevel(LevelDebug)
	log.Info("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("message below level logged: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("message after SetLevel missing: %q", out)
	}
}

func TestNullLoggerDiscards(t *testing.T) {
	// Must not panic, and derived loggers stay silent too.
	Null.Error("dropped")
	Null.WithComponent("x").Warn("dropped")
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
