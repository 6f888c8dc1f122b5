package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"error":   slog.LevelError,
		"warn":    slog.LevelWarn,
		"":        slog.LevelWarn,
		"verbose": slog.LevelWarn,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v; want %v", in, got, want)
		}
	}
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	log := Setup(&buf, "warn")
	log.Debug("fact unavailable", "fact", "gpu")
	log.Warn("art", "lines", 19)

	out := buf.String()
	if strings.Contains(out, "fact unavailable") {
		t.Errorf("debug line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "lines=19") {
		t.Errorf("missing warn line: %q", out)
	}
}
