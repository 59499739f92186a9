package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_WritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug)

	logger.Debug("machine loaded", "states", 2)

	out := buf.String()
	if !strings.Contains(out, "machine loaded") || !strings.Contains(out, "states=2") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestNew_RewritesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Error("load failed", "error", "bad symbol")

	out := buf.String()
	if !strings.Contains(out, `err="bad symbol"`) {
		t.Errorf("error key not rewritten: %q", out)
	}
	if strings.Contains(out, "error=") {
		t.Errorf("raw error key leaked: %q", out)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("quiet")

	if buf.Len() != 0 {
		t.Errorf("info record emitted below warn level: %q", buf.String())
	}
}

func TestNewNop_Silent(t *testing.T) {
	// Must not panic and must not require any setup from library callers.
	NewNop().Error("ignored", "error", "x")
}
