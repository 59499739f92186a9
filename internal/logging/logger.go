// Package logging builds the slog loggers used by the hosts. Machine
// verdicts and traces go to stdout, so log output always targets a separate
// writer, normally stderr.
package logging

import (
	"io"
	"log/slog"
)

// New creates a logger writing text records to w at the given level.
// The "error" key is rewritten to "err" so failures aggregate under one
// field regardless of call site.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: normalizeAttr,
	}))
}

func normalizeAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == "error" {
		a.Key = "err"
	}
	return a
}

// NewNop returns a logger that discards everything. It is the engine's
// default so library use stays silent without nil checks.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
