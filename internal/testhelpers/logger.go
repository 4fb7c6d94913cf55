package testhelpers

import (
	"io"
	"log/slog"
)

// NewLogger creates a debug-level text logger writing to the given sink, so
// tests can assert on rendered log output.
func NewLogger(logSink io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(logSink, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
}
