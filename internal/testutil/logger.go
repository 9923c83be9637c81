package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output.
// Services take it in tests so assertions stay free of log noise.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
