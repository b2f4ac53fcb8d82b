package cli

import (
	"io"
	"log/slog"
)

// newLogger returns the diagnostic logger. Diagnostics go to w (stderr) so
// stdout carries only result lines. Without verbose only warnings and
// errors are logged.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
