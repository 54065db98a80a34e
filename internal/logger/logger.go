package logger

import (
	"io"
	"log/slog"
)

// New creates a text logger writing records at or above level to w
func New(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError+1)
}
