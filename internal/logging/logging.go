// Package logging builds the structured logger shared by diary commands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// New returns a JSON logger writing to w at the given minimum level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Open resolves the log destination. When path is set the file is opened in
// append mode; otherwise fallback is used, and a nil fallback discards logs.
// The returned close func is always non-nil.
func Open(path string, fallback io.Writer, level slog.Level) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	if path == "" {
		if fallback == nil {
			return Discard(), noop, nil
		}
		return New(fallback, level), noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return nil, noop, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePermissions)
	if err != nil {
		return nil, noop, fmt.Errorf("open log file: %w", err)
	}
	return New(file, level), file.Close, nil
}
