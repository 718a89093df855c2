// Package logging builds the zerolog logger used while the terminal is owned
// by the game screen. Output goes to a file so it never corrupts the display.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New opens (or creates) the log file at path and returns a logger writing
// JSON lines to it at the given level, plus a function closing the file.
// An empty path returns a disabled logger.
func New(path, level string) (zerolog.Logger, func() error, error) {
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	return NewWriter(f, lvl), f.Close, nil
}

// NewWriter returns a timestamped logger writing to w.
func NewWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// parseLevel accepts zerolog level names; empty means info.
func parseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}
