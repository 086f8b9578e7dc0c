// Package logging builds the zerolog logger used across holdscroll.
//
// The TUI owns the terminal, so output goes to a file, never to stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the level and destination of log output
type Config struct {
	Level string
	File  string // empty discards all output
}

// ParseLevel parses a level name, falling back to info
func ParseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// New opens the log file and returns a logger writing JSON lines to it.
// The returned closer releases the file.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0700); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewWithWriter(f, cfg.Level), f, nil
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// NewWithWriter returns a logger writing to w at the given level
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// Component returns a child logger tagged with the component name
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
