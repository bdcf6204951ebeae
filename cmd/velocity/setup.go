package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-velocity/internal/config"
	"github.com/vovakirdan/neon-velocity/internal/storage"
)

// loadConfig reads the tuning and applies the difficulty preset.
func loadConfig(path, difficulty string) (config.VelocityConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.VelocityConfig{}, err
	}
	cfg, err := config.LoadVelocity(path)
	if err != nil {
		return config.VelocityConfig{}, err
	}
	config.ApplyVelocityPreset(&cfg, preset)
	return cfg, nil
}

// newLogger builds the process logger. Without a log file it writes to
// fallback; full-screen frontends pass io.Discard so logs do not tear the
// display. The returned closer releases the log file.
func newLogger(level, file string, fallback io.Writer) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	out, closer := fallback, func() error { return nil }
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "velocity",
		Level:           lvl,
	})
	return logger, closer, nil
}

// openStore opens the score database. A failure is logged and yields nil;
// the game runs without persistence.
func openStore(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database", "path", path, "err", err)
		return nil
	}
	return store
}
