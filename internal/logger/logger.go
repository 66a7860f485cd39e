// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger holds the process-wide structured logger. Until Setup is
// called every record is discarded, so packages can log unconditionally.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Config selects the log destination and verbosity.
type Config struct {
	// Debug lowers the level to Debug and adds source locations.
	Debug bool

	// Writer receives log lines. Nil means os.Stderr.
	Writer io.Writer
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs a text handler and returns a function restoring the
// discard logger.
func Setup(cfg Config) func() {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339))
			}
			return a
		},
	})

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()

	global.Debug("logger.initialized", "debug", cfg.Debug)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		global = discard()
	}
}

// L returns the current logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
