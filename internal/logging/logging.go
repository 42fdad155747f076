// Package logging builds the zap logger used by the TUI. The terminal
// owns stdout, so records go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the log destination and verbosity.
type Options struct {
	File  string
	Level string
	Debug bool
}

// New returns a JSON logger that appends to opts.File. Debug overrides
// Level. An empty Level means info.
func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opts.Level != "" {
		parsed, err := zap.ParseAtomicLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level %q: %w", opts.Level, err)
		}
		level = parsed
	}
	if opts.Debug {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	config := zap.NewProductionConfig()
	config.Level = level
	config.OutputPaths = []string{opts.File}
	config.ErrorOutputPaths = []string{opts.File}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
