// Package logging builds the structured logger. JSON to a rotated file when
// one is configured, JSON to stderr otherwise.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iburimskiy/deskfolio/internal/config"
)

// New builds a logger from the config. The caller owns it; nothing here
// touches the process-wide default.
func New(cfg config.LogConfig) *slog.Logger {
	return slog.New(slog.NewJSONHandler(writer(cfg), &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}))
}

func writer(cfg config.LogConfig) io.Writer {
	if cfg.File == "" {
		return os.Stderr
	}

	path := cfg.File
	if len(path) > 0 && path[0] == '~' {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}

	maxSize := cfg.MaxSize
	if maxSize == 0 {
		maxSize = 10 // MB
	}
	maxFiles := cfg.MaxFiles
	if maxFiles == 0 {
		maxFiles = 5
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: maxFiles,
		MaxAge:     30, // days
		Compress:   true,
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
