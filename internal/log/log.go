package log

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"stockpick/internal/config"
)

// SetupLogger opens the configured log file and builds a JSON slog logger
// on it. Level strings slog cannot parse fall back to info.
func SetupLogger(cfg *config.LoggingConfig) (*slog.Logger, error) {
	path, err := expandHome(cfg.File)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: level,
	})), nil
}

// expandHome resolves a leading ~ against the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// NullLogger returns a logger that discards everything.
func NullLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
