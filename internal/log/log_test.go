package log

import (
	"bufio"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpick/internal/config"
)

func TestSetupLoggerWritesJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, err := SetupLogger(&config.LoggingConfig{File: file, Level: "debug"})
	require.NoError(t, err)

	logger.Debug("panel opened", "kind", "image")

	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan(), "one log record expected")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
	assert.Equal(t, "panel opened", rec["msg"])
	assert.Equal(t, "image", rec["kind"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestSetupLoggerLevelFallback(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")

	logger, err := SetupLogger(&config.LoggingConfig{File: file, Level: "verbose"})
	require.NoError(t, err)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug), "unparseable levels fall back to info")
}

func TestNullLoggerDiscards(t *testing.T) {
	assert.False(t, NullLogger().Enabled(context.Background(), slog.LevelError))
}
