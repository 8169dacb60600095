package config_test

import (
	"log/slog"
	"os"
	"testing"
	"time"
	"training-reels/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClient_Defaults(t *testing.T) {
	// Arrange
	t.Chdir(t.TempDir())
	t.Setenv("API_BASE_URL", "http://api.local")

	// Act
	cfg, err := config.LoadClient()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://api.local", cfg.API.BaseURL)
	assert.Equal(t, int64(5<<20), cfg.Upload.ChunkSize)
	assert.Equal(t, time.Second, cfg.Poll.InitialDelay)
	assert.Equal(t, 10*time.Second, cfg.Poll.MaxDelay)
	assert.Equal(t, time.Second, cfg.Poll.MaxJitter)
	assert.Equal(t, 1.5, cfg.Poll.Factor)
	assert.Equal(t, 30, cfg.Poll.MaxAttempts)
}

func TestLoadClient_MissingBaseURL(t *testing.T) {
	// Arrange
	t.Chdir(t.TempDir())
	t.Setenv("API_BASE_URL", "unused")
	require.NoError(t, os.Unsetenv("API_BASE_URL"))

	// Act
	_, err := config.LoadClient()

	// Assert
	assert.Error(t, err)
}

func TestLoad_RequiresDaemonSections(t *testing.T) {
	// Arrange
	t.Chdir(t.TempDir())
	t.Setenv("API_BASE_URL", "http://api.local")
	t.Setenv("MINIO_ENDPOINT", "unused")
	require.NoError(t, os.Unsetenv("MINIO_ENDPOINT"))

	// Act
	_, err := config.Load()

	// Assert
	assert.Error(t, err)
}

func TestLogConfig_SlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, config.LogConfig{Level: in}.SlogLevel(), in)
	}
}
