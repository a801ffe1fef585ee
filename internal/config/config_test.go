package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults without file", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "orders.csv", cfg.Feed.Path)
		assert.Equal(t, 1, cfg.Feed.MaxAttempts)
		assert.Equal(t, time.Duration(0), cfg.Feed.Timeout)
		assert.Equal(t, "info", cfg.Logger.Level)
	})

	t.Run("File values", func(t *testing.T) {
		dir := t.TempDir()
		yml := `
server:
  port: 9090
logger:
  level: debug
  format: json
feed:
  base_url: http://example.com/app/
  path: data/orders.csv
  timeout: 5s
  max_attempts: 3
orders:
  file: /tmp/orders.csv
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644))

		cfg, err := LoadConfig(dir)

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "json", cfg.Logger.Format)
		assert.Equal(t, "http://example.com/app/", cfg.Feed.BaseURL)
		assert.Equal(t, "data/orders.csv", cfg.Feed.Path)
		assert.Equal(t, 5*time.Second, cfg.Feed.Timeout)
		assert.Equal(t, 3, cfg.Feed.MaxAttempts)
		assert.Equal(t, "/tmp/orders.csv", cfg.Orders.File)
	})

	t.Run("Environment override", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "7070")

		cfg, err := LoadConfig(t.TempDir())

		require.NoError(t, err)
		assert.Equal(t, 7070, cfg.Server.Port)
	})

	t.Run("Invalid level", func(t *testing.T) {
		t.Setenv("LOGGER_LEVEL", "loud")

		_, err := LoadConfig(t.TempDir())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})
}
