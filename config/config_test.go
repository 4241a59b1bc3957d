// Package config provides application configuration management.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{
			"SERVER_HOST", "SERVER_PORT", "ENV",
			"DB_DRIVER", "DB_PATH", "DATABASE_URL",
			"REDIS_URL", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW",
		} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}

		cfg := Load()

		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "development", cfg.Server.Environment)
		assert.Equal(t, DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, "ledger.db", cfg.Database.Path)
		assert.Empty(t, cfg.Redis.URL)
		assert.Equal(t, 60, cfg.Redis.RateLimitRequests)
		assert.Equal(t, time.Minute, cfg.Redis.RateLimitWindow)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("DB_DRIVER", DriverPostgres)
		t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/ledger")
		t.Setenv("RATE_LIMIT_REQUESTS", "10")
		t.Setenv("RATE_LIMIT_WINDOW", "30s")

		cfg := Load()

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "postgres://user:pass@db:5432/ledger", cfg.Database.URL)
		assert.Equal(t, 10, cfg.Redis.RateLimitRequests)
		assert.Equal(t, 30*time.Second, cfg.Redis.RateLimitWindow)
	})

	t.Run("malformed numeric values fall back to defaults", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "not-a-port")
		t.Setenv("RATE_LIMIT_WINDOW", "soon")

		cfg := Load()

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, time.Minute, cfg.Redis.RateLimitWindow)
	})
}

func TestLoadWithFile(t *testing.T) {
	t.Run("empty path uses the environment only", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9191")

		cfg, err := LoadWithFile("")

		require.NoError(t, err)
		assert.Equal(t, 9191, cfg.Server.Port)
	})

	t.Run("file values override the environment", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9191")
		t.Setenv("DB_PATH", "env.db")

		path := filepath.Join(t.TempDir(), "config.yaml")
		contents := "server:\n  port: 7070\ndatabase:\n  driver: sqlite\n  path: file.db\n"
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

		cfg, err := LoadWithFile(path)

		require.NoError(t, err)
		assert.Equal(t, 7070, cfg.Server.Port)
		assert.Equal(t, "file.db", cfg.Database.Path)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadWithFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [not a mapping"), 0o600))

		_, err := LoadWithFile(path)
		assert.Error(t, err)
	})
}
