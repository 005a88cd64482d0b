package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, StoreMySQL, cfg.StoreDriver)
	require.Contains(t, cfg.DSN(), "clientFoundRows=true")
	require.Equal(t, 30*time.Second, cfg.AppRequestTimeout)
	require.True(t, cfg.AutoMigrate)
	require.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_DRIVER", " Postgres ")
	t.Setenv("PG_DSN", "postgres://x@db/shop")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.True(t, cfg.IsProduction())
	require.Equal(t, ":9090", cfg.Addr())
	require.Equal(t, StorePostgres, cfg.StoreDriver)
	require.Equal(t, "postgres://x@db/shop", cfg.DSN())
	require.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
	require.Equal(t, "json", cfg.LogFormat)
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("STORE_DRIVER=memory\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("LOG_LEVEL", "warn")
	t.Cleanup(func() { os.Unsetenv("STORE_DRIVER") })

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, StoreMemory, cfg.StoreDriver)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorContains(t, err, "STORE_DRIVER")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("APP_READ_TIMEOUT", "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
