package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
db_driver = "sqlite"
db_path = "/tmp/todo.db"
session_store = "redis"
log_level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("DB_PATH", "/var/lib/todo.db")
	t.Setenv("GIN_MODE", "release")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, "redis", cfg.SessionStore)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "/var/lib/todo.db", cfg.DBPath)
	require.True(t, cfg.IsProduction())
	require.Equal(t, "8080", cfg.Port)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("db_driver = "), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
