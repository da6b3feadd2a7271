package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/taskmanager?sslmode=disable")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.ServerPort)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "file://internal/database/migrations", cfg.MigrationsPath)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/taskmanager?sslmode=disable")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.ServerPort)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_RequiresDatabaseURL(t *testing.T) {
	// t.Setenv регистрирует откат, сам ключ убираем
	t.Setenv("DATABASE_URL", "x")
	require.NoError(t, os.Unsetenv("DATABASE_URL"))

	_, err := LoadConfig()
	require.Error(t, err)
}
