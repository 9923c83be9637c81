package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, "memory", cfg.StorageType)
	assert.Equal(t, 24, cfg.SessionDurationHours)
	assert.Equal(t, 60, cfg.ChallengeTTLMinutes)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ARENA_ADDR", ":9999")
	t.Setenv("ARENA_STORAGE_TYPE", "redis")
	t.Setenv("ARENA_REDIS_URL", "redis://cache:6379/1")
	t.Setenv("ARENA_JWT_SECRET", "from-env")
	t.Setenv("ARENA_BCRYPT_COST", "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "redis", cfg.StorageType)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoadFileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7070\"\nlog_level: debug\n"), 0o600))

	t.Setenv("ARENA_CONFIG", path)
	t.Setenv("ARENA_ADDR", ":7171")

	cfg, err := Load()
	require.NoError(t, err)

	// env beats file, file beats defaults
	assert.Equal(t, ":7171", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("ARENA_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]string{
		"ARENA_STORAGE_TYPE":           "postgres",
		"ARENA_SESSION_DURATION_HOURS": "0",
		"ARENA_BCRYPT_COST":            "99",
		"ARENA_CHALLENGE_TTL_MINUTES":  "-1",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoadRedisRequiresURL(t *testing.T) {
	t.Setenv("ARENA_STORAGE_TYPE", "redis")
	t.Setenv("ARENA_REDIS_URL", "")

	_, err := Load()
	require.Error(t, err)
}
