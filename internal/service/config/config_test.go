package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"RUN_ADDRESS", "DATABASE_URI", "REDIS_URL", "LOG_LEVEL", "ALLOWED_ORIGINS",
	"LOCK_TIMEOUT", "USE_REWARD_RATE", "MEMORY_LATENCY", "SHUTDOWN_TIMEOUT",
}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestBuilder_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewBuilder(slog.Default()).FromEnv().fromArgs(nil).GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.RunAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.LockTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, time.Duration(0), cfg.MemoryLatency)
	assert.True(t, decimal.RequireFromString("0.01").Equal(cfg.UseRewardRate))
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, StorageMemory, cfg.Storage())
}

func TestBuilder_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("LOCK_TIMEOUT", "250ms")
	t.Setenv("USE_REWARD_RATE", "0.05")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := NewBuilder(slog.Default()).FromEnv().GetConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.RunAddr)
	assert.Equal(t, 250*time.Millisecond, cfg.LockTimeout)
	assert.True(t, decimal.RequireFromString("0.05").Equal(cfg.UseRewardRate))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, StorageRedis, cfg.Storage())
}

func TestBuilder_flagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("LOCK_TIMEOUT", "250ms")

	cfg, err := NewBuilder(slog.Default()).
		FromEnv().
		fromArgs([]string{"-a", ":7070", "-d", "postgres://u:p@db/points", "-u", "0.02", "-m", "3ms"}).
		GetConfig()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.RunAddr)
	assert.Equal(t, 250*time.Millisecond, cfg.LockTimeout)
	assert.Equal(t, 3*time.Millisecond, cfg.MemoryLatency)
	assert.True(t, decimal.RequireFromString("0.02").Equal(cfg.UseRewardRate))
	assert.Equal(t, StoragePostgres, cfg.Storage())
}

func TestBuilder_FromDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), ".env")
	content := "LOG_LEVEL=debug\nSHUTDOWN_TIMEOUT=3s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SHUTDOWN_TIMEOUT") })

	cfg, err := NewBuilder(slog.Default()).FromDotEnv(path).FromEnv().GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel, "the environment wins over .env")
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestBuilder_FromDotEnv_missingFile(t *testing.T) {
	clearEnv(t)

	_, err := NewBuilder(slog.Default()).
		FromDotEnv(filepath.Join(t.TempDir(), "absent.env")).
		FromEnv().
		GetConfig()
	require.NoError(t, err)
}

func TestBuilder_invalid(t *testing.T) {
	tests := []struct {
		env  map[string]string
		name string
		args []string
	}{
		{name: "bad duration", env: map[string]string{"LOCK_TIMEOUT": "soon"}},
		{name: "bad rate", env: map[string]string{"USE_REWARD_RATE": "one percent"}},
		{name: "negative rate", args: []string{"-u", "-0.01"}},
		{name: "negative lock timeout", args: []string{"-t", "-1s"}},
		{name: "negative latency", args: []string{"-m", "-1ms"}},
		{name: "unknown flag", args: []string{"-z"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := NewBuilder(slog.Default()).FromEnv().fromArgs(tt.args).GetConfig()
			require.Error(t, err)
		})
	}
}
