package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvDefaults(t *testing.T) {
	var cfg Config

	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, time.Hour, cfg.ReminderInterval)
	assert.Equal(t, 5, cfg.DefaultDicePerPlayer)
	assert.Equal(t, 6, cfg.DefaultDieFaces)
	assert.Equal(t, 1, cfg.DefaultWildFace)
	assert.Equal(t, 6, cfg.MaxPlayers)
	assert.False(t, cfg.IsProduction())
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("MAX_PLAYERS", "4")
	t.Setenv("REMINDER_INTERVAL", "15m")
	t.Setenv("ENV", "production")

	var cfg Config
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, 4, cfg.MaxPlayers)
	assert.Equal(t, 15*time.Minute, cfg.ReminderInterval)
	assert.True(t, cfg.IsProduction())
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-an-int")

	var cfg Config
	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GUILD_ID=guild-from-file\n"), 0o600))

	// godotenv.Load sets process variables, register cleanup through t.Setenv
	t.Setenv("GUILD_ID", "")
	require.NoError(t, os.Unsetenv("GUILD_ID"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "guild-from-file", cfg.GuildID)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}
