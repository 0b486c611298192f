package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_DefaultsRedisAddr(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("APPLICATION_ID", "app-123")
	t.Setenv("GUILD_ID", "guild-456")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("REDIS_PASSWORD", "hunter2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-token", cfg.DiscordToken)
	assert.Equal(t, "app-123", cfg.ApplicationID)
	assert.Equal(t, "guild-456", cfg.GuildID)
	assert.Equal(t, "redis.internal:6379", cfg.RedisAddr)
	assert.Equal(t, "hunter2", cfg.RedisPassword)
}
