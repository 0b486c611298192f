package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the bot needs from its environment
type Config struct {
	// DiscordToken is the bot token
	DiscordToken string

	// ApplicationID is the bot's application ID, optional
	ApplicationID string

	// GuildID restricts command registration to one guild, optional
	GuildID string

	// RedisAddr is the host:port of the redis server
	RedisAddr string

	// RedisPassword is the redis auth password, optional
	RedisPassword string
}

// Load reads configuration from the environment, with .env as a fallback
// for local development
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment
	// (Docker, CI, systemd)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:  os.Getenv("DISCORD_TOKEN"),
		ApplicationID: os.Getenv("APPLICATION_ID"),
		GuildID:       os.Getenv("GUILD_ID"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DiscordToken) == "" {
		return fmt.Errorf("config: DISCORD_TOKEN is required")
	}

	if strings.TrimSpace(c.RedisAddr) == "" {
		c.RedisAddr = "localhost:6379"
	}

	return nil
}
