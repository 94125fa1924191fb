package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process settings shared by the bot and the API server
type Config struct {
	Env string `env:"ENV" envDefault:"development"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// HTTP API
	HTTPPort  int           `env:"HTTP_PORT" envDefault:"8080"`
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// ReminderInterval is how often players who owe a move are nudged, zero disables reminders
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL" envDefault:"1h"`

	// DiceSeed fixes the dice roller seed, zero seeds from the clock
	DiceSeed int64 `env:"DICE_SEED" envDefault:"0"`

	// Game defaults
	DefaultDicePerPlayer int `env:"DEFAULT_DICE_PER_PLAYER" envDefault:"5"`
	DefaultDieFaces      int `env:"DEFAULT_DIE_FACES" envDefault:"6"`
	DefaultWildFace      int `env:"DEFAULT_WILD_FACE" envDefault:"1"`
	MaxPlayers           int `env:"MAX_PLAYERS" envDefault:"6"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads an optional .env file and then parses the environment into a Config
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
		log.Printf("No .env file found, using environment")
	}

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction returns true when running in production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
