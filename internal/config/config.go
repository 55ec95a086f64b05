package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries the runtime knobs for the battle binaries. A zero seed
// means "don't pin the RNG"; callers fall back to a time-based seed.
type Config struct {
	Seed     int64  `env:"CRITTER_SEED" envDefault:"0"`
	LogLevel string `env:"CRITTER_LOG_LEVEL" envDefault:"info"`
	MaxTurns int    `env:"CRITTER_MAX_TURNS" envDefault:"200"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.MaxTurns < 1 {
		return nil, fmt.Errorf("CRITTER_MAX_TURNS must be positive, got %d", cfg.MaxTurns)
	}
	return cfg, nil
}

// SlogLevel maps the configured level name onto slog's levels, defaulting to
// info for anything unrecognized.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
