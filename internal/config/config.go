package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	Env            string        `env:"ENV" envDefault:"development"`
	RandomSource   string        `env:"RANDOM_SOURCE" envDefault:"math"`
	GenerateDelay  time.Duration `env:"GENERATE_DELAY" envDefault:"300ms"`
	CopiedFor      time.Duration `env:"COPIED_FOR" envDefault:"2s"`
	ExportDir      string        `env:"EXPORT_DIR" envDefault:"."`
	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load reads an optional .env file and parses the environment into Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	switch cfg.RandomSource {
	case "math", "crypto":
	default:
		return Config{}, fmt.Errorf("RANDOM_SOURCE must be math or crypto, got %q", cfg.RandomSource)
	}

	if cfg.Env == "production" && cfg.RandomSource == "math" {
		slog.Warn("RANDOM_SOURCE=math produces predictable passwords; set RANDOM_SOURCE=crypto in production")
	}

	return cfg, nil
}
