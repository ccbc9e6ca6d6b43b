package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DatabasePath string `env:"HEALTH_DB_PATH" envDefault:"data/health_tracker.db"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"console"`
	BcryptCost   int    `env:"BCRYPT_COST"`

	MealDB struct {
		BaseURL     string        `env:"MEALDB_BASE_URL" envDefault:"https://www.themealdb.com/api/json/v1/1"`
		Timeout     time.Duration `env:"MEALDB_TIMEOUT" envDefault:"10s"`
		MaxRetries  uint64        `env:"MEALDB_MAX_RETRIES" envDefault:"2"`
		MaxAttempts int           `env:"MEAL_PLAN_MAX_ATTEMPTS" envDefault:"10"`
	}
}

// Load reads an optional .env file from the working directory, then the environment.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.DatabasePath) == "" {
		return errors.New("HEALTH_DB_PATH must not be empty")
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	switch cfg.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", cfg.LogFormat)
	}
	if cfg.MealDB.Timeout <= 0 {
		return errors.New("MEALDB_TIMEOUT must be positive")
	}
	if cfg.MealDB.MaxAttempts <= 0 {
		return errors.New("MEAL_PLAN_MAX_ATTEMPTS must be positive")
	}
	return nil
}
