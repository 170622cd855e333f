package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds CLI configuration, sourced from the environment and
// overridable by flags.
type Config struct {
	StorageType string `env:"CLUBSTORE_STORAGE" envDefault:"memory"`
	RedisURL    string `env:"CLUBSTORE_REDIS_URL" envDefault:"redis://localhost:6379"`
	Output      string `env:"CLUBSTORE_OUTPUT" envDefault:"text"`
}

// LoadConfig parses configuration from environment variables
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
