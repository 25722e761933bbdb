package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from NEXUS_* environment variables.
type Config struct {
	DBPath        string        `env:"NEXUS_DB_PATH"`
	ProfileKey    string        `env:"NEXUS_PROFILE_KEY" envDefault:"nexus_profile_v4"`
	LogLevel      string        `env:"NEXUS_LOG_LEVEL" envDefault:"warn"`
	ToastDuration time.Duration `env:"NEXUS_TOAST_DURATION" envDefault:"3s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ToastDuration <= 0 {
		return Config{}, fmt.Errorf("NEXUS_TOAST_DURATION must be positive, got %s", cfg.ToastDuration)
	}
	return cfg, nil
}
