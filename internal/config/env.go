package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/subosito/gotenv"
)

// Env is the process environment consumed at startup
type Env struct {
	AppID        uint64        `env:"APP_ID,required"`
	ConfigPath   string        `env:"MPRISENCE_CONFIG" envDefault:"config.json"`
	PollInterval time.Duration `env:"MPRISENCE_POLL_INTERVAL" envDefault:"2s"`
	MetricsAddr  string        `env:"MPRISENCE_METRICS_ADDR"`
	LargeImage   string        `env:"MPRISENCE_LARGE_IMAGE" envDefault:"arch_icon"`
	LargeText    string        `env:"MPRISENCE_LARGE_TEXT" envDefault:"#ARCHONTOP"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses and validates Env
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	if e.PollInterval <= 0 {
		return Env{}, fmt.Errorf("MPRISENCE_POLL_INTERVAL must be positive, got %s", e.PollInterval)
	}
	return e, nil
}

// LoadEnvFile loads a .env file into the process environment.
// Variables already set win, and a missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := gotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
