package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the process-wide options read from the environment. CLI
// flags default to these values.
type Settings struct {
	DBPath     string `env:"RETROVAULT_DB" envDefault:"~/.retrovault/scores.db"`
	FPS        int    `env:"RETROVAULT_FPS" envDefault:"60"`
	Seed       int64  `env:"RETROVAULT_SEED" envDefault:"0"`
	Difficulty string `env:"RETROVAULT_DIFFICULTY"`
	LogLevel   string `env:"RETROVAULT_LOG_LEVEL" envDefault:"info"`
	LogFile    string `env:"RETROVAULT_LOG_FILE"`
	SSHAddr    string `env:"RETROVAULT_SSH_ADDR" envDefault:":2222"`
}

// LoadSettings parses Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if _, err := ParsePreset(s.Difficulty); err != nil {
		return Settings{}, err
	}
	if s.FPS <= 0 {
		return Settings{}, fmt.Errorf("config: RETROVAULT_FPS must be positive, got %d", s.FPS)
	}
	return s, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
