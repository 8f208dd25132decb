// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/wordle/internal/wordle"
)

// Config holds every setting the game reads at startup.
type Config struct {
	WordLength    int    `env:"WORDLE_WORD_LENGTH" envDefault:"6"`
	AttemptsLimit int    `env:"WORDLE_ATTEMPTS_LIMIT" envDefault:"6"`
	WordsFile     string `env:"WORDLE_WORDS_FILE"` // empty means the embedded list
	Seed          int64  `env:"WORDLE_SEED"`       // 0 means a time-based seed

	LogFile  string `env:"WORDLE_LOG_FILE" envDefault:"wordle.log"`
	LogLevel string `env:"WORDLE_LOG_LEVEL" envDefault:"info"`

	Telemetry        bool   `env:"WORDLE_TELEMETRY" envDefault:"false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_WORDLE_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_WORDLE_DATASET" envDefault:"wordle"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFrom parses environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.WordLength <= 0 || c.AttemptsLimit <= 0 {
		return fmt.Errorf("%w: word length %d, attempts limit %d",
			wordle.ErrInvalidConfig, c.WordLength, c.AttemptsLimit)
	}
	return nil
}

// Game returns the board dimensions for the game state.
func (c Config) Game() wordle.Config {
	return wordle.Config{
		WordLength:    c.WordLength,
		AttemptsLimit: c.AttemptsLimit,
	}
}
