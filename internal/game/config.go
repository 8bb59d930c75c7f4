package game

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime options, populated from TR_* environment variables.
type Config struct {
	// CharDelay is the per-character typewriter delay.
	CharDelay time.Duration `env:"TR_CHAR_DELAY" envDefault:"50ms"`
	// LinePause is the hold after each narrated line.
	LinePause time.Duration `env:"TR_LINE_PAUSE" envDefault:"1.5s"`
	// Seed for random outcome resolution. A seed of 0 means a
	// time-based seed will be used.
	Seed int64 `env:"TR_SEED" envDefault:"0"`
	// NoColor disables prompt and error styling.
	NoColor bool `env:"TR_NO_COLOR" envDefault:"false"`
	// Debug enables diagnostic logging to stderr.
	Debug bool `env:"TR_DEBUG" envDefault:"false"`
}

// LoadConfig parses configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
