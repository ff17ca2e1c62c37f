package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// ErrInvalidConfig is returned when a parsed value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the server settings read from PRIMUS_* environment variables.
type Config struct {
	Addr              string        `env:"PRIMUS_ADDR" envDefault:":8080"`
	TickInterval      time.Duration `env:"PRIMUS_TICK_INTERVAL" envDefault:"16ms"`
	ScreenDensity     float64       `env:"PRIMUS_SCREEN_DENSITY" envDefault:"1"`
	PaletteFile       string        `env:"PRIMUS_PALETTE_FILE"`
	PresentationCycle time.Duration `env:"PRIMUS_PRESENTATION_CYCLE" envDefault:"1s"`
	ResetDelay        time.Duration `env:"PRIMUS_RESET_DELAY" envDefault:"2s"`
	LogLevel          string        `env:"PRIMUS_LOG_LEVEL" envDefault:"info"`

	NATS NATSConfig
}

// NATSConfig configures event publishing. An empty URL disables JetStream.
type NATSConfig struct {
	URL           string `env:"PRIMUS_NATS_URL"`
	Stream        string `env:"PRIMUS_NATS_STREAM" envDefault:"PRIMUS_EVENTS"`
	SubjectPrefix string `env:"PRIMUS_NATS_SUBJECT_PREFIX" envDefault:"primus.events"`
}

// Enabled reports whether a NATS URL was configured.
func (n NATSConfig) Enabled() bool {
	return n.URL != ""
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: PRIMUS_ADDR is empty", ErrInvalidConfig)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: PRIMUS_TICK_INTERVAL must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	case c.ScreenDensity <= 0:
		return fmt.Errorf("%w: PRIMUS_SCREEN_DENSITY must be positive, got %g", ErrInvalidConfig, c.ScreenDensity)
	case c.PresentationCycle <= 0:
		return fmt.Errorf("%w: PRIMUS_PRESENTATION_CYCLE must be positive, got %s", ErrInvalidConfig, c.PresentationCycle)
	case c.ResetDelay <= 0:
		return fmt.Errorf("%w: PRIMUS_RESET_DELAY must be positive, got %s", ErrInvalidConfig, c.ResetDelay)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured zerolog level.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: PRIMUS_LOG_LEVEL: %v", ErrInvalidConfig, err)
	}
	return lvl, nil
}
