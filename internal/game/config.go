package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/sizeguess/internal/fontsize"
	"github.com/samdwyer/sizeguess/internal/telemetry"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible rounds.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"SIZEGUESS_SEED" envDefault:"0"`

	// Unit the rounds are asked in.
	Unit fontsize.Unit `env:"SIZEGUESS_UNIT" envDefault:"px"`

	// Rounds is how many rounds Run emits.
	Rounds int `env:"SIZEGUESS_ROUNDS" envDefault:"1"`

	Telemetry TelemetryConfig
}

// TelemetryConfig holds the Honeycomb exporter settings.
type TelemetryConfig struct {
	Endpoint string `env:"SIZEGUESS_OTEL_ENDPOINT" envDefault:"https://api.honeycomb.io"`
	APIKey   string `env:"HONEYCOMB_SIZEGUESS_API_KEY"`
	Dataset  string `env:"HONEYCOMB_SIZEGUESS_DATASET" envDefault:"sizeguess"`
}

// Options converts the settings for telemetry.Setup.
func (c TelemetryConfig) Options() telemetry.Options {
	return telemetry.Options{
		Endpoint: c.Endpoint,
		APIKey:   c.APIKey,
		Dataset:  c.Dataset,
	}
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Rounds < 1 {
		return Config{}, fmt.Errorf("SIZEGUESS_ROUNDS must be at least 1, got %d", cfg.Rounds)
	}
	return cfg, nil
}
