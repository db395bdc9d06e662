// Package config loads perkchart settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/cberes/fallout/chart"
)

// Stdout is the Output value that writes to standard output.
const Stdout = "-"

// ErrInvalidSize is returned when the configured image size is not positive.
var ErrInvalidSize = errors.New("config: width and height must be positive")

// Config controls where and how the perk chart is written.
//
// The level range and perk sources are fixed and are not part of it.
type Config struct {
	Output   string `env:"PERKCHART_OUTPUT"    envDefault:"perks.png"`
	Format   string `env:"PERKCHART_FORMAT"`
	Width    int    `env:"PERKCHART_WIDTH"     envDefault:"1000"`
	Height   int    `env:"PERKCHART_HEIGHT"    envDefault:"600"`
	Title    string `env:"PERKCHART_TITLE"`
	LogLevel string `env:"PERKCHART_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that do not depend on the output format.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel (debug, info, warn or error).
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}
	return level, nil
}

// ChartFormat returns Format when set, otherwise the format implied by the
// Output extension. Writing to stdout without a Format means a text table.
func (c Config) ChartFormat() (chart.Format, error) {
	if c.Format != "" {
		return chart.ParseFormat(c.Format)
	}
	if c.Output == Stdout {
		return chart.FormatText, nil
	}
	return chart.FormatFromPath(c.Output)
}
