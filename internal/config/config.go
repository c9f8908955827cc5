package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
	"github.com/shopspring/decimal"
)

// Config carries the engine defaults a deployment may override. Every
// field has a working default so an empty environment still prices.
type Config struct {
	DefaultLaborRate string `env:"DEFAULT_LABOR_HOURLY_RATE" envDefault:"50"`
	DefaultCategory  string `env:"DEFAULT_PRODUCT_CATEGORY" envDefault:"flyer"`
	RunSizes         []int  `env:"QUOTE_RUN_SIZES" envSeparator:"," envDefault:"100,250,500,1000"`
}

// Load parses the environment and validates that numeric settings are
// well-formed decimals.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	rate, err := decimal.NewFromString(cfg.DefaultLaborRate)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_LABOR_HOURLY_RATE %q: %w", cfg.DefaultLaborRate, err)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("DEFAULT_LABOR_HOURLY_RATE must not be negative, got %s", rate)
	}

	for _, size := range cfg.RunSizes {
		if size <= 0 {
			return nil, fmt.Errorf("QUOTE_RUN_SIZES entries must be positive, got %d", size)
		}
	}

	return &cfg, nil
}

// LaborRate returns the validated fallback labor rate.
func (c *Config) LaborRate() decimal.Decimal {
	rate, _ := decimal.NewFromString(c.DefaultLaborRate)
	return rate
}
