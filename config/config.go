package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/vladimirvivien/csdview/indicator"
	"github.com/vladimirvivien/csdview/registry"
)

// Config holds the complete application configuration
type Config struct {
	ElementsFile  string  `yaml:"elements_file"  env:"CSDVIEW_ELEMENTS_FILE"`
	PalettePolicy string  `yaml:"palette_policy" env:"CSDVIEW_PALETTE_POLICY"`
	MarkerHeight  float64 `yaml:"marker_height"  env:"CSDVIEW_MARKER_HEIGHT"`
	Columns       int     `yaml:"columns"        env:"CSDVIEW_COLUMNS"`
	ShowLines     bool    `yaml:"show_lines"     env:"CSDVIEW_SHOW_LINES"`
	Demo          bool    `yaml:"demo"           env:"CSDVIEW_DEMO"`
	LogFile       string  `yaml:"log_file"       env:"CSDVIEW_LOG_FILE"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		PalettePolicy: string(indicator.PaletteCycle),
		MarkerHeight:  indicator.DefaultMarkerHeight,
		Columns:       registry.DefaultColumns,
	}
}

// FromEnv overrides fields with the CSDVIEW_* variables that are set.
func (c *Config) FromEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Policy returns the palette policy as the indicator package type.
func (c *Config) Policy() indicator.PalettePolicy {
	return indicator.PalettePolicy(c.PalettePolicy)
}

// Validate checks if the configuration is valid. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	switch c.Policy() {
	case indicator.PaletteReject, indicator.PaletteCycle:
	default:
		errs = append(errs, fmt.Errorf("invalid palette-policy: %s (must be '%s' or '%s')",
			c.PalettePolicy, indicator.PaletteReject, indicator.PaletteCycle))
	}

	if c.MarkerHeight < 0 || c.MarkerHeight > 1 {
		errs = append(errs, fmt.Errorf("marker-height must be within [0, 1], got %v", c.MarkerHeight))
	}

	if c.Columns < 1 {
		errs = append(errs, fmt.Errorf("columns must be >= 1, got %d", c.Columns))
	}

	return utilerrors.NewAggregate(errs)
}
