// Package config loads the drawing configuration the host supplies to
// the editor: grid spacing, snapping, and the minimum-area warning
// threshold.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the drawing settings.
type Config struct {
	GridSize    float64 `yaml:"grid_size"`
	SnapEnabled bool    `yaml:"snap_enabled"`
	MinArea     float64 `yaml:"min_area,omitempty"`
}

// Default returns the settings used when no file is given: a unit grid
// with snapping on.
func Default() Config {
	return Config{GridSize: 1, SnapEnabled: true}
}

// Load reads a YAML configuration file, falling back to defaults for
// omitted fields.
func Load(filename string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.GridSize < 0 {
		return cfg, fmt.Errorf("grid_size must not be negative, got %g", cfg.GridSize)
	}
	return cfg, nil
}
