// Package config holds the gridlens configuration: grid dimensions and
// value bounds for the generator, plus output options for the
// renderer. Values come from an optional YAML file; command-line flags
// override the file, and the file overrides the built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Color modes accepted by OutputConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all gridlens configuration.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Output OutputConfig `yaml:"output"`
}

// GridConfig configures the grid generator.
type GridConfig struct {
	Rows int   `yaml:"rows"`
	Cols int   `yaml:"cols"`
	Min  int   `yaml:"min"`
	Max  int   `yaml:"max"`
	Seed int64 `yaml:"seed"` // 0 means time-derived
}

// OutputConfig configures the renderer.
type OutputConfig struct {
	// Color is auto, always, or never. Auto enables color only when
	// standard output is an interactive terminal.
	Color string `yaml:"color"`
}

// DefaultConfig returns the built-in defaults: a 10x10 grid of values
// in [-100, 100], color decided by terminal interactivity.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Rows: 10,
			Cols: 10,
			Min:  -100,
			Max:  100,
		},
		Output: OutputConfig{
			Color: ColorAuto,
		},
	}
}

// Load reads a YAML config file and layers it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate rejects color modes the renderer does not understand.
// Dimension errors are left to the generator, which owns that check.
func (c *Config) Validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want %s, %s or %s)",
			c.Output.Color, ColorAuto, ColorAlways, ColorNever)
	}
}

// ApplyEnvOverrides lets the environment win over the file but not
// over explicit flags. GRIDLENS_COLOR maps to Output.Color.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("GRIDLENS_COLOR"); v != "" {
		c.Output.Color = v
	}
}
