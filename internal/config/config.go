// Package config loads gafeval settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/gafeval/internal/model"
)

// DefaultThreshold is the overlap ratio an alignment must exceed by default.
const DefaultThreshold = 0.5

// Config holds the settings shared by all commands.
type Config struct {
	Threshold float64 `yaml:"threshold"`
	Tool      m.Tool  `yaml:"tool"`
	Reports   m.Path  `yaml:"reports"` // directory for run reports, empty disables them
	Metrics   m.Path  `yaml:"metrics"` // Prometheus textfile, empty disables it
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Threshold: DefaultThreshold,
		Tool:      m.ToolVGAligner,
		Reports:   ".gafeval-reports",
	}
}

// Load reads path on top of the defaults. An empty path yields the defaults.
func Load(path m.Path) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the values can drive a run.
func (c Config) Validate() error {
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) {
		return errors.New("threshold must be a finite number")
	}

	if c.Tool == "" {
		return errors.New("tool must be set")
	}

	for _, tool := range m.Tools {
		if c.Tool == tool {
			return nil
		}
	}

	return fmt.Errorf("unsupported tool %q", c.Tool)
}
