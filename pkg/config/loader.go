package config

import (
	"fmt"
	"os"

	"github.com/GoSim-25-26J-441/cobb-douglas/internal/production"
)

// LoadConfig loads and parses a configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadConfig(path)
}

// validateConfig performs validation on the configuration
func validateConfig(cfg *Config) error {
	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return fmt.Errorf("invalid log_format: %s (must be json or text)", cfg.LogFormat)
	}

	if cfg.Theme != "dark" && cfg.Theme != "light" {
		return fmt.Errorf("invalid theme: %s (must be dark or light)", cfg.Theme)
	}

	if err := validateParameters(&cfg.Defaults); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := validateDomain(&cfg.Domain); err != nil {
		return fmt.Errorf("domain validation failed: %w", err)
	}

	return nil
}

// validateParameters checks the initial slider values against the slider
// bounds and steps, so the TUI and the eval/export commands start from the
// same numbers.
func validateParameters(p *Parameters) error {
	checks := []struct {
		name  string
		value float64
		r     production.Range
	}{
		{"a", p.A, production.RangeA},
		{"n", p.N, production.RangeN},
		{"alpha", p.Alpha, production.RangeAlpha},
		{"k", p.K, production.RangeK},
	}
	for _, c := range checks {
		if err := c.r.Check(c.value); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	return nil
}

// validateDomain validates the sampled capital range
func validateDomain(d *Domain) error {
	if d.Min <= 0 {
		return fmt.Errorf("min must be positive, got %f", d.Min)
	}
	if d.Max < d.Min {
		return fmt.Errorf("max %f must not be below min %f", d.Max, d.Min)
	}
	if d.Step <= 0 {
		return fmt.Errorf("step must be positive, got %f", d.Step)
	}
	return nil
}
