// Package config carries the tool configuration: compiled-in defaults
// plus the optional funlam.yaml file found next to the input or in a
// parent directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the funlam.yaml configuration.
type Config struct {
	// MaxSteps bounds reduction to that many β-contractions.
	// 0 means unbounded. The --max-steps flag overrides it.
	MaxSteps int `yaml:"max_steps,omitempty"`

	// ASCII renders results with \ and -> instead of λ and →.
	ASCII bool `yaml:"ascii,omitempty"`

	// Color controls error coloring: auto, always or never.
	// auto colors only when stderr is a terminal.
	Color string `yaml:"color,omitempty"`
}

// Default returns the configuration used when no funlam.yaml exists.
func Default() *Config {
	return &Config{MaxSteps: DefaultMaxSteps, Color: "auto"}
}

// LoadConfig reads and parses a funlam.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses funlam.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfig searches for funlam.yaml starting from dir and walking up
// to parent directories. Returns the path to the config file and nil
// error if found, or empty string and nil error if not found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, "funlam.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		// Also check funlam.yml (common alternative)
		candidate = filepath.Join(dir, "funlam.yml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	if c.MaxSteps < 0 {
		return fmt.Errorf("%s: max_steps must not be negative, got %d", path, c.MaxSteps)
	}

	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%s: color must be auto, always or never, got %q", path, c.Color)
	}

	return nil
}
