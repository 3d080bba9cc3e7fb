// Package config provides display settings for showfits.
// Settings are loaded from an optional YAML file; when the file is
// absent the defaults reproduce the stock viewer behavior.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the viewer configuration loaded from YAML
type Config struct {
	// Display parameters
	Display struct {
		// LowPercentile is the percentile mapped to black in the
		// contrast stretch
		LowPercentile float64 `yaml:"lowPercentile"`

		// HighPercentile is the percentile mapped to white in the
		// contrast stretch
		HighPercentile float64 `yaml:"highPercentile"`

		// WindowWidth is the initial viewer window width in pixels
		WindowWidth int `yaml:"windowWidth"`

		// WindowHeight is the initial viewer window height in pixels
		WindowHeight int `yaml:"windowHeight"`
	} `yaml:"display"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Display.LowPercentile = 1
	cfg.Display.HighPercentile = 99
	cfg.Display.WindowWidth = 1200
	cfg.Display.WindowHeight = 800

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
