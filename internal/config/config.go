// Package config loads the optional vectorlab.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up when no --config flag is given.
const FileName = "vectorlab.yaml"

const (
	DefaultChartHeight = 10
	DefaultChartWidth  = 60
	DefaultGrowCount   = 100
)

type Config struct {
	Chart Chart  `yaml:"chart"`
	Grow  Grow   `yaml:"grow"`
	Theme string `yaml:"theme"`
}

type Chart struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

type Grow struct {
	Count int `yaml:"count"`
}

func DefaultConfig() *Config {
	return &Config{
		Chart: Chart{
			Height: DefaultChartHeight,
			Width:  DefaultChartWidth,
		},
		Grow:  Grow{Count: DefaultGrowCount},
		Theme: "dark",
	}
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional reads path if it exists and returns the defaults otherwise.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Chart.Height <= 0 || c.Chart.Width <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	if c.Grow.Count < 0 {
		return fmt.Errorf("grow.count must not be negative, got %d", c.Grow.Count)
	}
	switch c.Theme {
	case "dark", "plain":
	default:
		return fmt.Errorf("unknown theme %q (use dark or plain)", c.Theme)
	}
	return nil
}
