// Package config loads the example application's YAML settings.
//
// The simulation itself has no runtime configuration; these settings only
// cover the window, the sprite, and the demo tooling around the view.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// DemoConfig holds the example application's settings.
type DemoConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// Sprite is a PNG path. Empty uses the built-in banana sprite.
	Sprite string `yaml:"sprite"`
	// Density scales the base speed. Zero uses the monitor's device scale
	// factor.
	Density       float64 `yaml:"density"`
	ShowFPS       bool    `yaml:"showFPS"`
	Debug         bool    `yaml:"debug"`
	FadeIn        float64 `yaml:"fadeIn"` // seconds
	ClearColor    Color   `yaml:"clearColor"`
	Script        string  `yaml:"script"`
	ScreenshotDir string  `yaml:"screenshotDir"`
}

// Default returns the settings used when no file is given.
func Default() DemoConfig {
	return DemoConfig{
		Title:         "Floating Bananas",
		Width:         480,
		Height:        800,
		FadeIn:        0.75,
		ClearColor:    Color{R: 0.98, G: 0.96, B: 0.88, A: 1},
		ScreenshotDir: "screenshots",
	}
}

// Load reads a YAML settings file. Fields missing from the file keep their
// Default values.
func Load(path string) (*DemoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML settings over the defaults and validates the result.
func Parse(data []byte) (*DemoConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the settings are usable.
func Validate(cfg *DemoConfig) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Density < 0 {
		return fmt.Errorf("density must be >= 0, got %v", cfg.Density)
	}
	if cfg.FadeIn < 0 {
		return fmt.Errorf("fadeIn must be >= 0, got %v", cfg.FadeIn)
	}
	c := cfg.ClearColor
	for _, ch := range []struct {
		name string
		v    float64
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}, {"a", c.A}} {
		if ch.v < 0 || ch.v > 1 {
			return fmt.Errorf("clearColor.%s must be in [0, 1], got %v", ch.name, ch.v)
		}
	}
	return nil
}
