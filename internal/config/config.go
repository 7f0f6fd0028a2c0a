// Package config loads editor settings from KURS_* environment variables.
package config

import (
	"fmt"
	"image/color"

	"github.com/kelseyhightower/envconfig"

	"github.com/irfansharif/kurs/internal/palette"
)

type Config struct {
	Width          int     `envconfig:"WIDTH" default:"1400"`
	Height         int     `envconfig:"HEIGHT" default:"600"`
	Outline        string  `envconfig:"OUTLINE" default:"#000000"`
	Fill           string  `envconfig:"FILL" default:"#0003AE"`
	StrokeWidth    int     `envconfig:"STROKE_WIDTH" default:"1"`
	BezierSegments int     `envconfig:"BEZIER_SEGMENTS" default:"100"`
	HitTolerance   float64 `envconfig:"HIT_TOLERANCE" default:"5"`
	Swatches       int     `envconfig:"SWATCHES" default:"11"`
	Seed           int64   `envconfig:"SEED" default:"70"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("kurs", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the editor cannot run with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Width, c.Height)
	}
	if c.StrokeWidth < 1 {
		return fmt.Errorf("stroke width %d must be at least 1", c.StrokeWidth)
	}
	if c.BezierSegments < 1 {
		return fmt.Errorf("bezier segments %d must be at least 1", c.BezierSegments)
	}
	if c.HitTolerance <= 0 {
		return fmt.Errorf("hit tolerance %v must be positive", c.HitTolerance)
	}
	if c.Swatches < 1 {
		return fmt.Errorf("swatch count %d must be at least 1", c.Swatches)
	}
	if _, err := palette.ParseHex(c.Outline); err != nil {
		return fmt.Errorf("outline: %w", err)
	}
	if _, err := palette.ParseHex(c.Fill); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	return nil
}

// Colors returns the parsed default outline and fill colours. Call only on
// a validated config.
func (c *Config) Colors() (outline, fill color.RGBA) {
	outline, _ = palette.ParseHex(c.Outline)
	fill, _ = palette.ParseHex(c.Fill)
	return outline, fill
}
