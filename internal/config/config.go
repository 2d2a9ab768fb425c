package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/techsphere/internal/layout"
	"github.com/san-kum/techsphere/internal/orbit"
	"github.com/san-kum/techsphere/internal/scene"
)

const (
	DefaultIcons    = 19
	DefaultRadius   = layout.Radius
	DefaultRange    = orbit.DefaultRange
	DefaultFPS      = 60
	DefaultDuration = 5.0
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Preset       string            `yaml:"preset,omitempty"`
	Icons        int               `yaml:"icons"`
	Radius       float64           `yaml:"radius"`
	ElasticRange float64           `yaml:"elastic_range"`
	FPS          int               `yaml:"fps"`
	Duration     float64           `yaml:"duration"`
	InitialPolar float64           `yaml:"initial_polar"`
	Theme        string            `yaml:"theme,omitempty"`
	Script       []scene.DragEvent `yaml:"script,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Preset:       "custom",
		Icons:        DefaultIcons,
		Radius:       DefaultRadius,
		ElasticRange: DefaultRange,
		FPS:          DefaultFPS,
		Duration:     DefaultDuration,
		InitialPolar: orbit.RestAngle,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := layout.Validate(c.Icons, c.Radius); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if math.IsNaN(c.InitialPolar) || math.IsInf(c.InitialPolar, 0) {
		return fmt.Errorf("%w: initial_polar must be finite, got %g", ErrInvalid, c.InitialPolar)
	}
	if c.ElasticRange < 0 {
		return fmt.Errorf("%w: elastic_range must be non-negative, got %g", ErrInvalid, c.ElasticRange)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalid, c.Duration)
	}
	return nil
}

// SceneConfig returns the frame loop settings.
func (c *Config) SceneConfig() scene.Config {
	return scene.Config{FPS: c.FPS, Duration: c.Duration, Script: c.Script}
}

// Build assembles the controls and scene described by c. An initial polar
// angle outside the elastic bounds starts at the nearest bound.
func (c *Config) Build() (*scene.Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	controls := orbit.NewControls(c.FPS, c.ElasticRange)
	start := controls.State()
	start.Polar = c.InitialPolar
	controls.SetPolar(start.Clamp().Polar)
	return scene.New(layout.Icons(c.Icons), c.Radius, controls)
}
