// Package config provides configuration loading and access for the arena.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all arena configuration parameters.
type Config struct {
	Platform    PlatformConfig    `yaml:"platform"`
	Population  PopulationConfig  `yaml:"population"`
	Entity      EntityConfig      `yaml:"entity"`
	Growth      GrowthConfig      `yaml:"growth"`
	Consumption ConsumptionConfig `yaml:"consumption"`
	Spatial     SpatialConfig     `yaml:"spatial"`
	Screen      ScreenConfig      `yaml:"screen"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
}

// PlatformConfig holds the bounded platform dimensions in world units.
type PlatformConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PopulationConfig holds initial entity counts.
type PopulationConfig struct {
	Bots int `yaml:"bots"` // autonomous peers of the player
	Food int `yaml:"food"` // food cells, depleted and never replenished
}

// EntityConfig holds entity creation parameters.
type EntityConfig struct {
	InitialMass float64 `yaml:"initial_mass"` // starting mass for player and bots
	FoodMass    float64 `yaml:"food_mass"`    // constant mass of a food cell
	BaseSpeed   float64 `yaml:"base_speed"`   // numerator of the speed law
}

// GrowthConfig holds the smoothed growth parameters.
type GrowthConfig struct {
	Rate float64 `yaml:"rate"` // fraction of the mass gap closed per tick
}

// ConsumptionConfig holds the geometric eating thresholds.
// FoodCoverage gates the blob-vs-food distance rule; BlobCoverage gates the
// blob-vs-blob area-ratio rule. The two rules are distinct on purpose.
type ConsumptionConfig struct {
	FoodCoverage float64 `yaml:"food_coverage"`
	BlobCoverage float64 `yaml:"blob_coverage"`
}

// SpatialConfig holds spatial index parameters.
type SpatialConfig struct {
	GridCellSize float64 `yaml:"grid_cell_size"`
}

// ScreenConfig holds the viewport dimensions the camera maps into.
// The core never opens a window; these only parameterize world-to-screen math.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindowTicks int `yaml:"stats_window_ticks"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The result is validated;
// a bad value fails here instead of being clamped downstream.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every parameter the simulation depends on and returns a
// descriptive error for the first violation found.
func (c *Config) Validate() error {
	if c.Platform.Width <= 0 {
		return fmt.Errorf("config: platform width must be positive, got %g", c.Platform.Width)
	}
	if c.Platform.Height <= 0 {
		return fmt.Errorf("config: platform height must be positive, got %g", c.Platform.Height)
	}
	if c.Population.Bots < 0 {
		return fmt.Errorf("config: bot count must not be negative, got %d", c.Population.Bots)
	}
	if c.Population.Food < 0 {
		return fmt.Errorf("config: food count must not be negative, got %d", c.Population.Food)
	}
	if c.Entity.InitialMass <= 0 {
		return fmt.Errorf("config: initial mass must be positive, got %g", c.Entity.InitialMass)
	}
	if c.Entity.FoodMass <= 0 {
		return fmt.Errorf("config: food mass must be positive, got %g", c.Entity.FoodMass)
	}
	if c.Entity.BaseSpeed <= 0 {
		return fmt.Errorf("config: base speed must be positive, got %g", c.Entity.BaseSpeed)
	}
	if c.Growth.Rate <= 0 || c.Growth.Rate > 1 {
		return fmt.Errorf("config: growth rate must be in (0, 1], got %g", c.Growth.Rate)
	}
	if c.Consumption.FoodCoverage <= 0 || c.Consumption.FoodCoverage > 1 {
		return fmt.Errorf("config: food coverage must be in (0, 1], got %g", c.Consumption.FoodCoverage)
	}
	if c.Consumption.BlobCoverage <= 0 || c.Consumption.BlobCoverage > 1 {
		return fmt.Errorf("config: blob coverage must be in (0, 1], got %g", c.Consumption.BlobCoverage)
	}
	if c.Spatial.GridCellSize <= 0 {
		return fmt.Errorf("config: grid cell size must be positive, got %g", c.Spatial.GridCellSize)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Telemetry.StatsWindowTicks < 1 {
		return fmt.Errorf("config: stats window must be at least 1 tick, got %d", c.Telemetry.StatsWindowTicks)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
