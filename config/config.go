// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/rossum/components"
	"github.com/pthm-cable/rossum/fauna"
	"github.com/pthm-cable/rossum/island"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Fauna      FaunaConfig      `yaml:"fauna"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Migration  MigrationConfig  `yaml:"migration"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// SimulationConfig holds run defaults.
type SimulationConfig struct {
	Seed  uint64 `yaml:"seed"`  // RNG seed (0 = time-based in the CLI)
	Years int    `yaml:"years"` // years to simulate per run
}

// FaunaConfig holds the per-species parameter tables.
type FaunaConfig struct {
	Herbivore fauna.Params `yaml:"herbivore"`
	Carnivore fauna.Params `yaml:"carnivore"`
}

// TerrainConfig holds the yearly fodder caps for growing terrain.
type TerrainConfig struct {
	LowlandFodder  float64 `yaml:"lowland_fodder"`
	HighlandFodder float64 `yaml:"highland_fodder"`
}

// MigrationConfig holds migration tuning.
type MigrationConfig struct {
	// Lambda is the propensity decay constant: destination weight is
	// exp(lambda * food per occupant). Keep it small; the exponent sees
	// raw fodder amounts.
	Lambda float64 `yaml:"lambda"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	OutputDir  string `yaml:"output_dir"`  // empty = CSV output disabled
	CellCounts bool   `yaml:"cell_counts"` // also write per-cell counts
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
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

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
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
		// Unmarshal into the same struct - only overwrites fields
		// present in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every parameter domain.
func (c *Config) Validate() error {
	if c.Simulation.Years < 0 {
		return fmt.Errorf("%w: years must be >= 0, got %d", fauna.ErrInvalidParameter, c.Simulation.Years)
	}
	if err := c.Fauna.Herbivore.Validate(components.KindHerbivore); err != nil {
		return err
	}
	if err := c.Fauna.Carnivore.Validate(components.KindCarnivore); err != nil {
		return err
	}
	if c.Terrain.LowlandFodder < 0 || c.Terrain.HighlandFodder < 0 {
		return fmt.Errorf("%w: fodder caps must be >= 0", island.ErrInvalidLandscape)
	}
	if c.Migration.Lambda < 0 {
		return fmt.Errorf("%w: migration lambda must be >= 0, got %v", fauna.ErrInvalidParameter, c.Migration.Lambda)
	}
	return nil
}

// ParamSet returns the configured fauna parameters as a species-indexed set.
func (c *Config) ParamSet() fauna.Set {
	return fauna.Set{
		components.KindHerbivore: c.Fauna.Herbivore,
		components.KindCarnivore: c.Fauna.Carnivore,
	}
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
