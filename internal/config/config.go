// Package config provides configuration loading for generator runs and
// tileset manifests.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds one generator run: which model to build, the output grid, and
// the per-model options.
type Config struct {
	Model     string `yaml:"model"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Periodic  bool   `yaml:"periodic"`
	Heuristic string `yaml:"heuristic"`
	Seed      uint32 `yaml:"seed"`
	MaxSteps  int    `yaml:"max_steps"`

	Overlapping OverlappingConfig `yaml:"overlapping"`
	Tiled       TiledConfig       `yaml:"tiled"`
}

// OverlappingConfig selects the sample bitmap and extraction options for the
// overlapping model.
type OverlappingConfig struct {
	Sample        string `yaml:"sample"`
	N             int    `yaml:"n"`
	Symmetry      int    `yaml:"symmetry"`
	PeriodicInput bool   `yaml:"periodic_input"`
	Ground        bool   `yaml:"ground"`
}

// TiledConfig selects the tileset manifest for the simple tiled model.
type TiledConfig struct {
	Tileset         string `yaml:"tileset"`
	Subset          string `yaml:"subset"`
	BlackBackground bool   `yaml:"black_background"`
}

// Default returns the embedded default configuration.
func Default() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load reads a YAML config file over the embedded defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects configurations the models would refuse anyway, with
// better messages.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("output size %dx%d must be positive", c.Width, c.Height)
	}
	switch c.Model {
	case "overlapping":
		if c.Overlapping.N < 2 || c.Overlapping.N > 5 {
			return fmt.Errorf("pattern size %d out of range [2,5]", c.Overlapping.N)
		}
		switch c.Overlapping.Symmetry {
		case 1, 2, 8:
		default:
			return fmt.Errorf("symmetry %d must be 1, 2 or 8", c.Overlapping.Symmetry)
		}
	case "tiled":
		if c.Tiled.Tileset == "" {
			return fmt.Errorf("tiled model requires a tileset manifest")
		}
	default:
		return fmt.Errorf("unknown model %q", c.Model)
	}
	return nil
}
