package balance

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable budgets of the optimizer and the seed for
// the randomized strategies.
type Config struct {
	// MaxIterations bounds the optimizer's outer loop.
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`
	// NoImprovementLimit stops the optimizer after this many
	// consecutive non-improving swap attempts.
	NoImprovementLimit int `json:"no_improvement_limit" yaml:"no_improvement_limit"`
	// DoubleSwapInterval schedules paired swaps every n-th iteration.
	DoubleSwapInterval int `json:"double_swap_interval" yaml:"double_swap_interval"`
	// Seed initializes the engine's random source. Zero seeds from the
	// current time.
	Seed int64 `json:"seed" yaml:"seed"`
}

// SetDefaults applies the standard budgets to unset fields.
func (c *Config) SetDefaults() {
	if c.MaxIterations <= 0 {
		c.MaxIterations = 1000
	}
	if c.NoImprovementLimit <= 0 {
		c.NoImprovementLimit = 100
	}
	if c.DoubleSwapInterval <= 0 {
		c.DoubleSwapInterval = 10
	}
}

// LoadConfig loads Config from a JSON or YAML file.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var cfg Config
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	default:
		return Config{}, fmt.Errorf("unsupported config format: %s", ext)
	}
	return cfg, err
}

// DecodeConfig reads from r to decode a Config.
func DecodeConfig(r io.Reader, format string) (Config, error) {
	var cfg Config
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, err
		}
	case "json":
		dec := json.NewDecoder(r)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported format: %s", format)
	}
	return cfg, nil
}
