package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level configuration for a run.
type Config struct {
	N        int           `yaml:"n"`
	Ks       []int         `yaml:"ks"`
	Sweep    SweepSettings `yaml:"sweep"`
	Simulate SimSettings   `yaml:"simulate"`
	Output   string        `yaml:"output"` // "text" or "json"
}

// SweepSettings bounds the range of n swept by the sweep command.
type SweepSettings struct {
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
	Step int `yaml:"step,omitempty"`
}

type SimSettings struct {
	Trials int   `yaml:"trials"`
	Seed   int64 `yaml:"seed"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.N == 0 {
		c.N = 100
	}
	if len(c.Ks) == 0 {
		c.Ks = []int{1, 3, 5}
	}
	if c.Sweep.Min == 0 {
		c.Sweep.Min = 2
	}
	if c.Sweep.Max == 0 {
		c.Sweep.Max = 300
	}
	if c.Sweep.Step == 0 {
		c.Sweep.Step = 1
	}
	if c.Simulate.Trials == 0 {
		c.Simulate.Trials = 100000
	}
	if c.Simulate.Seed == 0 {
		c.Simulate.Seed = 1
	}
	if c.Output == "" {
		c.Output = "text"
	}
}

func (c *Config) Validate() error {
	if c.N < 2 {
		return fmt.Errorf("n must be at least 2, got %d", c.N)
	}
	if len(c.Ks) == 0 {
		return fmt.Errorf("at least one k is required")
	}
	for _, k := range c.Ks {
		if k < 1 {
			return fmt.Errorf("k must be at least 1, got %d", k)
		}
	}
	if c.Sweep.Min < 2 || c.Sweep.Max < c.Sweep.Min {
		return fmt.Errorf("sweep range [%d, %d] is invalid, need 2 <= min <= max", c.Sweep.Min, c.Sweep.Max)
	}
	if c.Sweep.Step < 1 {
		return fmt.Errorf("sweep step must be positive, got %d", c.Sweep.Step)
	}
	if c.Simulate.Trials < 1 {
		return fmt.Errorf("simulate trials must be positive, got %d", c.Simulate.Trials)
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output %q, use 'text' or 'json'", c.Output)
	}
	return nil
}

// Write saves the configuration as YAML.
func (c *Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
