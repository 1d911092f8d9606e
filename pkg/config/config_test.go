package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 40\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.N)
	assert.Equal(t, []int{1, 3, 5}, cfg.Ks)
	assert.Equal(t, SweepSettings{Min: 2, Max: 300, Step: 1}, cfg.Sweep)
	assert.Equal(t, 100000, cfg.Simulate.Trials)
	assert.Equal(t, int64(1), cfg.Simulate.Seed)
	assert.Equal(t, "text", cfg.Output)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFull(t *testing.T) {
	data := `
n: 250
ks: [1, 2]
sweep:
  min: 10
  max: 20
  step: 5
simulate:
  trials: 50
  seed: 7
output: json
`
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.N)
	assert.Equal(t, []int{1, 2}, cfg.Ks)
	assert.Equal(t, SweepSettings{Min: 10, Max: 20, Step: 5}, cfg.Sweep)
	assert.Equal(t, SimSettings{Trials: 50, Seed: 7}, cfg.Simulate)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: [oops"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "SmallN", mutate: func(c *Config) { c.N = 1 }},
		{name: "NoKs", mutate: func(c *Config) { c.Ks = nil }},
		{name: "ZeroK", mutate: func(c *Config) { c.Ks = []int{1, 0} }},
		{name: "SweepBackwards", mutate: func(c *Config) { c.Sweep.Min, c.Sweep.Max = 50, 10 }},
		{name: "SweepStep", mutate: func(c *Config) { c.Sweep.Step = -1 }},
		{name: "Trials", mutate: func(c *Config) { c.Simulate.Trials = -3 }},
		{name: "Output", mutate: func(c *Config) { c.Output = "svg" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() accepted %+v", cfg)
			}
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.N = 77
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.Write(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
