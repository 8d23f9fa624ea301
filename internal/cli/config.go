package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the optional echolattice.yaml project file. Flags set
// explicitly on the command line always win over file values.
type Config struct {
	Pipeline  []string `yaml:"pipeline"`
	Depth     *int     `yaml:"depth"`
	Minutes   *int     `yaml:"minutes"`
	Branching *int     `yaml:"branching"`
	Novelty   *float64 `yaml:"novelty"`

	// Thresholds override the policy trigger levels (keys as in
	// pkg/policy.Thresholds, e.g. LOOP_TOTAL_PRUNE). Unknown keys are
	// ignored by the evaluator.
	Thresholds map[string]any `yaml:"thresholds"`
}

// LoadConfig reads the config file at path. A missing file is not an
// error: it yields an empty config, treating it as "no overrides".
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// applyTo fills unset run options from the config file.
func (c Config) applyTo(o RunOptions) RunOptions {
	if c.Depth != nil && o.Depth == defaultDepth {
		o.Depth = *c.Depth
	}
	if c.Minutes != nil && o.Minutes == defaultMinutes {
		o.Minutes = *c.Minutes
	}
	if c.Branching != nil && o.Branching == 0 {
		o.Branching = *c.Branching
	}
	if c.Novelty != nil && !o.NoveltySet {
		o.Novelty = *c.Novelty
		o.NoveltySet = true
	}
	return o
}

// Defaults shared between the flag definitions and config merging.
const (
	defaultDepth   = 3
	defaultMinutes = 30
)
