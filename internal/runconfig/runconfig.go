// Package runconfig loads the YAML configuration that parameterizes a
// cmd/mstop run: metaheuristic restart bounds, elite pool size, and the
// default output format.
package runconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for an mstop run.
type Config struct {
	Metaheuristic MetaheuristicConfig `yaml:"metaheuristic,omitempty"`
	Output        OutputConfig        `yaml:"output,omitempty"`
}

// MetaheuristicConfig bounds the randomized-restart search.
type MetaheuristicConfig struct {
	MinBeta float64 `yaml:"min_beta,omitempty"`
	MaxBeta float64 `yaml:"max_beta,omitempty"`
	MaxIter int     `yaml:"max_iter,omitempty"`
	NElites int     `yaml:"n_elites,omitempty"`
}

// OutputConfig controls the format cmd/mstop writes to stdout.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // "csv" or "text"
}

// Default returns a Config with the same bounds the original tooling's
// benchmark loop used (original_source/src/main.cc: beta in [0.1, 0.3],
// 1000 restarts, 5 elites).
func Default() Config {
	return Config{
		Metaheuristic: MetaheuristicConfig{
			MinBeta: 0.1,
			MaxBeta: 0.3,
			MaxIter: 1000,
			NElites: 5,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load reads a YAML config file at path, overlaying it onto Default().
// A missing file is not an error: Default() is returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("runconfig: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("runconfig: parsing %s: %w", path, err)
	}

	return cfg, nil
}
