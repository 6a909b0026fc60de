package main

import (
	"os"

	"gopkg.in/yaml.v2"
)

// fileConfig mirrors the flags tinmesh accepts on the command line, so a
// batch job can pin them in a YAML file instead of repeating flags. This
// is the same role go-detour's navmesh build config plays for that CLI:
// a config file layered underneath explicit flag overrides.
type fileConfig struct {
	Grid      string  `yaml:"grid"`
	MaxError  float64 `yaml:"max_error"`
	Out       string  `yaml:"out"`
	Histogram int     `yaml:"histogram_buckets"`
}

// loadConfig reads a fileConfig from a YAML file at path.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyDefaults overwrites each field of cfg with the matching flag value
// when that value is non-zero, so flags win over the file when both are
// set; a zero flag value leaves the file's value in place.
func (cfg fileConfig) applyDefaults(grid string, maxError float64, out string, histogram int) fileConfig {
	if grid != "" {
		cfg.Grid = grid
	}
	if maxError != 0 {
		cfg.MaxError = maxError
	}
	if out != "" {
		cfg.Out = out
	}
	if histogram != 0 {
		cfg.Histogram = histogram
	}
	return cfg
}
