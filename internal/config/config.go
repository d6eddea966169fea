// Package config implements the core's configuration surface (spec §6):
// a small key/value map with three recognized options, loadable from YAML.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the recognized configuration (spec §6).
type Config struct {
	// SoufflePath is an optional path for the Datalog back-end; the core
	// ignores it (carried through only so downstream tooling that does use
	// a Datalog back-end can share one config file).
	SoufflePath string `yaml:"soufflePath"`

	// DetectorsEnabled lists the detector identifiers to run. An empty list
	// means every registered detector runs.
	DetectorsEnabled []string `yaml:"detectorsEnabled"`

	// IncludeStdlib governs whether standard-library CFGs are analyzed.
	// Default false (spec §6).
	IncludeStdlib bool `yaml:"includeStdlib"`
}

// Default returns the zero-valued config with its documented defaults:
// no souffle path, every detector enabled, standard library excluded.
func Default() Config {
	return Config{IncludeStdlib: false}
}

// Load reads and parses a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Parse decodes YAML config bytes.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DetectorEnabled reports whether id should run: every detector runs when
// DetectorsEnabled is empty, otherwise only those named.
func (c Config) DetectorEnabled(id string) bool {
	if len(c.DetectorsEnabled) == 0 {
		return true
	}
	for _, d := range c.DetectorsEnabled {
		if d == id {
			return true
		}
	}
	return false
}
