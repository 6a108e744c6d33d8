/*
File    : go-mix-core/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads an optional .gomixrc.yaml carrying REPL defaults
// (SPEC_FULL.md §2's "Configuration" ambient-stack component), merged
// under whatever flags cmd/gomix was actually invoked with.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the shape of a .gomixrc.yaml file. Zero values mean "not set":
// an explicit false or "" in the file cannot be told apart from an absent
// key or an absent file.
type Config struct {
	Prompt      string `yaml:"prompt"`
	Debug       bool   `yaml:"debug"`
	ForceOnDump bool   `yaml:"force_on_dump"`
}

const fileName = ".gomixrc.yaml"

// Load looks for .gomixrc.yaml first next to startDir (typically the
// entry file's directory, or the current working directory for the
// REPL), then in the user's home directory, returning the first one
// found. A missing file is not an error — Load returns a zero Config.
func Load(startDir string) (Config, error) {
	candidates := []string{filepath.Join(startDir, fileName)}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, fileName))
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, err
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	return Config{}, nil
}

// Merge overlays override's non-zero fields onto c, the way CLI flags
// (override) take precedence over a loaded .gomixrc.yaml (c).
func (c Config) Merge(override Config) Config {
	merged := c
	if override.Prompt != "" {
		merged.Prompt = override.Prompt
	}
	if override.Debug {
		merged.Debug = true
	}
	if override.ForceOnDump {
		merged.ForceOnDump = true
	}
	return merged
}
