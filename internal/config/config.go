// Package config handles configuration loading for the KML builder.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure. Command line
// flags override any value set here.
type Config struct {
	Name        string   `yaml:"name,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Output      string   `yaml:"output,omitempty"`
	Folders     []string `yaml:"folders,omitempty"`
	MinDistance float64  `yaml:"min_distance,omitempty"` // meters
	Compact     bool     `yaml:"compact,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
