// Package config models the optional huntboard.yml workspace file. The
// workflow engine itself never reads ambient state; the CLI loads this file
// and passes the values in explicitly.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"huntboard/internal/topology"
)

// Config models huntboard.yml.
type Config struct {
	Workflow struct {
		// AssignmentPolicy decides column ownership when the team is
		// smaller than the column count: nearest-role or round-robin.
		AssignmentPolicy string `yaml:"assignment_policy"`
	} `yaml:"workflow"`
	Journal struct {
		Enabled bool `yaml:"enabled"`
		Tail    int  `yaml:"tail"`
	} `yaml:"journal"`
}

// Path returns the config file path for a workspace.
func Path(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, "huntboard.yml")
}

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config
	cfg.Workflow.AssignmentPolicy = string(topology.PolicyNearestRole)
	cfg.Journal.Enabled = true
	cfg.Journal.Tail = 20
	return &cfg
}

// Validate ensures the config meets required structure.
func (c *Config) Validate() error {
	switch topology.AssignmentPolicy(c.Workflow.AssignmentPolicy) {
	case topology.PolicyNearestRole, topology.PolicyRoundRobin:
	default:
		return fmt.Errorf("workflow.assignment_policy must be %q or %q, got %q",
			topology.PolicyNearestRole, topology.PolicyRoundRobin, c.Workflow.AssignmentPolicy)
	}
	if c.Journal.Tail < 0 {
		return fmt.Errorf("journal.tail must not be negative")
	}
	return nil
}

// Policy returns the configured assignment policy.
func (c *Config) Policy() topology.AssignmentPolicy {
	return topology.AssignmentPolicy(c.Workflow.AssignmentPolicy)
}

// FromYAML parses and validates config from raw YAML bytes. Omitted fields
// keep their defaults.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOptional reads the workspace config, returning the defaults when the
// file does not exist.
func LoadOptional(workspace string) (*Config, error) {
	data, err := os.ReadFile(Path(workspace))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return FromYAML(data)
}
