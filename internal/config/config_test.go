package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"huntboard/internal/config"
	"huntboard/internal/topology"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.Policy() != topology.PolicyNearestRole {
		t.Fatalf("default policy = %s", cfg.Policy())
	}
	if !cfg.Journal.Enabled || cfg.Journal.Tail != 20 {
		t.Fatalf("unexpected journal defaults: %+v", cfg.Journal)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestFromYAML(t *testing.T) {
	cfg, err := config.FromYAML([]byte("workflow:\n  assignment_policy: round-robin\njournal:\n  tail: 50\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Policy() != topology.PolicyRoundRobin {
		t.Fatalf("policy = %s", cfg.Policy())
	}
	if cfg.Journal.Tail != 50 || !cfg.Journal.Enabled {
		t.Fatalf("journal = %+v", cfg.Journal)
	}
}

func TestFromYAMLRejectsUnknownPolicy(t *testing.T) {
	if _, err := config.FromYAML([]byte("workflow:\n  assignment_policy: dartboard\n")); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.LoadOptional(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Policy() != topology.PolicyNearestRole {
		t.Fatalf("missing file should yield defaults, got %s", cfg.Policy())
	}
	path := filepath.Join(dir, "huntboard.yml")
	if err := os.WriteFile(path, []byte("workflow:\n  assignment_policy: round-robin\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = config.LoadOptional(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Policy() != topology.PolicyRoundRobin {
		t.Fatalf("policy = %s", cfg.Policy())
	}
}
