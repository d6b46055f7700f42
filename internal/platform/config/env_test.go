package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Verbose bool   `env:"TEST_VERBOSE" envDefault:"false"`
	Name    string `env:"TEST_NAME" envDefault:"guess"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Verbose {
		t.Fatal("expected verbose default false")
	}
	if cfg.Name != "guess" {
		t.Fatalf("expected default name guess, got %q", cfg.Name)
	}
}

func TestParseEnvReadsPrefixedVariables(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("GUESSING_GAME_TEST_VERBOSE", "true")
	t.Setenv("TEST_NAME", "unprefixed")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if !cfg.Verbose {
		t.Fatal("expected prefixed variable to set verbose")
	}
	if cfg.Name != "guess" {
		t.Fatalf("expected unprefixed variable to be ignored, got %q", cfg.Name)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("GUESSING_GAME_TEST_VERBOSE", "not-a-bool")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvWithLookupUsesMap(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("GUESSING_GAME_TEST_NAME", "from-process")

	err := ParseEnvWithLookup(&cfg, map[string]string{"GUESSING_GAME_TEST_NAME": "from-map"})
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Name != "from-map" {
		t.Fatalf("expected map value, got %q", cfg.Name)
	}
}
