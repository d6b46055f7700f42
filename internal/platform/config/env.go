// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every variable the game reads, so struct tags only
// carry the suffix (e.g. `env:"VERBOSE"` reads GUESSING_GAME_VERBOSE).
const EnvPrefix = "GUESSING_GAME_"

// ParseEnv loads configuration from GUESSING_GAME_* environment variables.
func ParseEnv(target any) error {
	return ParseEnvWithLookup(target, nil)
}

// ParseEnvWithLookup is ParseEnv with an explicit environment map. A nil map
// reads the process environment.
func ParseEnvWithLookup(target any, environment map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
