// Package guess parses guess command flags and runs one game session.
package guess

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/louisbranch/guessing-game/internal/game"
	entrypoint "github.com/louisbranch/guessing-game/internal/platform/cmd"
	"github.com/louisbranch/guessing-game/internal/platform/id"
	"github.com/louisbranch/guessing-game/internal/random"
)

// Config holds guess command configuration.
type Config struct {
	Verbose      bool `env:"VERBOSE" envDefault:"false"`
	RevealSecret bool `env:"REVEAL_SECRET" envDefault:"false"`
	// Interactive is set by the caller when input comes from a terminal.
	// Non-interactive input is echoed to the output.
	Interactive bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose diagnostics on stderr (env GUESSING_GAME_VERBOSE)")
	fs.BoolVar(&cfg.RevealSecret, "reveal", false, "print the secret number when the game starts (env GUESSING_GAME_REVEAL_SECRET)")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run plays one session reading guesses from in and writing the game to out.
// Diagnostics go to errOut when cfg.Verbose is set. The returned error is
// fatal for the process.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	if in == nil {
		return errors.New("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	logger := log.New(io.Discard, "[GUESS] ", log.LstdFlags)
	if cfg.Verbose {
		logger.SetOutput(errOut)
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGuess, func(ctx context.Context) error {
		seed, err := random.NewSeed()
		if err != nil {
			return err
		}
		sessionID, err := id.NewID()
		if err != nil {
			return fmt.Errorf("new session id: %w", err)
		}

		session := game.NewSession(game.RollSecret(seed),
			game.WithSessionID(sessionID),
			game.WithLogger(logger),
			game.WithEcho(!cfg.Interactive),
			game.WithRevealSecret(cfg.RevealSecret),
		)
		logger.Printf("session %s started", sessionID)
		if _, err := session.Play(ctx, in, out); err != nil {
			return err
		}
		return nil
	})
}
