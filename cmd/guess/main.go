// Package main runs the number guessing game on the terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	guesscmd "github.com/louisbranch/guessing-game/internal/cmd/guess"
	"golang.org/x/term"
)

func main() {
	cfg, err := guesscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	cfg.Interactive = term.IsTerminal(int(os.Stdin.Fd()))
	log.SetPrefix("[GUESS] ")

	// SIGINT and SIGTERM keep their default action: the stdin read never
	// observes a context, so only process termination can interrupt it.
	if err := guesscmd.Run(context.Background(), cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("guess: %v", err)
	}
}
