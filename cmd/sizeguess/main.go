// Package main is the entry point for sizeguess.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/sizeguess/internal/game"
	"github.com/samdwyer/sizeguess/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Options())
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Rounds will be generated without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	log.Printf("Generating %d %s round(s) with seed %d", cfg.Rounds, cfg.Unit, g.Seed())

	if err := g.Run(ctx, os.Stdout); err != nil {
		log.Printf("Game error: %v", err)
		stop()
		os.Exit(1)
	}
}
