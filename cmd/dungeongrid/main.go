// Package main is the entry point for the dungeon grid game.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeongrid/internal/game"
	"github.com/samdwyer/dungeongrid/internal/telemetry"
)

func main() {
	// .env is optional; variables may be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupHoneycombEnv()

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without tracing")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupHoneycombEnv points the OTLP exporter at Honeycomb when an API key is
// present and no endpoint has been configured explicitly.
func setupHoneycombEnv() {
	apiKey := os.Getenv("HONEYCOMB_API_KEY")
	if apiKey == "" || telemetry.Enabled() {
		return
	}
	dataset := os.Getenv("HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "dungeongrid"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
