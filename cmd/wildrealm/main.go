// Package main is the entry point for Wildrealm.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/leonelquinteros/gotext"

	"github.com/samdwyer/wildrealm/internal/config"
	"github.com/samdwyer/wildrealm/internal/game"
	"github.com/samdwyer/wildrealm/internal/random"
	"github.com/samdwyer/wildrealm/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	env, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	mapGen, err := config.LoadOrDefault(env.MapGenFile)
	if err != nil {
		log.Fatalf("Invalid map config: %v", err)
	}

	seed, err := random.SeedOrNew(env.Seed)
	if err != nil {
		log.Fatalf("Failed to pick a seed: %v", err)
	}
	log.Printf("World seed: %d", seed)

	if env.LocaleDir != "" {
		gotext.Configure(env.LocaleDir, env.Locale, "default")
	}

	ctx := context.Background()

	if env.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx, seed)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	g, err := game.New(game.Config{
		Seed:        seed,
		SightRadius: env.SightRadius,
		MapGen:      mapGen,
	})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set.
// Existing OTEL_* settings win.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_WILDREALM_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	dataset := os.Getenv("HONEYCOMB_WILDREALM_DATASET")
	if dataset == "" {
		dataset = "wildrealm"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
