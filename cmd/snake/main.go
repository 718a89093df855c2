// Package main is the entry point for Snake.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/samdwyer/snake/internal/game"
	"github.com/samdwyer/snake/internal/logging"
	"github.com/samdwyer/snake/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig(envOr("SNAKE_CONFIG", "snake.yaml"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sessionID := uuid.NewString()

	logger, closeLog, err := logging.New(envOr("SNAKE_LOG_FILE", "snake.log"), os.Getenv("SNAKE_LOG_LEVEL"))
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()
	logger = logger.With().Str("session_id", sessionID).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx, sessionID)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	g, err := game.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}

	printSummary(g.Summary())
}

// setupOTelEnv configures OTEL environment variables from our .env variables
// and reports whether an exporter endpoint is available.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_SNAKE_API_KEY")
	if apiKey != "" {
		dataset := os.Getenv("HONEYCOMB_SNAKE_DATASET")
		if dataset == "" {
			dataset = "snake" // default dataset name
		}
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
}

// printSummary reports the session once the terminal has been restored.
func printSummary(s game.Summary) {
	if s.Rounds == 0 {
		return
	}
	color.New(color.FgGreen, color.Bold).Println("Thanks for playing Snake!")
	fmt.Printf("Rounds played: %d\n", s.Rounds)
	color.Magenta("Best score:    %d", s.Best)
}

// envOr returns the environment variable or a fallback when unset.
func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
