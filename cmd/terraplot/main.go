// Package main is the entry point for terraplot.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/terraplot/internal/app"
	"github.com/samdwyer/terraplot/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_TERRAPLOT_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Generation will run without observability")
		// Continue without telemetry - generation still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := app.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize generator: %v", err)
	}

	if printMode() {
		if err := a.WritePlot(ctx, os.Stdout); err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
		return
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("Viewer error: %v", err)
	}
}

// printMode reports whether to generate once and print to stdout
// instead of opening the interactive viewer.
func printMode() bool {
	switch strings.ToLower(os.Getenv("TERRAPLOT_PRINT")) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_TERRAPLOT_API_KEY")
	dataset := os.Getenv("HONEYCOMB_TERRAPLOT_DATASET")
	if dataset == "" {
		dataset = "terraplot" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
