// Package main is the entry point for dungeongen.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeongen/internal/cli"
	"github.com/samdwyer/dungeongen/internal/telemetry"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

// run returns the exit code once deferred shutdown has finished.
func run() int {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "dungeongen"})

	// .env is optional; variables may be set directly.
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "err", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	if telemetry.Enabled() && os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown, err := telemetry.Setup(ctx, logger)
		if err != nil {
			logger.Warn("telemetry setup failed, continuing without traces", "err", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("telemetry shutdown failed", "err", err)
				}
			}()
		}
	}

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// present and no endpoint was configured explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	dataset := os.Getenv("HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "dungeongen"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
