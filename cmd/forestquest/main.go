// Package main is the entry point for Forest Quest.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/forestquest/internal/game"
	"github.com/samdwyer/forestquest/internal/telemetry"
	"github.com/samdwyer/forestquest/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
			telemetry.Disable()
		} else {
			defer func() {
				// The session context may already be cancelled by Ctrl-C.
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	cfg, err := game.LoadConfig(os.LookupEnv, interactive)
	if err != nil {
		log.Printf("Note: using defaults for invalid settings: %v", err)
	}

	run(ctx, cfg, os.Stdin, os.Stdout)
}

// run plays one session and reports how it ended. Interrupts, closed input,
// errors and panics are all reported on out instead of crashing.
func run(ctx context.Context, cfg game.Config, in io.Reader, out io.Writer) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(out, "\nAn unexpected error occurred: %v\n", r)
			fmt.Fprintln(out, "Please restart the game.")
		}
	}()

	console := ui.NewConsole(in, out, cfg.ConsoleOptions())
	defer console.Close()
	g, err := game.New(cfg, console, nil)
	if err != nil {
		fmt.Fprintf(out, "\nAn error occurred: %v\n", err)
		fmt.Fprintln(out, "Please restart the game.")
		return
	}

	_, err = g.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ui.ErrInterrupted):
		fmt.Fprintln(out, "\n\nSession interrupted.")
	case errors.Is(err, io.EOF):
		fmt.Fprintln(out, "\n\nInput closed. Session ended.")
	default:
		fmt.Fprintf(out, "\nAn error occurred: %v\n", err)
		fmt.Fprintln(out, "Please restart the game.")
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// It reports whether an exporter destination is configured.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_FORESTQUEST_API_KEY")
	if apiKey == "" {
		// Explicit OTEL_* configuration still enables export.
		return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
	}

	dataset := os.Getenv("HONEYCOMB_FORESTQUEST_DATASET")
	if dataset == "" {
		dataset = "forestquest" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
