// Package main is the entry point for HexBand.
package main

import (
	"context"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/samdwyer/hexband/internal/game"
	"github.com/samdwyer/hexband/internal/telemetry"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Deferred cleanup, including the
// telemetry flush, finishes before main exits.
func run() int {
	// The terminal belongs to the game once it starts, so startup and exit
	// messages go to stderr and everything else to the log file.
	console := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		console.Debug().Err(err).Msg(".env file not loaded")
	}

	cfg := game.ConfigFromEnv()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	logger, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		console.Error().Err(err).Str("path", cfg.LogFile).Msg("failed to open log file")
		return 1
	}
	defer closeLog()

	cfg.Honeycomb.Apply()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		console.Warn().Err(err).Msg("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				console.Error().Err(err).Msg("telemetry shutdown")
			}
		}()
	}

	g, err := game.New(cfg, logger)
	if err != nil {
		console.Error().Err(err).Msg("failed to initialize game")
		return 1
	}

	if err := g.Run(ctx); err != nil {
		console.Error().Err(err).Msg("game error")
		return 1
	}
	return 0
}

func openLog(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	l := zerolog.New(f).With().Timestamp().Logger()
	return l, func() { _ = f.Close() }, nil
}
