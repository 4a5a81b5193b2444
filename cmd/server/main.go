// Command server runs the product ranking HTTP API, the Redis-backed live
// ranking store, and the cron-scheduled batch jobs that populate it. It is
// a thin entrypoint over internal/app; `adminctl serve` runs the identical
// wiring for operators who prefer a single cobra-based binary.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"productranking/internal/app"
	"productranking/internal/config"
	"productranking/internal/logging"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
