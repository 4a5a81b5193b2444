package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"productranking/internal/app"
	"productranking/internal/config"
	"productranking/internal/logging"
)

// newServeCmd runs the same wiring as cmd/server/main.go, letting an
// operator launch the full service (HTTP API, cron scheduler, Redis/DB
// connections) from the adminctl binary instead of a separate one.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the product ranking HTTP API and batch job scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logging.Init(cfg)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx, cfg)
		},
	}
}
