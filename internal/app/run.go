// Package app holds the production wiring shared by cmd/server's bare
// entrypoint and cmd/adminctl's "serve" subcommand: connect Postgres and
// Redis, install the catalog cache and event emitter, start the cron
// scheduler, and serve the HTTP API until the process is signaled to stop.
package app

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"productranking/internal/catalog"
	"productranking/internal/config"
	"productranking/internal/events"
	"productranking/internal/httpapi"
	"productranking/internal/jobs"
	"productranking/internal/redisrank"
	"productranking/internal/store/postgres"
)

// Run connects every dependency, starts the scheduler and HTTP server, and
// blocks until ctx is canceled, then shuts down gracefully within
// cfg.GracefulTimeout.
func Run(ctx context.Context, cfg *config.Config) error {
	if _, err := postgres.Init(ctx, cfg.DatabaseURL); err != nil {
		return err
	}
	defer postgres.Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return err
	}
	redisClient := redisrank.NewGoRedisClient(rdb)
	redisrank.Init(redisClient)
	catalog.Init(redisClient)
	events.Init(events.LoggingEmitter{Logger: log.Logger})

	scheduler := jobs.NewScheduler()
	scheduler.Start()
	defer scheduler.Stop()

	router := httpapi.NewRouter()
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
			return
		}
		serveErr <- nil
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
