// Package postgres holds the repositories backing the ranking pipeline's
// relational storage: metric buckets, ranking weights and the materialized
// weekly/monthly rank tables.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pool is the package-level connection pool every repository function in
// this package reads from, mirroring the teacher's database package.
var pool *pgxpool.Pool

// Init opens the connection pool and applies pending migrations. It must be
// called once during startup before any repository function runs.
func Init(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse dsn: %w", err)
	}

	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}

	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	if err := Migrate(ctx, p); err != nil {
		p.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	pool = p
	return p, nil
}

// SetPool injects an already-open pool, for callers that manage the pool's
// lifecycle themselves. Unlike Init, it does not ping or migrate.
func SetPool(p *pgxpool.Pool) {
	pool = p
}

// Close releases the pool. Safe to call on a nil pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
