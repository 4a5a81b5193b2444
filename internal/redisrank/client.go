// Package redisrank wraps the Redis sorted-set operations the live
// hourly/daily rankings are built on, matching the teacher's convention of
// exposing typed helper functions over a package-level client rather than
// passing a *redis.Client everywhere.
package redisrank

import (
	"context"
	"time"
)

// ScoredMember is one (productId, score) pair read back from a sorted set.
type ScoredMember struct {
	ProductID int64
	Score     float64
}

// Client is the narrow subset of Redis sorted-set commands the ranking
// pipeline needs. It exists so tests can substitute an in-memory fake
// (internal/testsupport) without a dependency on a Redis test-double
// library.
type Client interface {
	Del(ctx context.Context, keys ...string) error
	ZIncrBy(ctx context.Context, key string, increment float64, member string) error
	Rename(ctx context.Context, oldKey, newKey string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	ZRevRank(ctx context.Context, key, member string) (rank int64, found bool, err error)
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]ScoredMember, error)
	ZCard(ctx context.Context, key string) (int64, error)
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// client is the package-level handle every function in this package reads
// through. internal/catalog keeps its own handle, installed by catalog.Init.
var client Client

// Init installs the live client, typically a *GoRedisClient wrapping a
// *redis.Client built from configuration.
func Init(c Client) {
	client = c
}
