package redisrank

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// GoRedisClient adapts a *redis.Client to the Client interface.
type GoRedisClient struct {
	rdb *redis.Client
}

// NewGoRedisClient wraps an already-configured go-redis client.
func NewGoRedisClient(rdb *redis.Client) *GoRedisClient {
	return &GoRedisClient{rdb: rdb}
}

func (c *GoRedisClient) Del(ctx context.Context, keys ...string) error {
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *GoRedisClient) ZIncrBy(ctx context.Context, key string, increment float64, member string) error {
	return c.rdb.ZIncrBy(ctx, key, increment, member).Err()
}

func (c *GoRedisClient) Rename(ctx context.Context, oldKey, newKey string) error {
	return c.rdb.Rename(ctx, oldKey, newKey).Err()
}

func (c *GoRedisClient) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.rdb.Expire(ctx, key, ttl).Err()
}

func (c *GoRedisClient) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *GoRedisClient) ZRevRank(ctx context.Context, key, member string) (int64, bool, error) {
	rank, err := c.rdb.ZRevRank(ctx, key, member).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return rank, true, nil
}

func (c *GoRedisClient) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]ScoredMember, error) {
	results, err := c.rdb.ZRevRangeWithScores(ctx, key, start, stop).Result()
	if err != nil {
		return nil, err
	}

	out := make([]ScoredMember, 0, len(results))
	for _, z := range results {
		id, err := parseMemberID(z.Member)
		if err != nil {
			return nil, err
		}
		out = append(out, ScoredMember{ProductID: id, Score: z.Score})
	}
	return out, nil
}

func (c *GoRedisClient) ZCard(ctx context.Context, key string) (int64, error) {
	return c.rdb.ZCard(ctx, key).Result()
}

func (c *GoRedisClient) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *GoRedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}
