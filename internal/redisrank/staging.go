package redisrank

import (
	"context"
	"time"

	"productranking/internal/ranking"
)

// Entry is one product's contribution to a period's live ranking, ready to
// be summed into the staging sorted set via ZINCRBY.
type Entry struct {
	ProductID int64
	Score     ranking.Score
}

// Publish writes entries into period/bucket's staging key, then atomically
// renames it over the live key. On an empty entries slice it does nothing:
// no staging key is created and the previous live key, if any, is left
// untouched. This is the publish barrier past which readers ever observe
// the new ranking instead of the old one.
func Publish(ctx context.Context, period ranking.Period, bucket time.Time, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	staging := ranking.StagingKey(period, bucket)
	live := ranking.LiveKey(period, bucket)

	if err := client.Del(ctx, staging); err != nil {
		return err
	}

	for _, e := range entries {
		if err := client.ZIncrBy(ctx, staging, e.Score.Float64(), formatMemberID(e.ProductID)); err != nil {
			return err
		}
	}

	if err := client.Rename(ctx, staging, live); err != nil {
		return err
	}

	return client.Expire(ctx, live, ranking.LiveKeyTTL)
}
