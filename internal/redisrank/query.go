package redisrank

import (
	"context"
	"time"

	"productranking/internal/ranking"
)

// Rank returns the 1-based rank of productID in period's live key at
// bucket, or (0, false, nil) when the product is absent from the set.
func Rank(ctx context.Context, period ranking.Period, bucket time.Time, productID int64) (int, bool, error) {
	key := ranking.LiveKey(period, bucket)
	zrevrank, found, err := client.ZRevRank(ctx, key, formatMemberID(productID))
	if err != nil || !found {
		return 0, false, err
	}
	return int(zrevrank) + 1, true, nil
}

// TopNResult is one page of a live ranking.
type TopNResult struct {
	Items   []ScoredMember
	HasNext bool
}

// TopN returns entries [page*size, page*size+size) of period's live
// ranking at bucket, ordered by descending score. An out-of-range page
// returns an empty, hasNext=false result.
func TopN(ctx context.Context, period ranking.Period, bucket time.Time, page, size int) (TopNResult, error) {
	key := ranking.LiveKey(period, bucket)
	start := int64(page * size)
	end := start + int64(size) - 1

	members, err := client.ZRevRangeWithScores(ctx, key, start, end)
	if err != nil {
		return TopNResult{}, err
	}

	total, err := client.ZCard(ctx, key)
	if err != nil {
		return TopNResult{}, err
	}

	return TopNResult{
		Items:   members,
		HasNext: total > end+1,
	}, nil
}
