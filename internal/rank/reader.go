// Package rank implements the read path shared by the rankings query API
// and the product detail view: resolving a single product's rank, or a
// page of the top-N ranked products, for any of the four periods.
package rank

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"productranking/internal/ranking"
	"productranking/internal/redisrank"
	"productranking/internal/store/postgres"
)

// Item is one entry of a ranking result: a product's position, id and
// score.
type Item struct {
	Rank      int             `json:"rank"`
	ProductID int64           `json:"productId"`
	Score     decimal.Decimal `json:"score"`
}

// Page is one page of ranking results.
type Page struct {
	Items   []Item
	HasNext bool
}

func materializedTable(period ranking.Period) string {
	if period == ranking.Weekly {
		return "mv_product_rank_weekly"
	}
	return "mv_product_rank_monthly"
}

// FindRank resolves productID's current rank for period. HOURLY/DAILY are
// served from the Redis live key at "now"; WEEKLY/MONTHLY from the
// materialized table keyed by today's KST date. Returns (0, false, nil)
// when the product has no rank.
func FindRank(ctx context.Context, productID int64, period ranking.Period) (int, bool, error) {
	if period.IsLiveRanked() {
		return redisrank.Rank(ctx, period, time.Now(), productID)
	}

	baseDate := todayKST()
	return postgres.FindRankByProductID(ctx, materializedTable(period), baseDate, productID)
}

// FindTopN returns page `page` (0-based) of size `size` of period's
// ranking, most-recent bucket. Out-of-range pages return an empty,
// hasNext=false page.
func FindTopN(ctx context.Context, period ranking.Period, page, size int) (Page, error) {
	if period.IsLiveRanked() {
		result, err := redisrank.TopN(ctx, period, time.Now(), page, size)
		if err != nil {
			return Page{}, err
		}
		items := make([]Item, 0, len(result.Items))
		for i, m := range result.Items {
			items = append(items, Item{
				Rank:      page*size + i + 1,
				ProductID: m.ProductID,
				Score:     decimal.NewFromFloat(m.Score).Round(2),
			})
		}
		return Page{Items: items, HasNext: result.HasNext}, nil
	}

	baseDate := todayKST()
	rows, err := postgres.FindWeeklyRank(ctx, baseDate, page*size, size+1)
	if period == ranking.Monthly {
		rows, err = postgres.FindMonthlyRank(ctx, baseDate, page*size, size+1)
	}
	if err != nil {
		return Page{}, err
	}

	hasNext := len(rows) > size
	if hasNext {
		rows = rows[:size]
	}

	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, Item{Rank: r.Rank, ProductID: r.ProductID, Score: r.Score})
	}
	return Page{Items: items, HasNext: hasNext}, nil
}

func todayKST() time.Time {
	now := time.Now().In(ranking.KST)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
