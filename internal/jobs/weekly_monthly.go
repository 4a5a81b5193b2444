package jobs

import (
	"context"
	"sort"
	"time"

	"productranking/internal/ranking"
	"productranking/internal/store/postgres"
)

var (
	saveWeeklyRank  = postgres.SaveWeeklyRank
	saveMonthlyRank = postgres.SaveMonthlyRank
)

const (
	weeklyWindowDays  = 7
	monthlyWindowDays = 30
	topNRanked        = 100
)

// RunWeeklyRanking computes the weekly materialized ranking for baseDate
// from the last 7 days of DailyMetric, deleting and replacing
// mv_product_rank_weekly for that baseDate.
func RunWeeklyRanking(ctx context.Context, baseDate time.Time) Execution {
	return run(ctx, WeeklyRanking, baseDate, func(ctx context.Context) (int, int, error) {
		return periodRankStep(ctx, baseDate, weeklyWindowDays, saveWeeklyRank)
	})
}

// RunMonthlyRanking is RunWeeklyRanking over a 30-day window.
func RunMonthlyRanking(ctx context.Context, baseDate time.Time) Execution {
	return run(ctx, MonthlyRanking, baseDate, func(ctx context.Context) (int, int, error) {
		return periodRankStep(ctx, baseDate, monthlyWindowDays, saveMonthlyRank)
	})
}

type saveRankFunc func(ctx context.Context, baseDate time.Time, rows []postgres.RankRow) error

func periodRankStep(ctx context.Context, baseDate time.Time, windowDays int, save saveRankFunc) (int, int, error) {
	weight, err := currentWeight(ctx)
	if err != nil {
		return 0, 0, err
	}

	day := startOfDayKST(baseDate)
	buckets := make([][]ranking.MetricRow, windowDays)
	readCount := 0

	for i := windowDays - 1; i >= 0; i-- {
		var rows []ranking.MetricRow
		if err := streamDailyMetrics(ctx, day, func(row ranking.MetricRow) error {
			rows = append(rows, row)
			readCount++
			return nil
		}); err != nil {
			return 0, 0, err
		}
		buckets[i] = rows
		day = ranking.Daily.SubtractOne(day)
	}

	composed := ranking.ComposeNBucket(buckets, weight)
	rows := topRanked(composed)

	if len(rows) == 0 {
		return readCount, 0, nil
	}

	if err := save(ctx, startOfDayKST(baseDate), rows); err != nil {
		return 0, 0, err
	}
	return readCount, len(rows), nil
}

func topRanked(scores map[int64]ranking.Score) []postgres.RankRow {
	productIDs := make([]int64, 0, len(scores))
	for id := range scores {
		productIDs = append(productIDs, id)
	}

	sort.Slice(productIDs, func(i, j int) bool {
		a, b := productIDs[i], productIDs[j]
		cmp := scores[a].Decimal().Cmp(scores[b].Decimal())
		if cmp != 0 {
			return cmp > 0
		}
		return a < b
	})

	if len(productIDs) > topNRanked {
		productIDs = productIDs[:topNRanked]
	}

	rows := make([]postgres.RankRow, len(productIDs))
	for i, id := range productIDs {
		rows[i] = postgres.RankRow{Rank: i + 1, ProductID: id, Score: scores[id].Decimal()}
	}
	return rows
}
