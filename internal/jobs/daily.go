package jobs

import (
	"context"
	"time"

	"productranking/internal/ranking"
	"productranking/internal/redisrank"
	"productranking/internal/store/postgres"
)

var streamDailyMetrics = postgres.StreamDailyMetrics

// RunDailyRanking computes the daily live ranking from today's and
// yesterday's DailyMetric totals, the same single-row decay contribution
// the hourly job uses with today as "current".
func RunDailyRanking(ctx context.Context, baseDate time.Time) Execution {
	return run(ctx, DailyRanking, baseDate, func(ctx context.Context) (int, int, error) {
		return dailyStep(ctx, baseDate)
	})
}

func dailyStep(ctx context.Context, baseDate time.Time) (int, int, error) {
	weight, err := currentWeight(ctx)
	if err != nil {
		return 0, 0, err
	}

	today := startOfDayKST(baseDate)
	yesterday := ranking.Daily.SubtractOne(today)

	var entries []redisrank.Entry
	readCount := 0

	collect := func(isCurrent bool) func(ranking.MetricRow) error {
		return func(row ranking.MetricRow) error {
			entries = append(entries, redisrank.Entry{
				ProductID: row.ProductID,
				Score:     ranking.SingleRowContribution(row, isCurrent, weight),
			})
			readCount++
			return nil
		}
	}

	if err := streamDailyMetrics(ctx, today, collect(true)); err != nil {
		return 0, 0, err
	}
	if err := streamDailyMetrics(ctx, yesterday, collect(false)); err != nil {
		return 0, 0, err
	}

	if err := publishStaging(ctx, ranking.Daily, today, entries); err != nil {
		return 0, 0, err
	}

	return readCount, readCount, nil
}
