package jobs

import (
	"context"
	"time"

	"productranking/internal/ranking"
	"productranking/internal/redisrank"
	"productranking/internal/store/postgres"
)

// streamHourlyMetrics and currentWeight are function variables over the
// postgres package so tests can substitute in-memory fixtures instead of a
// live database.
var (
	streamHourlyMetrics = postgres.StreamHourlyMetrics
	currentWeight       = postgres.CurrentWeight
	publishStaging      = redisrank.Publish
)

// RunHourlyRanking executes the hourly ranking step for baseDateTime: reads
// the current-hour and previous-hour HourlyMetric windows, applies the
// single-row decay contribution, and publishes the result to the hourly
// live key. writeCount always equals readCount, one ZINCRBY per input row.
func RunHourlyRanking(ctx context.Context, baseDateTime time.Time) Execution {
	return run(ctx, HourlyRanking, baseDateTime, func(ctx context.Context) (int, int, error) {
		return hourlyStep(ctx, baseDateTime)
	})
}

func hourlyStep(ctx context.Context, baseDateTime time.Time) (int, int, error) {
	weight, err := currentWeight(ctx)
	if err != nil {
		return 0, 0, err
	}

	currentHour := truncateToHour(baseDateTime)
	previousHour := ranking.Hourly.SubtractOne(currentHour)

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

	if err := streamHourlyMetrics(ctx, currentHour, collect(true)); err != nil {
		return 0, 0, err
	}
	if err := streamHourlyMetrics(ctx, previousHour, collect(false)); err != nil {
		return 0, 0, err
	}

	if err := publishStaging(ctx, ranking.Hourly, currentHour, entries); err != nil {
		return 0, 0, err
	}

	return readCount, readCount, nil
}

func truncateToHour(t time.Time) time.Time {
	t = t.In(ranking.KST)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, ranking.KST)
}
