package jobs

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"productranking/internal/ranking"
	"productranking/internal/store/postgres"
)

var (
	streamHourlyMetricsInRange = postgres.StreamHourlyMetricsInRange
	upsertDailyMetricTotals    = postgres.UpsertDailyMetricTotals
)

// RunTodayRollup rolls up all of today's (KST) HourlyMetric rows into
// DailyMetric totals for today.
func RunTodayRollup(ctx context.Context, baseDate time.Time) Execution {
	return run(ctx, TodayRollup, baseDate, func(ctx context.Context) (int, int, error) {
		return rollupStep(ctx, startOfDayKST(baseDate))
	})
}

// RunYesterdayReconciliation rolls up all of yesterday's HourlyMetric rows
// into DailyMetric totals for yesterday, catching any late-arriving deltas
// today's earlier rollups missed.
func RunYesterdayReconciliation(ctx context.Context, baseDate time.Time) Execution {
	return run(ctx, YesterdayReconciliation, baseDate, func(ctx context.Context) (int, int, error) {
		yesterday := ranking.Daily.SubtractOne(startOfDayKST(baseDate))
		return rollupStep(ctx, yesterday)
	})
}

// rollupStep streams [dayStart, dayStart+24h) hourly rows, sums them per
// product, and overwrites (not accumulates onto) DailyMetric for that day
// — the aggregate is recomputed from scratch every run, so the write must
// replace rather than add to stay idempotent across reruns.
func rollupStep(ctx context.Context, dayStart time.Time) (int, int, error) {
	dayEnd := dayStart.AddDate(0, 0, 1)

	type totals struct {
		view, like int64
		order      decimal.Decimal
	}
	byProduct := make(map[int64]*totals)
	readCount := 0

	err := streamHourlyMetricsInRange(ctx, dayStart, dayEnd, func(_ time.Time, row ranking.MetricRow) error {
		t, ok := byProduct[row.ProductID]
		if !ok {
			t = &totals{order: decimal.Zero}
			byProduct[row.ProductID] = t
		}
		t.view += row.View
		t.like += row.Like
		t.order = t.order.Add(row.OrderAmount)
		readCount++
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	rows := make([]postgres.DailyTotal, 0, len(byProduct))
	for productID, t := range byProduct {
		rows = append(rows, postgres.DailyTotal{
			StatDate:    dayStart,
			ProductID:   productID,
			View:        t.view,
			Like:        t.like,
			OrderAmount: t.order,
		})
	}

	if len(rows) == 0 {
		return readCount, 0, nil
	}

	if err := upsertDailyMetricTotals(ctx, rows); err != nil {
		return 0, 0, err
	}
	return readCount, len(rows), nil
}

func startOfDayKST(t time.Time) time.Time {
	t = t.In(ranking.KST)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, ranking.KST)
}
