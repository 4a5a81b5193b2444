package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"productranking/internal/ranking"
)

// upsertChunkSize mirrors the teacher's batched-insert chunk size for its
// SQLite aggregation tables, translated to Postgres's multi-row VALUES form.
const upsertChunkSize = 100

// HourlyDelta is one upstream AccumulateMetricsCommand reduced to the
// counters BatchAccumulateHourlyMetrics adds onto product_hourly_metric.
type HourlyDelta struct {
	StatHour         time.Time
	ProductID        int64
	ViewDelta        int64
	LikeDelta        int64
	OrderAmountDelta decimal.Decimal
}

// BatchAccumulateHourlyMetrics upserts every delta, adding onto whatever
// counters already exist for (stat_hour, product_id). Commutative across
// calls and across row ordering within a call; empty input is a no-op.
func BatchAccumulateHourlyMetrics(ctx context.Context, deltas []HourlyDelta) error {
	for start := 0; start < len(deltas); start += upsertChunkSize {
		end := start + upsertChunkSize
		if end > len(deltas) {
			end = len(deltas)
		}
		if err := upsertHourlyChunk(ctx, deltas[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func upsertHourlyChunk(ctx context.Context, chunk []HourlyDelta) error {
	if len(chunk) == 0 {
		return nil
	}

	values := make([]string, 0, len(chunk))
	args := make([]any, 0, len(chunk)*5)
	for i, d := range chunk {
		base := i * 5
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5))
		args = append(args, d.StatHour, d.ProductID, d.ViewDelta, d.LikeDelta, d.OrderAmountDelta)
	}

	query := fmt.Sprintf(`
		INSERT INTO product_hourly_metric (stat_hour, product_id, view_count, like_count, order_amount)
		VALUES %s
		ON CONFLICT (stat_hour, product_id) DO UPDATE SET
			view_count   = product_hourly_metric.view_count + EXCLUDED.view_count,
			like_count   = product_hourly_metric.like_count + EXCLUDED.like_count,
			order_amount = product_hourly_metric.order_amount + EXCLUDED.order_amount,
			updated_at   = now()
	`, joinValues(values))

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func joinValues(values []string) string {
	out := values[0]
	for _, v := range values[1:] {
		out += "," + v
	}
	return out
}

// StreamHourlyMetrics invokes fn for every product_hourly_metric row at
// statHour, cursor-based rather than materializing the whole window —
// hourly windows can hold hundreds of thousands of products. fn's error
// aborts the stream and is returned as-is.
func StreamHourlyMetrics(ctx context.Context, statHour time.Time, fn func(ranking.MetricRow) error) error {
	rows, err := pool.Query(ctx, `
		SELECT product_id, view_count, like_count, order_amount
		FROM product_hourly_metric
		WHERE stat_hour = $1
	`, statHour)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var row ranking.MetricRow
		if err := rows.Scan(&row.ProductID, &row.View, &row.Like, &row.OrderAmount); err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return rows.Err()
}

// StreamHourlyMetricsInRange invokes fn for every row whose stat_hour falls
// in [from, to), used by the rollup jobs to walk a full day of hours.
func StreamHourlyMetricsInRange(ctx context.Context, from, to time.Time, fn func(time.Time, ranking.MetricRow) error) error {
	rows, err := pool.Query(ctx, `
		SELECT stat_hour, product_id, view_count, like_count, order_amount
		FROM product_hourly_metric
		WHERE stat_hour >= $1 AND stat_hour < $2
	`, from, to)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var statHour time.Time
		var row ranking.MetricRow
		if err := rows.Scan(&statHour, &row.ProductID, &row.View, &row.Like, &row.OrderAmount); err != nil {
			return err
		}
		if err := fn(statHour, row); err != nil {
			return err
		}
	}
	return rows.Err()
}

// DailyTotal is one product's full-day aggregate as computed by the rollup
// job from a day's worth of hourly rows.
type DailyTotal struct {
	StatDate    time.Time
	ProductID   int64
	View        int64
	Like        int64
	OrderAmount decimal.Decimal
}

// UpsertDailyMetricTotals overwrites (not adds onto) product_daily_metric
// for each total. The rollup job recomputes the whole day's aggregate on
// every run, so the write must be idempotent-by-replacement rather than
// idempotent-by-accumulation: a rerun with the same totals leaves the same
// state, but a rerun with different totals must not double-count the old
// ones.
func UpsertDailyMetricTotals(ctx context.Context, totals []DailyTotal) error {
	for start := 0; start < len(totals); start += upsertChunkSize {
		end := start + upsertChunkSize
		if end > len(totals) {
			end = len(totals)
		}
		if err := upsertDailyChunk(ctx, totals[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func upsertDailyChunk(ctx context.Context, chunk []DailyTotal) error {
	if len(chunk) == 0 {
		return nil
	}

	values := make([]string, 0, len(chunk))
	args := make([]any, 0, len(chunk)*5)
	for i, d := range chunk {
		base := i * 5
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5))
		args = append(args, d.StatDate, d.ProductID, d.View, d.Like, d.OrderAmount)
	}

	query := fmt.Sprintf(`
		INSERT INTO product_daily_metric (stat_date, product_id, view_count, like_count, order_amount)
		VALUES %s
		ON CONFLICT (stat_date, product_id) DO UPDATE SET
			view_count   = EXCLUDED.view_count,
			like_count   = EXCLUDED.like_count,
			order_amount = EXCLUDED.order_amount,
			updated_at   = now()
	`, joinValues(values))

	_, err := pool.Exec(ctx, query, args...)
	return err
}

// StreamDailyMetrics invokes fn for every product_daily_metric row at
// statDate.
func StreamDailyMetrics(ctx context.Context, statDate time.Time, fn func(ranking.MetricRow) error) error {
	rows, err := pool.Query(ctx, `
		SELECT product_id, view_count, like_count, order_amount
		FROM product_daily_metric
		WHERE stat_date = $1
	`, statDate)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var row ranking.MetricRow
		if err := rows.Scan(&row.ProductID, &row.View, &row.Like, &row.OrderAmount); err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return rows.Err()
}
