package ranking

import (
	"github.com/shopspring/decimal"
)

// MetricRow is one product's counters for a single time bucket (an hour or
// a day), the shared unit the score calculator consumes regardless of which
// store (hourly or daily metric table) produced it.
type MetricRow struct {
	ProductID   int64
	View        int64
	Like        int64
	OrderAmount decimal.Decimal
}

// currentWeight and previousWeight are the fixed decay constants the core
// formula applies when composing a "current" bucket against a "previous"
// one: the current bucket dominates at 0.9, the previous contributes 0.1.
var (
	currentWeight  = decimal.NewFromFloat(0.9)
	previousWeight = decimal.NewFromFloat(0.1)
)

// RawScore computes max(0, round(view*viewW + like*likeW + order*orderW, 2))
// for a single metric row. The max-with-zero clamp absorbs a negative
// likeCount (cancellations exceeding creations in the bucket) that would
// otherwise push the raw total below zero.
func RawScore(row MetricRow, w Weight) Score {
	total := decimal.NewFromInt(row.View).Mul(w.View).
		Add(decimal.NewFromInt(row.Like).Mul(w.Like)).
		Add(row.OrderAmount.Mul(w.Order))
	if total.IsNegative() {
		total = decimal.Zero
	}
	return MustScore(total)
}

// SingleRowContribution computes one row's independent contribution to the
// decay-composed score: weight 0.9 if the row belongs to the current
// bucket, 0.1 otherwise. The chunked hourly job sums these per product via
// Redis ZINCRBY, so each row's contribution must be computable without
// seeing its sibling rows.
func SingleRowContribution(row MetricRow, isCurrent bool, w Weight) Score {
	raw := RawScore(row, w)
	if isCurrent {
		return raw.MustDecay(currentWeight)
	}
	return raw.MustDecay(previousWeight)
}

// ComposeTwoBucket computes the decay-composed final score for every
// product appearing in either the current or the previous bucket:
// final(p) = raw_previous(p)*0.1 + raw_current(p)*0.9, with a missing side
// contributing zero. It holds the whole window in memory; the hourly and
// daily jobs do not call it, they publish one SingleRowContribution per row
// and let Redis ZINCRBY sum them per product.
func ComposeTwoBucket(current, previous []MetricRow, w Weight) map[int64]Score {
	result := make(map[int64]Score, len(current)+len(previous))
	for _, row := range current {
		result[row.ProductID] = RawScore(row, w).MustDecay(currentWeight)
	}
	for _, row := range previous {
		contribution := RawScore(row, w).MustDecay(previousWeight)
		result[row.ProductID] = result[row.ProductID].Add(contribution)
	}
	return result
}

// ComposeNBucket generalizes ComposeTwoBucket to an arbitrary number of
// buckets ordered oldest-first, with `buckets[len(buckets)-1]` treated as
// "current". The most recent bucket is weighted 0.9; every earlier bucket
// in the window shares the remaining 0.1 equally (0.1/(N-1) apiece). With
// N=2 this reduces exactly to ComposeTwoBucket's 0.9/0.1 split. See
// SPEC_FULL.md §4.3 and §9 for why this generalization was chosen over
// summing independently-decayed per-day scores.
func ComposeNBucket(buckets [][]MetricRow, w Weight) map[int64]Score {
	result := make(map[int64]Score)
	if len(buckets) == 0 {
		return result
	}
	last := len(buckets) - 1
	for _, row := range buckets[last] {
		result[row.ProductID] = RawScore(row, w).MustDecay(currentWeight)
	}
	if last == 0 {
		return result
	}
	priorWeight := previousWeight.Div(decimal.NewFromInt(int64(last)))
	for i := 0; i < last; i++ {
		for _, row := range buckets[i] {
			contribution := RawScore(row, w).MustDecay(priorWeight)
			result[row.ProductID] = result[row.ProductID].Add(contribution)
		}
	}
	return result
}
