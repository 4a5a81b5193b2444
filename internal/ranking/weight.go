package ranking

import (
	"github.com/shopspring/decimal"
)

// Weight is the (view, like, order) triple multiplying a metric row's raw
// counters to produce its raw score.
type Weight struct {
	ID         int64
	View       decimal.Decimal
	Like       decimal.Decimal
	Order      decimal.Decimal
	SoftDeleted bool
}

// FallbackWeight is used whenever no non-deleted RankingWeight row exists.
func FallbackWeight() Weight {
	return Weight{
		View:  decimal.NewFromFloat(0.10),
		Like:  decimal.NewFromFloat(0.20),
		Order: decimal.NewFromFloat(0.60),
	}
}
