package ranking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fallbackWeight() Weight {
	return FallbackWeight()
}

func TestRawScore_ClampsNegativeToZero(t *testing.T) {
	row := MetricRow{ProductID: 1, View: 0, Like: -100, OrderAmount: decimal.Zero}
	score := RawScore(row, fallbackWeight())
	assert.True(t, score.IsZero())
}

func TestComposeTwoBucket_HourlyDecayScenario(t *testing.T) {
	w := fallbackWeight()
	current := []MetricRow{
		{ProductID: 100, View: 100, Like: 10, OrderAmount: decimal.NewFromInt(1000)},
		{ProductID: 200, View: 50, Like: 5, OrderAmount: decimal.NewFromInt(500)},
	}
	previous := []MetricRow{
		{ProductID: 100, View: 80, Like: 8, OrderAmount: decimal.NewFromInt(800)},
	}

	result := ComposeTwoBucket(current, previous, w)

	require.Contains(t, result, int64(100))
	require.Contains(t, result, int64(200))
	assert.Equal(t, "599.76", result[100].String())
	assert.Equal(t, "275.40", result[200].String())
}

func TestComposeTwoBucket_PreviousOnlyScenario(t *testing.T) {
	w := fallbackWeight()
	var current []MetricRow
	previous := []MetricRow{
		{ProductID: 100, View: 100, Like: 10, OrderAmount: decimal.NewFromInt(1000)},
	}
	// product 200 only appears in the "current" bucket of this second scenario.
	current = append(current, MetricRow{ProductID: 200, View: 50, Like: 5, OrderAmount: decimal.NewFromInt(500)})

	result := ComposeTwoBucket(current, previous, w)

	assert.Equal(t, "61.20", result[100].String())
	assert.Equal(t, "275.40", result[200].String())
}

func TestComposeTwoBucket_EmptyWindowIsNoOp(t *testing.T) {
	result := ComposeTwoBucket(nil, nil, fallbackWeight())
	assert.Empty(t, result)
}

func TestComposeNBucket_ReducesToTwoBucketWhenN2(t *testing.T) {
	w := fallbackWeight()
	current := []MetricRow{{ProductID: 1, View: 100, Like: 10, OrderAmount: decimal.NewFromInt(1000)}}
	previous := []MetricRow{{ProductID: 1, View: 80, Like: 8, OrderAmount: decimal.NewFromInt(800)}}

	viaTwoBucket := ComposeTwoBucket(current, previous, w)
	viaNBucket := ComposeNBucket([][]MetricRow{previous, current}, w)

	assert.Equal(t, viaTwoBucket[1].String(), viaNBucket[1].String())
}

func TestComposeNBucket_SplitsPriorWeightAcrossEarlierBuckets(t *testing.T) {
	w := fallbackWeight()
	// Three buckets, oldest first; each earlier bucket gets 0.1/2 = 0.05.
	day1 := []MetricRow{{ProductID: 1, View: 100, Like: 0, OrderAmount: decimal.Zero}}
	day2 := []MetricRow{{ProductID: 1, View: 100, Like: 0, OrderAmount: decimal.Zero}}
	day3 := []MetricRow{{ProductID: 1, View: 100, Like: 0, OrderAmount: decimal.Zero}}

	result := ComposeNBucket([][]MetricRow{day1, day2, day3}, w)

	// raw per bucket = 100*0.10 = 10.00
	// day3 (current): 10.00*0.9 = 9.00
	// day1+day2 (prior, 0.05 each): 10.00*0.05*2 = 1.00
	// total = 10.00
	assert.Equal(t, "10.00", result[1].String())
}

func TestComposeNBucket_EmptyBucketsIsNoOp(t *testing.T) {
	result := ComposeNBucket(nil, fallbackWeight())
	assert.Empty(t, result)
}

func TestSingleRowContribution_MatchesComposedSplit(t *testing.T) {
	w := fallbackWeight()
	row := MetricRow{ProductID: 1, View: 100, Like: 10, OrderAmount: decimal.NewFromInt(1000)}

	current := SingleRowContribution(row, true, w)
	previous := SingleRowContribution(row, false, w)

	assert.Equal(t, "550.80", current.String())
	assert.Equal(t, "61.20", previous.String())
}
