package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLiveKey_HourlyFormat(t *testing.T) {
	bucket := time.Date(2025, 1, 2, 14, 30, 0, 0, time.UTC)
	key := LiveKey(Hourly, bucket)
	assert.Equal(t, "ranking:products:hourly:"+bucket.In(KST).Format("2006010215"), key)
}

func TestLiveKey_DailyFormat(t *testing.T) {
	bucket := time.Date(2025, 1, 2, 14, 30, 0, 0, time.UTC)
	key := LiveKey(Daily, bucket)
	assert.Equal(t, "ranking:products:daily:"+bucket.In(KST).Format("20060102"), key)
}

func TestLiveKey_PanicsForNonLivePeriods(t *testing.T) {
	assert.Panics(t, func() { LiveKey(Weekly, time.Now()) })
	assert.Panics(t, func() { LiveKey(Monthly, time.Now()) })
}

func TestStagingKey_IsLiveKeyPlusSuffix(t *testing.T) {
	bucket := time.Date(2025, 1, 2, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, LiveKey(Hourly, bucket)+":staging", StagingKey(Hourly, bucket))
}

func TestLiveKey_IsDeterministicWithinSameHour(t *testing.T) {
	a := time.Date(2025, 1, 2, 14, 0, 0, 0, time.UTC)
	b := time.Date(2025, 1, 2, 14, 59, 59, 0, time.UTC)
	assert.Equal(t, LiveKey(Hourly, a), LiveKey(Hourly, b))
}

func TestCurrentBucketKey_MatchesLiveKeyNow(t *testing.T) {
	assert.Equal(t, LiveKey(Hourly, time.Now()), CurrentBucketKey(Hourly))
}
