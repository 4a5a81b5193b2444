package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePeriod_LenientDefault(t *testing.T) {
	cases := map[string]Period{
		"hourly":  Hourly,
		"HOURLY":  Hourly,
		"Daily":   Daily,
		"weekly":  Weekly,
		"MONTHLY": Monthly,
		"bogus":   Hourly,
		"":        Hourly,
	}
	for input, want := range cases {
		assert.Equal(t, want, ParsePeriod(input), "input=%q", input)
	}
}

func TestParsePeriodStrict_RejectsUnknown(t *testing.T) {
	_, ok := ParsePeriodStrict("fortnightly")
	assert.False(t, ok)

	p, ok := ParsePeriodStrict("weekly")
	assert.True(t, ok)
	assert.Equal(t, Weekly, p)
}

func TestPeriod_String(t *testing.T) {
	assert.Equal(t, "hourly", Hourly.String())
	assert.Equal(t, "daily", Daily.String())
	assert.Equal(t, "weekly", Weekly.String())
	assert.Equal(t, "monthly", Monthly.String())
}

func TestPeriod_SubtractOne(t *testing.T) {
	base := time.Date(2026, 7, 29, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, base.Add(-time.Hour), Hourly.SubtractOne(base))
	assert.Equal(t, base.AddDate(0, 0, -1), Daily.SubtractOne(base))
	assert.Equal(t, base.AddDate(0, 0, -7), Weekly.SubtractOne(base))
	assert.Equal(t, base.AddDate(0, 0, -30), Monthly.SubtractOne(base))
}

func TestPeriod_IsLiveRanked(t *testing.T) {
	assert.True(t, Hourly.IsLiveRanked())
	assert.True(t, Daily.IsLiveRanked())
	assert.False(t, Weekly.IsLiveRanked())
	assert.False(t, Monthly.IsLiveRanked())
}
