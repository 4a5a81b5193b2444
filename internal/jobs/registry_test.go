package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_TryStartIsMutuallyExclusive(t *testing.T) {
	r := &registry{running: make(map[Name]bool)}

	assert.True(t, r.TryStart(HourlyRanking))
	assert.False(t, r.TryStart(HourlyRanking))
	assert.True(t, r.IsRunning(HourlyRanking))

	r.Finish(HourlyRanking)
	assert.False(t, r.IsRunning(HourlyRanking))
	assert.True(t, r.TryStart(HourlyRanking))

	r.Finish(HourlyRanking)
}

func TestRegistry_NamesAreIndependent(t *testing.T) {
	r := &registry{running: make(map[Name]bool)}

	assert.True(t, r.TryStart(WeeklyRanking))
	assert.True(t, r.TryStart(MonthlyRanking))
	assert.True(t, r.IsRunning(WeeklyRanking))
	assert.True(t, r.IsRunning(MonthlyRanking))

	r.Finish(WeeklyRanking)
	r.Finish(MonthlyRanking)
}
