package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productranking/internal/ranking"
	"productranking/internal/store/postgres"
)

func TestParseBaseDate_BlankDefaultsToToday(t *testing.T) {
	got, err := ParseBaseDate("")
	require.NoError(t, err)
	assert.Equal(t, startOfDayKST(time.Now()), got)
}

func TestParseBaseDate_RoundTripsThroughFormatBaseDate(t *testing.T) {
	raw := "20250615"
	parsed, err := ParseBaseDate(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, FormatBaseDate(parsed))

	reparsed, err := ParseBaseDate(FormatBaseDate(parsed))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(reparsed))
}

func TestParseBaseDate_FutureDateClampsToToday(t *testing.T) {
	future := time.Now().In(ranking.KST).AddDate(1, 0, 0)
	got, err := ParseBaseDate(future.Format(baseDateLayout))
	require.NoError(t, err)
	assert.Equal(t, startOfDayKST(time.Now()), got)
}

func TestParseBaseDate_RejectsBadFormat(t *testing.T) {
	_, err := ParseBaseDate("not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestTriggerManual_RejectsUnknownPeriod(t *testing.T) {
	_, err := TriggerManual(context.Background(), "daily", time.Now())
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

// TestTriggerManual_WeeklyIsIdempotentForSameBaseDate runs the manual
// weekly trigger twice for the same baseDate and asserts both runs replace
// the ranking with the same rows, per the delete-then-insert semantics in
// postgres.SaveWeeklyRank (scenario 6).
func TestTriggerManual_WeeklyIsIdempotentForSameBaseDate(t *testing.T) {
	origWeight := currentWeight
	origStream := streamDailyMetrics
	origSave := saveWeeklyRank
	defer func() {
		currentWeight = origWeight
		streamDailyMetrics = origStream
		saveWeeklyRank = origSave
	}()

	currentWeight = func(ctx context.Context) (ranking.Weight, error) {
		return ranking.FallbackWeight(), nil
	}
	streamDailyMetrics = func(ctx context.Context, statDate time.Time, fn func(ranking.MetricRow) error) error {
		return fn(ranking.MetricRow{ProductID: 1, View: 10, Like: 0, OrderAmount: decimal.Zero})
	}

	var savedRuns [][]postgres.RankRow
	saveWeeklyRank = func(ctx context.Context, baseDate time.Time, rows []postgres.RankRow) error {
		savedRuns = append(savedRuns, rows)
		return nil
	}

	baseDate := time.Date(2025, 6, 15, 0, 0, 0, 0, ranking.KST)

	exec1, err := TriggerManual(context.Background(), "  WEEKLY  ", baseDate)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, exec1.Status)

	exec2, err := TriggerManual(context.Background(), "weekly", baseDate)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, exec2.Status)

	require.Len(t, savedRuns, 2)
	assert.Equal(t, savedRuns[0], savedRuns[1])
}
