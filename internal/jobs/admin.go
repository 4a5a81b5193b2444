package jobs

import (
	"context"
	"errors"
	"strings"
	"time"

	"productranking/internal/ranking"
)

// ErrInvalidPeriod is returned when the manual trigger's period is neither
// "weekly" nor "monthly".
var ErrInvalidPeriod = errors.New("INVALID_PERIOD")

// ErrInvalidDateFormat is returned when baseDate cannot be parsed as
// yyyyMMdd.
var ErrInvalidDateFormat = errors.New("INVALID_DATE_FORMAT")

const baseDateLayout = "20060102"

// ParseBaseDate parses a yyyyMMdd baseDate, defaulting to today (KST) when
// raw is blank and clamping any future date to today. An unparseable
// non-blank value is ErrInvalidDateFormat.
func ParseBaseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	today := startOfDayKST(time.Now())

	if raw == "" {
		return today, nil
	}

	parsed, err := time.ParseInLocation(baseDateLayout, raw, ranking.KST)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}

	if parsed.After(today) {
		return today, nil
	}
	return parsed, nil
}

// FormatBaseDate renders t in the yyyyMMdd wire format ParseBaseDate
// accepts, making parse→format→parse an identity for valid dates.
func FormatBaseDate(t time.Time) string {
	return t.In(ranking.KST).Format(baseDateLayout)
}

// TriggerManual runs the weekly or monthly materialized ranking job
// synchronously for baseDate, used by both the HTTP admin endpoint and
// cmd/adminctl.
func TriggerManual(ctx context.Context, period string, baseDate time.Time) (Execution, error) {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "weekly":
		return Trigger(ctx, WeeklyRanking, baseDate, func(ctx context.Context) (int, int, error) {
			return periodRankStep(ctx, baseDate, weeklyWindowDays, saveWeeklyRank)
		})
	case "monthly":
		return Trigger(ctx, MonthlyRanking, baseDate, func(ctx context.Context) (int, int, error) {
			return periodRankStep(ctx, baseDate, monthlyWindowDays, saveMonthlyRank)
		})
	default:
		return Execution{}, ErrInvalidPeriod
	}
}
