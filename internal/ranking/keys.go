package ranking

import (
	"fmt"
	"time"
)

// KST is the fixed Asia/Seoul location every bucket key and cron schedule
// in this package is evaluated against.
var KST = mustLoadKST()

func mustLoadKST() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		// Asia/Seoul has no DST and no historical edge cases; a missing
		// tzdata entry is an environment bug, not a recoverable one.
		panic(fmt.Sprintf("ranking: cannot load Asia/Seoul: %v", err))
	}
	return loc
}

const keyPrefix = "ranking:products"

// LiveKey returns the deterministic Redis sorted-set key for a live-ranked
// period (HOURLY or DAILY) at the given bucket instant, e.g.
// "ranking:products:hourly:2025010214" or "ranking:products:daily:20250102".
// Calling it for WEEKLY/MONTHLY is a programming error since those periods
// have no live key.
func LiveKey(period Period, bucket time.Time) string {
	t := bucket.In(KST)
	switch period {
	case Hourly:
		return fmt.Sprintf("%s:hourly:%s", keyPrefix, t.Format("2006010215"))
	case Daily:
		return fmt.Sprintf("%s:daily:%s", keyPrefix, t.Format("20060102"))
	default:
		panic(fmt.Sprintf("ranking: period %s has no live key", period))
	}
}

// StagingKey returns the staging variant of LiveKey, written to during
// recomputation and atomically renamed over the live key on success.
func StagingKey(period Period, bucket time.Time) string {
	return LiveKey(period, bucket) + ":staging"
}

// CurrentBucketKey returns LiveKey(period, now) using the current instant
// in Asia/Seoul time.
func CurrentBucketKey(period Period) string {
	return LiveKey(period, time.Now().In(KST))
}

// LiveKeyTTL is the TTL applied to a live hourly/daily key immediately
// after a successful staging-to-live rename.
const LiveKeyTTL = 24 * time.Hour
