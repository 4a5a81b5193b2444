// Package jobs implements the six scheduled batch jobs that turn
// accumulated metrics into rankings, plus the manual admin trigger and the
// in-process registry preventing a job from running twice concurrently for
// the same name.
package jobs

import (
	"errors"
	"time"
)

// Name identifies one of the six scheduled jobs.
type Name string

const (
	HourlyRanking           Name = "hourly_ranking"
	TodayRollup             Name = "today_rollup"
	YesterdayReconciliation Name = "yesterday_reconciliation"
	DailyRanking            Name = "daily_ranking"
	WeeklyRanking           Name = "weekly_ranking"
	MonthlyRanking          Name = "monthly_ranking"
)

// Status is a job execution's lifecycle state.
type Status string

const (
	StatusCreated   Status = "CREATED"
	StatusRunning   Status = "RUNNING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// ErrJobAlreadyRunning is returned by Trigger when an execution with the
// same job name is already in flight.
var ErrJobAlreadyRunning = errors.New("JOB_ALREADY_RUNNING")

// Execution is one run's externally-reportable state, mirroring the manual
// trigger's HTTP response shape.
type Execution struct {
	JobName         Name
	BaseDate        time.Time
	Status          Status
	StartTime       time.Time
	EndTime         time.Time
	ReadCount       int
	WriteCount      int
	ExitDescription string
}
