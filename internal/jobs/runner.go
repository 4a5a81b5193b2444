package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// step is the unit of work a job performs for a given baseDate: it returns
// how many rows it read and wrote.
type step func(ctx context.Context) (readCount, writeCount int, err error)

// run guards fn behind the registry, times it, and logs a consistent set
// of fields on completion. It never returns an error for a step failure:
// the failure is recorded on the returned Execution instead, so the
// scheduler can log and move on to the next job.
func run(ctx context.Context, name Name, baseDate time.Time, fn step) Execution {
	exec := Execution{JobName: name, BaseDate: baseDate, Status: StatusCreated}

	if !defaultRegistry.TryStart(name) {
		exec.Status = StatusFailed
		exec.ExitDescription = ErrJobAlreadyRunning.Error()
		return exec
	}
	defer defaultRegistry.Finish(name)

	exec.Status = StatusRunning
	exec.StartTime = time.Now()

	readCount, writeCount, err := fn(ctx)

	exec.EndTime = time.Now()
	exec.ReadCount = readCount
	exec.WriteCount = writeCount

	logEvent := log.Info()
	if err != nil {
		exec.Status = StatusFailed
		exec.ExitDescription = err.Error()
		logEvent = log.Error().Err(err)
	} else {
		exec.Status = StatusCompleted
		exec.ExitDescription = "ok"
	}

	logEvent.
		Str("job", string(name)).
		Time("base_date", baseDate).
		Int("read_count", readCount).
		Int("write_count", writeCount).
		Msg("job execution finished")

	return exec
}

// Trigger runs fn for name if it is not already running, returning
// ErrJobAlreadyRunning otherwise. Used by the manual admin trigger, which
// needs the sentinel error rather than a failed Execution to translate
// into HTTP 409.
func Trigger(ctx context.Context, name Name, baseDate time.Time, fn step) (Execution, error) {
	if defaultRegistry.IsRunning(name) {
		return Execution{}, ErrJobAlreadyRunning
	}
	return run(ctx, name, baseDate, fn), nil
}
