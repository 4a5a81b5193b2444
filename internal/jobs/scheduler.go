package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"productranking/internal/ranking"
)

// Scheduler drives the six batch jobs on their own cron entries, all
// evaluated in Asia/Seoul. Weekly and monthly share a cron expression but
// run as two independent entries, each guarded by its own registry key, so
// they execute concurrently rather than one blocking the other.
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler builds a cron dispatcher with every job registered per the
// cadence table, but does not start it.
func NewScheduler() *Scheduler {
	c := cron.New(cron.WithLocation(ranking.KST), cron.WithSeconds(), cron.WithChain(cron.Recover(cron.DefaultLogger)))

	mustAddFunc(c, "0 */30 * * * *", func() { logRun(RunHourlyRanking(context.Background(), time.Now())) })
	mustAddFunc(c, "0 0 1,7,13,19 * * *", func() { logRun(RunTodayRollup(context.Background(), time.Now())) })
	mustAddFunc(c, "0 0 4 * * *", func() { logRun(RunYesterdayReconciliation(context.Background(), time.Now())) })
	mustAddFunc(c, "0 0 1,13 * * *", func() { logRun(RunDailyRanking(context.Background(), time.Now())) })
	mustAddFunc(c, "0 0 2 * * *", func() { logRun(RunWeeklyRanking(context.Background(), time.Now())) })
	mustAddFunc(c, "0 0 2 * * *", func() { logRun(RunMonthlyRanking(context.Background(), time.Now())) })

	return &Scheduler{cron: c}
}

func mustAddFunc(c *cron.Cron, spec string, cmd func()) {
	if _, err := c.AddFunc(spec, cmd); err != nil {
		// A bad cron expression here is a programming error caught at
		// startup, not a runtime condition to recover from.
		panic("jobs: invalid cron expression " + spec + ": " + err.Error())
	}
}

// Start begins dispatching. Each entry runs in its own goroutine per
// robfig/cron's model; a panicking job is recovered by the cron.Recover
// wrapper installed in NewScheduler and logged rather than taking down the
// process.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for in-flight jobs to finish and halts the dispatcher.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func logRun(exec Execution) {
	event := log.Info()
	if exec.Status == StatusFailed {
		event = log.Error()
	}
	event.
		Str("job", string(exec.JobName)).
		Str("status", string(exec.Status)).
		Time("base_date", exec.BaseDate).
		Int("read_count", exec.ReadCount).
		Int("write_count", exec.WriteCount).
		Str("exit_description", exec.ExitDescription).
		Msg("scheduled job dispatched")
}
