package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"productranking/internal/config"
	"productranking/internal/jobs"
	"productranking/internal/logging"
	"productranking/internal/store/postgres"
)

func newTriggerCmd() *cobra.Command {
	var baseDate string

	cmd := &cobra.Command{
		Use:   "trigger [weekly|monthly]",
		Short: "Manually trigger the weekly or monthly materialized ranking job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period := args[0]

			cfg := config.Load()
			logging.Init(cfg)

			ctx := context.Background()
			if _, err := postgres.Init(ctx, cfg.DatabaseURL); err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer postgres.Close()

			parsedDate, err := jobs.ParseBaseDate(baseDate)
			if err != nil {
				return err
			}

			exec, err := jobs.TriggerManual(ctx, period, parsedDate)
			if err != nil {
				return err
			}

			fmt.Printf("job=%s status=%s baseDate=%s read=%d write=%d\n",
				exec.JobName, exec.Status, jobs.FormatBaseDate(exec.BaseDate), exec.ReadCount, exec.WriteCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseDate, "base-date", "", "yyyyMMdd base date, defaults to today (KST)")
	return cmd
}
