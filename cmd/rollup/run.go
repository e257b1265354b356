package main

import (
	"os"
	"os/signal"
	"syscall"

	"event-rollup/internal/pipelines"

	"github.com/spf13/cobra"
)

var runDate string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the rollup once and exit",
	Long: `Run processes one day (yesterday in UTC unless --date is given), prints the
run report as JSON and exits non-zero when any step fails.

Examples:
  rollup run
  rollup run --date 2025-05-07
  HOURS_THRESHOLD=2 rollup run --config ./rollup.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(runDate)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		application, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer application.Close()

		result, runErr := application.Run(ctx, pipelines.RunOptions{Date: date})
		if pushErr := application.PushMetrics(); pushErr != nil {
			logger := application.Logger()
			logger.Warn().Err(pushErr).Msg("metrics push failed")
		}
		if runErr != nil {
			return runErr
		}
		return printJSON(result)
	},
}

func init() {
	runCmd.Flags().StringVar(&runDate, "date", "", "day to process as YYYY-MM-DD (default: yesterday UTC)")
}
