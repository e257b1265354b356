package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-rollup/internal/seeders"

	"github.com/spf13/cobra"
)

var (
	seedDate     string
	seedCount    int
	seedStartSeq int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write synthetic event records into the source bucket",
	Long: `Seed writes --count click, view and purchase events at random minutes of one
day (yesterday in UTC unless --date is given). Existing keys are kept.

Examples:
  rollup seed --count 500
  rollup seed --date 2025-05-07 --count 100 --start 100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(seedDate)
		if err != nil {
			return err
		}
		if date.IsZero() {
			date = time.Now().UTC().AddDate(0, 0, -1)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		application, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer application.Close()

		result, err := application.Seed(ctx, seeders.SeedOptions{Date: date, Count: seedCount, StartSeq: seedStartSeq})
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedDate, "date", "", "day to fill as YYYY-MM-DD (default: yesterday UTC)")
	seedCmd.Flags().IntVar(&seedCount, "count", 100, "number of events to write")
	seedCmd.Flags().IntVar(&seedStartSeq, "start", 1, "sequence number of the first event key, event_<start:03d>.json")
}
