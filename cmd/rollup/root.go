package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"event-rollup/internal/app"
	"event-rollup/internal/shared/configs"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rollup",
	Short: "Hourly event rollup",
	Long: `rollup counts the previous day's event records per hour and event type,
publishes the hourly summary and merges it into the warehouse.

Settings come from defaults, an optional YAML file and environment variables
(highest precedence), e.g. SOURCE_BUCKET, HOURS_THRESHOLD, WAREHOUSE_DSN.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (optional)")
	rootCmd.AddCommand(runCmd, serveCmd, seedCmd)
}

// newApp loads the configuration and builds the application.
func newApp(ctx context.Context) (*app.App, error) {
	cfg, err := configs.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}
	return application, nil
}

// parseDate reads a --date flag value. Empty means no override.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
	}
	return date, nil
}

func printJSON(v any) error {
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(out))
	return err
}
