package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP run trigger",
	Long: `Serve exposes POST /runs (optionally ?date=YYYY-MM-DD), GET /healthz and
GET /metrics until interrupted. Only one run executes at a time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		serverErr := make(chan error, 1)
		go func() {
			if err := application.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErr:
			_ = application.Close()
			return err
		case <-quit:
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return application.Shutdown(ctx)
	},
}
