package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/borderwalk/internal/api"
)

var flagHTTPAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP API",
	Long: `Start an HTTP server exposing areas and laps as JSON.

Routes:
  GET  /areas/                  - Registered areas
  GET  /areas/{id}              - One area
  GET  /areas/{id}/border       - One lap (?x=&y= start, ?distinct=true)
  POST /areas/{id}/traces       - Trace and save a lap
  GET  /traces/                 - Saved laps (?area=, ?limit=)
  GET  /traces/{id}             - One saved lap with cells
  GET  /ws/trace/{id}           - Websocket, one message per cell

Examples:
  borderwalk api
  borderwalk api --http :8080`,
	Run: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP listen address (overrides config)")
}

func runAPI(_ *cobra.Command, _ []string) {
	cfg, logger := setup()
	if flagHTTPAddr != "" {
		cfg.HTTP.Address = flagHTTPAddr
	}

	store := openStore(cfg, logger, true)
	if store != nil {
		defer store.Close()
	}

	server := api.NewServer(cfg.HTTP, store, logger.WithPrefix("borderwalk-api"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}
}
