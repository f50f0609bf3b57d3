package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abdulachik/cozyconnect/internal/app"
	"github.com/abdulachik/cozyconnect/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the CozyConnect server that exposes the question-generation
pipeline over HTTP with per-client rate limiting.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForServe(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	slog.Info("starting CozyConnect server",
		"provider", cfg.Provider,
		"port", cfg.Port,
		"refinement_mode", cfg.RefinementMode,
		"fallback_policy", cfg.FallbackPolicy,
	)

	// Run the server in background
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Server.Run(ctx, fmt.Sprintf(":%d", cfg.Port))
	}()

	// Wait for shutdown signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("received shutdown signal", "signal", sig)
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	slog.Info("shutting down...")
	cancel()

	return <-errCh
}
