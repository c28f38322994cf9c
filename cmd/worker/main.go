package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"canje/internal/app/bootstrap"
)

// Worker process entrypoint.
// Runs the outbox relay and the deadline alert sweep on a poll loop.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	app, err := bootstrap.BuildWorker()
	if err != nil {
		logger.Error("worker bootstrap failed",
			"event", "worker_bootstrap_failed",
			"module", "cmd/worker",
			"layer", "platform",
			"error", err.Error(),
		)
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		logger.Error("worker run failed",
			"event", "worker_run_failed",
			"module", "cmd/worker",
			"layer", "platform",
			"error", err.Error(),
		)
		os.Exit(1)
	}
}
