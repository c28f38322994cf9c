package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	lifecycleservice "canje/contexts/marketplace/lifecycle-service"
	postgresadapter "canje/contexts/marketplace/lifecycle-service/adapters/postgres"
	workerapp "canje/contexts/marketplace/lifecycle-service/application/workers"
	"canje/contexts/marketplace/lifecycle-service/ports"
	"canje/internal/platform/config"
	"canje/internal/platform/db"
	"canje/internal/platform/httpserver"
	"canje/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres       *db.Postgres
	rabbit         *messaging.Rabbit
	outboxRelay    workerapp.OutboxRelay
	alerter        workerapp.DeadlineAlerter
	runOutboxRelay bool
	runAlerter     bool
	pollInterval   time.Duration
	logger         *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo := postgresadapter.NewRepository(pg.DB, logger)
	module := lifecycleservice.NewModule(lifecycleservice.Dependencies{
		Repository:               repo,
		Outbox:                   repo,
		Clock:                    postgresadapter.SystemClock{},
		IDGen:                    postgresadapter.UUIDGenerator{},
		Logger:                   logger,
		ReleaseSlotOnCancel:      cfg.ReleaseSlotOnCancel,
		DefaultURLWindowDays:     cfg.DefaultURLWindowDays,
		DefaultMetricsWindowDays: cfg.DefaultMetricsWindowDays,
	})

	server := httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo := postgresadapter.NewRepository(pg.DB, logger)

	var rabbit *messaging.Rabbit
	var publisher ports.EventPublisher
	if strings.TrimSpace(cfg.AMQPURL) != "" {
		rabbit, err = messaging.NewRabbit(cfg.AMQPURL, logger)
		if err != nil {
			_ = pg.Close()
			return nil, err
		}
		publisher = rabbit
	} else {
		publisher = messaging.NewBus(logger)
	}

	return &WorkerApp{
		postgres: pg,
		rabbit:   rabbit,
		outboxRelay: workerapp.OutboxRelay{
			Outbox:    repo,
			Publisher: publisher,
			Clock:     postgresadapter.SystemClock{},
			BatchSize: cfg.WorkerBatchSize,
			Logger:    logger,
		},
		alerter: workerapp.DeadlineAlerter{
			Deliverables: repo,
			Campaigns:    repo,
			Publisher:    publisher,
			Clock:        postgresadapter.SystemClock{},
			BatchSize:    cfg.WorkerBatchSize,
			Logger:       logger,
		},
		runOutboxRelay: cfg.EnableOutboxRelay,
		runAlerter:     cfg.EnableDeadlineAlerts,
		pollInterval:   cfg.WorkerPollInterval,
		logger:         logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if w.runOutboxRelay {
			if err := w.outboxRelay.RunOnce(ctx); err != nil {
				return err
			}
		}
		if w.runAlerter {
			if err := w.alerter.RunOnce(ctx); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.rabbit != nil {
		_ = w.rabbit.Close()
	}
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
