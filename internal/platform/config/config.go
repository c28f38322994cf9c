package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"canje-lifecycle"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN string `env:"POSTGRES_DSN"`
	AMQPURL     string `env:"AMQP_URL"`

	DefaultURLWindowDays     int `env:"DEFAULT_URL_WINDOW_DAYS" envDefault:"7"`
	DefaultMetricsWindowDays int `env:"DEFAULT_METRICS_WINDOW_DAYS" envDefault:"14"`

	ReleaseSlotOnCancel bool `env:"RELEASE_SLOT_ON_CANCEL" envDefault:"false"`

	EnableOutboxRelay    bool          `env:"ENABLE_OUTBOX_RELAY" envDefault:"true"`
	EnableDeadlineAlerts bool          `env:"ENABLE_DEADLINE_ALERTS" envDefault:"true"`
	WorkerPollInterval   time.Duration `env:"WORKER_POLL_INTERVAL" envDefault:"30s"`
	WorkerBatchSize      int           `env:"WORKER_BATCH_SIZE" envDefault:"100"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
