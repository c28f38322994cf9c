package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	application "canje/contexts/marketplace/lifecycle-service/application"
	"canje/contexts/marketplace/lifecycle-service/ports"
)

func decodeEnvelope(row ports.OutboxMessage) (ports.EventEnvelope, error) {
	var event ports.EventEnvelope
	err := json.Unmarshal(row.Payload, &event)
	return event, err
}

// OutboxRelay publishes pending lifecycle outbox rows to the event bus.
type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("lifecycle outbox list failed",
			"event", "lifecycle_outbox_list_failed",
			"module", "marketplace/lifecycle-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	for _, row := range pending {
		event, err := decodeEnvelope(row)
		if err != nil {
			logger.Error("lifecycle outbox decode failed",
				"event", "lifecycle_outbox_decode_failed",
				"module", "marketplace/lifecycle-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}

		topic := event.EventType
		if topic == "" {
			topic = row.EventType
		}
		if err := r.Publisher.Publish(ctx, topic, event); err != nil {
			logger.Error("lifecycle outbox publish failed",
				"event", "lifecycle_outbox_publish_failed",
				"module", "marketplace/lifecycle-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"event_id", event.EventID,
				"topic", topic,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Outbox.MarkOutboxPublished(ctx, row.OutboxID, now); err != nil {
			logger.Error("lifecycle outbox mark published failed",
				"event", "lifecycle_outbox_mark_published_failed",
				"module", "marketplace/lifecycle-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
	}

	if len(pending) > 0 {
		logger.Info("lifecycle outbox relay cycle completed",
			"event", "lifecycle_outbox_relay_completed",
			"module", "marketplace/lifecycle-service",
			"layer", "worker",
			"published_count", len(pending),
		)
	}
	return nil
}
