package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	application "canje/contexts/marketplace/lifecycle-service/application"
	"canje/contexts/marketplace/lifecycle-service/domain/deadline"
	"canje/contexts/marketplace/lifecycle-service/domain/entities"
	"canje/contexts/marketplace/lifecycle-service/ports"

	"github.com/google/uuid"
)

// DeadlineAlerter sweeps open deliverables and emits alert events for
// gates that turned urgent or late. Notification fan-out is external;
// this worker only announces.
type DeadlineAlerter struct {
	Deliverables ports.DeadlineRepository
	Campaigns    ports.CampaignRepository
	Publisher    ports.EventPublisher
	Clock        ports.Clock
	BatchSize    int
	Logger       *slog.Logger
}

func (j DeadlineAlerter) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(j.Logger)
	now := time.Now().UTC()
	if j.Clock != nil {
		now = j.Clock.Now().UTC()
	}

	limit := j.BatchSize
	if limit <= 0 {
		limit = 100
	}

	items, err := j.Deliverables.ListOpenDeliverables(ctx, limit)
	if err != nil {
		logger.Error("deadline alert sweep failed",
			"event", "lifecycle_deadline_sweep_failed",
			"module", "marketplace/lifecycle-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	alerted := 0
	windows := map[string]entities.Campaign{}
	for _, item := range items {
		campaign, cached := windows[item.CampaignID]
		if !cached && j.Campaigns != nil {
			if found, err := j.Campaigns.GetCampaign(ctx, item.CampaignID); err == nil {
				campaign = found
			}
			windows[item.CampaignID] = campaign
		}
		for _, kind := range []deadline.Kind{deadline.KindURL, deadline.KindMetrics} {
			window := campaign.URLWindowDays
			if kind == deadline.KindMetrics {
				window = campaign.MetricsWindowDays
			}
			status := deadline.Evaluate(deadline.FromDeliverable(item, kind, window), kind, now)
			if status.Code != deadline.CodeUrgent && status.Code != deadline.CodeLate {
				continue
			}
			if err := j.publishAlert(ctx, item, kind, status, now); err != nil {
				return err
			}
			alerted++
		}
	}

	if alerted > 0 {
		logger.Info("deadline alert sweep completed",
			"event", "lifecycle_deadline_sweep_completed",
			"module", "marketplace/lifecycle-service",
			"layer", "worker",
			"alert_count", alerted,
		)
	}
	return nil
}

func (j DeadlineAlerter) publishAlert(
	ctx context.Context,
	item entities.Deliverable,
	kind deadline.Kind,
	status deadline.Status,
	now time.Time,
) error {
	payload, err := json.Marshal(map[string]any{
		"deliverable_id": item.DeliverableID,
		"campaign_id":    item.CampaignID,
		"creator_id":     item.CreatorID,
		"kind":           string(kind),
		"code":           string(status.Code),
		"days_remaining": status.DaysRemaining,
		"days_late":      status.DaysLate,
	})
	if err != nil {
		return err
	}
	return j.Publisher.Publish(ctx, "deliverable_deadline_alert", ports.EventEnvelope{
		EventID:       uuid.NewString(),
		EventType:     "deliverable_deadline_alert",
		OccurredAt:    now,
		SourceService: "lifecycle-service",
		SchemaVersion: 1,
		PartitionKey:  item.CampaignID,
		Data:          payload,
	})
}
