package commands

import (
	"context"
	"log/slog"
	"strings"

	application "canje/contexts/marketplace/lifecycle-service/application"
	"canje/contexts/marketplace/lifecycle-service/domain/entities"
	domainerrors "canje/contexts/marketplace/lifecycle-service/domain/errors"
	"canje/contexts/marketplace/lifecycle-service/ports"
)

type ResetDeliverableCommand struct {
	DeliverableID string
	ActorID       string
	URLs          bool
	Metrics       bool
}

// ResetDeliverableUseCase is the admin override that clears submitted
// artifacts. It never touches ReviewRound or CancelledAt.
type ResetDeliverableUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc ResetDeliverableUseCase) Execute(ctx context.Context, cmd ResetDeliverableCommand) (entities.Deliverable, error) {
	logger := application.ResolveLogger(uc.Logger)

	if strings.TrimSpace(cmd.ActorID) == "" {
		return entities.Deliverable{}, domainerrors.ErrUnauthorizedActor
	}
	if !cmd.URLs && !cmd.Metrics {
		return entities.Deliverable{}, domainerrors.ErrNothingToReset
	}

	item, err := uc.Repository.GetDeliverable(ctx, strings.TrimSpace(cmd.DeliverableID))
	if err != nil {
		return entities.Deliverable{}, err
	}
	if item.IsCancelled() {
		return entities.Deliverable{}, domainerrors.ErrInvalidTransition
	}

	if cmd.Metrics {
		item.MetricsSubmittedAt = nil
		if !cmd.URLs && item.URLApproved() {
			item.Status = entities.DeliverableStatusMetricsPending
		}
	}
	if cmd.URLs {
		item.PostURL = ""
		item.InstagramURL = ""
		item.TikTokURL = ""
		item.Status = entities.DeliverableStatusAwaitingPublish
	}

	item.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Repository.UpdateDeliverable(ctx, item); err != nil {
		return entities.Deliverable{}, err
	}

	logger.Info("deliverable reset",
		"event", "deliverable_reset",
		"module", "marketplace/lifecycle-service",
		"layer", "application",
		"deliverable_id", item.DeliverableID,
		"reset_urls", cmd.URLs,
		"reset_metrics", cmd.Metrics,
		"status", string(item.Status),
	)
	return item, nil
}
