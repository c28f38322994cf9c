package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "canje/contexts/marketplace/lifecycle-service/application"
	"canje/contexts/marketplace/lifecycle-service/domain/entities"
	domainerrors "canje/contexts/marketplace/lifecycle-service/domain/errors"
	"canje/contexts/marketplace/lifecycle-service/ports"
)

type SubmitMetricsCommand struct {
	DeliverableID string
	SubmittedAt   *time.Time
}

// SubmitMetricsUseCase stamps the performance-metrics submission. The
// producer may be the extraction pipeline or manual entry; this layer does
// not care. Metrics arriving before URL approval are tolerated: the
// timestamp is kept and completion happens when the review approves.
type SubmitMetricsUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc SubmitMetricsUseCase) Execute(ctx context.Context, cmd SubmitMetricsCommand) (entities.Deliverable, error) {
	logger := application.ResolveLogger(uc.Logger)

	item, err := uc.Repository.GetDeliverable(ctx, strings.TrimSpace(cmd.DeliverableID))
	if err != nil {
		return entities.Deliverable{}, err
	}
	if item.IsCancelled() || item.Status == entities.DeliverableStatusRejected {
		return entities.Deliverable{}, domainerrors.ErrInvalidTransition
	}

	now := uc.Clock.Now().UTC()
	submittedAt := now
	if cmd.SubmittedAt != nil {
		submittedAt = cmd.SubmittedAt.UTC()
	}
	item.MetricsSubmittedAt = &submittedAt
	if item.URLApproved() {
		item.Status = entities.DeliverableStatusCompleted
	}
	item.UpdatedAt = now
	if err := uc.Repository.UpdateDeliverable(ctx, item); err != nil {
		return entities.Deliverable{}, err
	}

	logger.Info("metrics submitted",
		"event", "deliverable_metrics_submitted",
		"module", "marketplace/lifecycle-service",
		"layer", "application",
		"deliverable_id", item.DeliverableID,
		"status", string(item.Status),
	)
	return item, nil
}
