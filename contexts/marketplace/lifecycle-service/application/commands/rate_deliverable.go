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

type RateDeliverableCommand struct {
	DeliverableID string
	BrandID       string
	Rating        int
	Comment       string
}

// RateDeliverableUseCase gates the brand star rating behind delivery
// completeness: post URL and metrics present, not cancelled. Re-rating
// overwrites in place.
type RateDeliverableUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc RateDeliverableUseCase) Execute(ctx context.Context, cmd RateDeliverableCommand) (entities.Deliverable, error) {
	logger := application.ResolveLogger(uc.Logger)

	if strings.TrimSpace(cmd.BrandID) == "" {
		return entities.Deliverable{}, domainerrors.ErrUnauthorizedActor
	}
	if !entities.IsValidRating(cmd.Rating) {
		return entities.Deliverable{}, domainerrors.ErrInvalidRating
	}

	item, err := uc.Repository.GetDeliverable(ctx, strings.TrimSpace(cmd.DeliverableID))
	if err != nil {
		return entities.Deliverable{}, err
	}
	if item.IsCancelled() || !item.HasPostURL() || !item.HasMetrics() {
		return entities.Deliverable{}, domainerrors.ErrNotReadyToRate
	}

	now := uc.Clock.Now().UTC()
	ratedAt := now
	if item.BrandRating != nil {
		ratedAt = item.BrandRating.RatedAt
	}
	item.BrandRating = &entities.BrandRating{
		Rating:    cmd.Rating,
		Comment:   strings.TrimSpace(cmd.Comment),
		RatedBy:   strings.TrimSpace(cmd.BrandID),
		RatedAt:   ratedAt,
		UpdatedAt: now,
	}
	item.UpdatedAt = now
	if err := uc.Repository.UpdateDeliverable(ctx, item); err != nil {
		return entities.Deliverable{}, err
	}

	logger.Info("deliverable rated",
		"event", "deliverable_rated",
		"module", "marketplace/lifecycle-service",
		"layer", "application",
		"deliverable_id", item.DeliverableID,
		"rating", cmd.Rating,
	)
	return item, nil
}
