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

type SubmitPostCommand struct {
	DeliverableID string
	CreatorID     string
	PostURL       string
	InstagramURL  string
	TikTokURL     string
}

// SubmitPostUseCase records the creator's published post URL. A first
// submission moves the deliverable into review; a submission after a
// change request starts the next review round.
type SubmitPostUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc SubmitPostUseCase) Execute(ctx context.Context, cmd SubmitPostCommand) (entities.Deliverable, error) {
	logger := application.ResolveLogger(uc.Logger)

	if strings.TrimSpace(cmd.CreatorID) == "" {
		return entities.Deliverable{}, domainerrors.ErrUnauthorizedActor
	}

	item, err := uc.Repository.GetDeliverable(ctx, strings.TrimSpace(cmd.DeliverableID))
	if err != nil {
		return entities.Deliverable{}, err
	}

	postURL := strings.TrimSpace(cmd.PostURL)
	instagramURL := strings.TrimSpace(cmd.InstagramURL)
	tiktokURL := strings.TrimSpace(cmd.TikTokURL)
	if postURL == "" && instagramURL == "" && tiktokURL == "" {
		return entities.Deliverable{}, domainerrors.ErrInvalidDeliverableInput
	}

	now := uc.Clock.Now().UTC()
	switch item.Status {
	case entities.DeliverableStatusAwaitingPublish:
		item.Status = entities.DeliverableStatusSubmitted
	case entities.DeliverableStatusChangesRequested:
		item.Status = entities.DeliverableStatusResubmitted
		if item.ReviewRound < entities.MaxReviewRounds {
			item.ReviewRound++
		}
	default:
		return entities.Deliverable{}, domainerrors.ErrInvalidTransition
	}

	item.PostURL = postURL
	item.InstagramURL = instagramURL
	item.TikTokURL = tiktokURL
	item.UpdatedAt = now
	if err := uc.Repository.UpdateDeliverable(ctx, item); err != nil {
		return entities.Deliverable{}, err
	}

	logger.Info("post url submitted",
		"event", "deliverable_post_submitted",
		"module", "marketplace/lifecycle-service",
		"layer", "application",
		"deliverable_id", item.DeliverableID,
		"review_round", item.ReviewRound,
		"status", string(item.Status),
	)
	return item, nil
}
