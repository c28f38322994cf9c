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

type ReviewDeliverableCommand struct {
	DeliverableID string
	ActorID       string
	Action        entities.ReviewAction
	Notes         string
}

// ReviewDeliverableUseCase applies a brand review decision on a submitted
// post. Change requests are capped at MaxReviewRounds for the lifetime of
// the deliverable; the count of issued requests lives in the review log.
type ReviewDeliverableUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc ReviewDeliverableUseCase) Execute(ctx context.Context, cmd ReviewDeliverableCommand) (entities.Deliverable, error) {
	logger := application.ResolveLogger(uc.Logger)

	if strings.TrimSpace(cmd.ActorID) == "" {
		return entities.Deliverable{}, domainerrors.ErrUnauthorizedActor
	}
	if !entities.IsSupportedReviewAction(cmd.Action) {
		return entities.Deliverable{}, domainerrors.ErrInvalidDeliverableInput
	}

	item, err := uc.Repository.GetDeliverable(ctx, strings.TrimSpace(cmd.DeliverableID))
	if err != nil {
		return entities.Deliverable{}, err
	}
	if !item.InReview() {
		return entities.Deliverable{}, domainerrors.ErrInvalidTransition
	}

	now := uc.Clock.Now().UTC()
	switch cmd.Action {
	case entities.ReviewActionApprove:
		if item.HasMetrics() {
			item.Status = entities.DeliverableStatusCompleted
		} else {
			item.Status = entities.DeliverableStatusMetricsPending
		}

	case entities.ReviewActionRequestChanges:
		notes, err := uc.Repository.ListReviewNotes(ctx, item.DeliverableID)
		if err != nil {
			return entities.Deliverable{}, err
		}
		if countChangeRequests(notes) >= entities.MaxReviewRounds {
			return entities.Deliverable{}, domainerrors.ErrReviewRoundsExhausted
		}
		item.Status = entities.DeliverableStatusChangesRequested

	case entities.ReviewActionReject:
		item.Status = entities.DeliverableStatusRejected
	}

	item.UpdatedAt = now
	noteID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Deliverable{}, err
	}
	// Status and note land together: the round cap is counted from the
	// note log, so a decision without its note would corrupt the cap.
	if err := uc.Repository.RecordReviewDecision(ctx, item, entities.ReviewNote{
		NoteID:        noteID,
		DeliverableID: item.DeliverableID,
		Round:         item.ReviewRound,
		Action:        cmd.Action,
		Notes:         strings.TrimSpace(cmd.Notes),
		AuthorID:      strings.TrimSpace(cmd.ActorID),
		CreatedAt:     now,
	}); err != nil {
		return entities.Deliverable{}, err
	}

	logger.Info("deliverable reviewed",
		"event", "deliverable_reviewed",
		"module", "marketplace/lifecycle-service",
		"layer", "application",
		"deliverable_id", item.DeliverableID,
		"action", string(cmd.Action),
		"review_round", item.ReviewRound,
		"status", string(item.Status),
	)
	return item, nil
}

func countChangeRequests(notes []entities.ReviewNote) int {
	count := 0
	for _, note := range notes {
		if note.Action == entities.ReviewActionRequestChanges {
			count++
		}
	}
	return count
}
