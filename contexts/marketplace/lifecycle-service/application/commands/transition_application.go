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

const defaultRejectionReason = "not selected"

type TransitionApplicationCommand struct {
	ApplicationID string
	Target        entities.ApplicationStatus
	ActorID       string
	Reason        string
}

type TransitionResult struct {
	Application entities.Application
	Deliverable *entities.Deliverable
}

// TransitionApplicationUseCase moves an application through its status
// graph. Confirmation and cancellation go through the repository's atomic
// lifecycle operations because they touch campaign slot capacity.
type TransitionApplicationUseCase struct {
	Repository ports.Repository
	Outbox     ports.OutboxWriter
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger

	// ReleaseSlotOnCancel frees the consumed slot when a confirmed
	// application is cancelled. Policy flag; the product default keeps
	// the slot consumed.
	ReleaseSlotOnCancel bool
}

func (uc TransitionApplicationUseCase) Execute(ctx context.Context, cmd TransitionApplicationCommand) (TransitionResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	if strings.TrimSpace(cmd.ActorID) == "" {
		return TransitionResult{}, domainerrors.ErrUnauthorizedActor
	}
	if !entities.IsSupportedApplicationStatus(cmd.Target) {
		return TransitionResult{}, domainerrors.ErrInvalidApplicationInput
	}

	item, err := uc.Repository.GetApplication(ctx, strings.TrimSpace(cmd.ApplicationID))
	if err != nil {
		return TransitionResult{}, err
	}
	if !item.CanTransition(cmd.Target) {
		return TransitionResult{}, domainerrors.ErrInvalidTransition
	}

	now := uc.Clock.Now().UTC()
	fromStatus := item.Status
	result := TransitionResult{}

	switch cmd.Target {
	case entities.ApplicationStatusConfirmed:
		deliverableID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return TransitionResult{}, err
		}
		confirmed, err := uc.Repository.ConfirmApplication(ctx, item.ApplicationID, deliverableID, now)
		if err != nil {
			return TransitionResult{}, err
		}
		result.Application = confirmed.Application
		deliverable := confirmed.Deliverable
		result.Deliverable = &deliverable

	case entities.ApplicationStatusCancelled:
		cancelled, err := uc.Repository.CancelConfirmedApplication(
			ctx, item.ApplicationID, strings.TrimSpace(cmd.Reason), uc.ReleaseSlotOnCancel, now)
		if err != nil {
			return TransitionResult{}, err
		}
		result.Application = cancelled.Application
		deliverable := cancelled.Deliverable
		result.Deliverable = &deliverable

	case entities.ApplicationStatusRejected:
		item.Status = entities.ApplicationStatusRejected
		item.Reason = strings.TrimSpace(cmd.Reason)
		if item.Reason == "" {
			item.Reason = defaultRejectionReason
		}
		item.UpdatedAt = now
		if err := uc.Repository.UpdateApplication(ctx, item); err != nil {
			return TransitionResult{}, err
		}
		result.Application = item

	case entities.ApplicationStatusApplied:
		// Reactivation keeps all timestamps; only the reason is cleared.
		item.Status = entities.ApplicationStatusApplied
		item.Reason = ""
		item.UpdatedAt = now
		if err := uc.Repository.UpdateApplication(ctx, item); err != nil {
			return TransitionResult{}, err
		}
		result.Application = item

	default:
		item.Status = cmd.Target
		if reason := strings.TrimSpace(cmd.Reason); reason != "" {
			item.Reason = reason
		}
		item.UpdatedAt = now
		if err := uc.Repository.UpdateApplication(ctx, item); err != nil {
			return TransitionResult{}, err
		}
		result.Application = item
	}

	historyID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := uc.Repository.AppendStateHistory(ctx, entities.StateHistory{
		HistoryID:     historyID,
		ApplicationID: result.Application.ApplicationID,
		FromStatus:    fromStatus,
		ToStatus:      result.Application.Status,
		ChangedBy:     strings.TrimSpace(cmd.ActorID),
		ChangeReason:  result.Application.Reason,
		CreatedAt:     now,
	}); err != nil {
		return TransitionResult{}, err
	}

	if uc.Outbox != nil {
		eventID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return TransitionResult{}, err
		}
		data := map[string]any{
			"application_id": result.Application.ApplicationID,
			"campaign_id":    result.Application.CampaignID,
			"creator_id":     result.Application.CreatorID,
			"from_status":    string(fromStatus),
			"to_status":      string(result.Application.Status),
		}
		if result.Deliverable != nil {
			data["deliverable_id"] = result.Deliverable.DeliverableID
		}
		envelope, err := newLifecycleEnvelope(
			eventID, "application_"+string(result.Application.Status), result.Application.CampaignID, now, data)
		if err != nil {
			return TransitionResult{}, err
		}
		if err := uc.Outbox.AppendOutbox(ctx, envelope); err != nil {
			return TransitionResult{}, err
		}
	}

	logger.Info("application transitioned",
		"event", "application_transitioned",
		"module", "marketplace/lifecycle-service",
		"layer", "application",
		"application_id", result.Application.ApplicationID,
		"from_status", string(fromStatus),
		"to_status", string(result.Application.Status),
		"actor_id", strings.TrimSpace(cmd.ActorID),
	)
	return result, nil
}
