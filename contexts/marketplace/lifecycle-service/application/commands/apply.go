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

type ApplyCommand struct {
	CampaignID string
	CreatorID  string
}

type ApplyUseCase struct {
	Repository ports.Repository
	Outbox     ports.OutboxWriter
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc ApplyUseCase) Execute(ctx context.Context, cmd ApplyCommand) (entities.Application, error) {
	logger := application.ResolveLogger(uc.Logger)

	if _, err := uc.Repository.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID)); err != nil {
		return entities.Application{}, err
	}

	applicationID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Application{}, err
	}
	now := uc.Clock.Now().UTC()
	item := entities.Application{
		ApplicationID: applicationID,
		CampaignID:    strings.TrimSpace(cmd.CampaignID),
		CreatorID:     strings.TrimSpace(cmd.CreatorID),
		Status:        entities.ApplicationStatusApplied,
		AppliedAt:     now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if !item.ValidateCreate() {
		return entities.Application{}, domainerrors.ErrInvalidApplicationInput
	}
	if err := uc.Repository.CreateApplication(ctx, item); err != nil {
		return entities.Application{}, err
	}

	if uc.Outbox != nil {
		envelope, err := newLifecycleEnvelope(applicationID, "application_created", item.CampaignID, now, map[string]any{
			"application_id": item.ApplicationID,
			"campaign_id":    item.CampaignID,
			"creator_id":     item.CreatorID,
		})
		if err != nil {
			return entities.Application{}, err
		}
		if err := uc.Outbox.AppendOutbox(ctx, envelope); err != nil {
			return entities.Application{}, err
		}
	}

	logger.Info("application created",
		"event", "application_created",
		"module", "marketplace/lifecycle-service",
		"layer", "application",
		"application_id", item.ApplicationID,
		"campaign_id", item.CampaignID,
		"creator_id", item.CreatorID,
	)
	return item, nil
}
