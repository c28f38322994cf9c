package commands

import (
	"context"
	"log/slog"
	"strings"

	"canje/contexts/marketplace/lifecycle-service/application"
	"canje/contexts/marketplace/lifecycle-service/domain/entities"
	domainerrors "canje/contexts/marketplace/lifecycle-service/domain/errors"
	"canje/contexts/marketplace/lifecycle-service/ports"
)

type CreateCampaignCommand struct {
	CampaignID        string
	BrandID           string
	Title             string
	Slots             int
	URLWindowDays     int
	MetricsWindowDays int
}

type CreateCampaignUseCase struct {
	Repository ports.CampaignRepository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger

	// Deployment-level window defaults, stamped when the brand does not
	// choose windows explicitly. Zero falls through to the entity defaults.
	DefaultURLWindowDays     int
	DefaultMetricsWindowDays int
}

func (uc CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)

	if strings.TrimSpace(cmd.BrandID) == "" {
		return entities.Campaign{}, domainerrors.ErrUnauthorizedActor
	}

	campaignID := strings.TrimSpace(cmd.CampaignID)
	if campaignID == "" {
		generated, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return entities.Campaign{}, err
		}
		campaignID = generated
	}

	urlWindow := cmd.URLWindowDays
	if urlWindow <= 0 {
		urlWindow = uc.DefaultURLWindowDays
	}
	metricsWindow := cmd.MetricsWindowDays
	if metricsWindow <= 0 {
		metricsWindow = uc.DefaultMetricsWindowDays
	}

	now := uc.Clock.Now().UTC()
	campaign := entities.Campaign{
		CampaignID:        campaignID,
		BrandID:           strings.TrimSpace(cmd.BrandID),
		Title:             strings.TrimSpace(cmd.Title),
		Slots:             cmd.Slots,
		URLWindowDays:     urlWindow,
		MetricsWindowDays: metricsWindow,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if !campaign.ValidateCreate() {
		return entities.Campaign{}, domainerrors.ErrInvalidCampaignInput
	}
	if err := uc.Repository.CreateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}

	logger.Info("campaign created",
		"event", "campaign_created",
		"module", "lifecycle-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"brand_id", campaign.BrandID,
		"slots", campaign.Slots,
	)
	return campaign, nil
}
