package queries

import (
	"context"
	"log/slog"
	"strings"

	"canje/contexts/marketplace/lifecycle-service/domain/entities"
	"canje/contexts/marketplace/lifecycle-service/ports"
)

type ListApplicationsQuery struct {
	CampaignID string
	CreatorID  string
	Status     string
}

type ListDeliverablesQuery struct {
	CampaignID string
	CreatorID  string
	Status     string
}

type QueryUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc QueryUseCase) GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error) {
	return uc.Repository.GetCampaign(ctx, campaignID)
}

func (uc QueryUseCase) GetApplication(ctx context.Context, applicationID string) (entities.Application, error) {
	return uc.Repository.GetApplication(ctx, strings.TrimSpace(applicationID))
}

func (uc QueryUseCase) ListApplications(ctx context.Context, query ListApplicationsQuery) ([]entities.Application, error) {
	filter := ports.ApplicationFilter{
		CampaignID: strings.TrimSpace(query.CampaignID),
		CreatorID:  strings.TrimSpace(query.CreatorID),
	}
	if strings.TrimSpace(query.Status) != "" {
		filter.Status = entities.ApplicationStatus(strings.TrimSpace(query.Status))
	}
	return uc.Repository.ListApplications(ctx, filter)
}

func (uc QueryUseCase) GetDeliverable(ctx context.Context, deliverableID string) (entities.Deliverable, error) {
	return uc.Repository.GetDeliverable(ctx, strings.TrimSpace(deliverableID))
}

func (uc QueryUseCase) ListDeliverables(ctx context.Context, query ListDeliverablesQuery) ([]entities.Deliverable, error) {
	filter := ports.DeliverableFilter{
		CampaignID: strings.TrimSpace(query.CampaignID),
		CreatorID:  strings.TrimSpace(query.CreatorID),
	}
	if strings.TrimSpace(query.Status) != "" {
		filter.Status = entities.DeliverableStatus(strings.TrimSpace(query.Status))
	}
	return uc.Repository.ListDeliverables(ctx, filter)
}

func (uc QueryUseCase) ListReviewNotes(ctx context.Context, deliverableID string) ([]entities.ReviewNote, error) {
	return uc.Repository.ListReviewNotes(ctx, strings.TrimSpace(deliverableID))
}
