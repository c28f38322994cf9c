package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"canje/contexts/marketplace/lifecycle-service/application/commands"
	"canje/contexts/marketplace/lifecycle-service/application/queries"
	"canje/contexts/marketplace/lifecycle-service/domain/entities"
	domainerrors "canje/contexts/marketplace/lifecycle-service/domain/errors"
	httptransport "canje/contexts/marketplace/lifecycle-service/transport/http"
)

type Handler struct {
	CreateCampaign        commands.CreateCampaignUseCase
	Apply                 commands.ApplyUseCase
	TransitionApplication commands.TransitionApplicationUseCase
	SubmitPost            commands.SubmitPostUseCase
	ReviewDeliverable     commands.ReviewDeliverableUseCase
	SubmitMetrics         commands.SubmitMetricsUseCase
	ResetDeliverable      commands.ResetDeliverableUseCase
	RateDeliverable       commands.RateDeliverableUseCase
	Queries               queries.QueryUseCase
	Logger                *slog.Logger
}

func (h Handler) CreateCampaignHandler(
	ctx context.Context,
	brandID string,
	req httptransport.CreateCampaignRequest,
) (httptransport.CampaignResponse, error) {
	item, err := h.CreateCampaign.Execute(ctx, commands.CreateCampaignCommand{
		CampaignID:        req.CampaignID,
		BrandID:           brandID,
		Title:             req.Title,
		Slots:             req.Slots,
		URLWindowDays:     req.URLWindowDays,
		MetricsWindowDays: req.MetricsWindowDays,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(item)}, nil
}

func (h Handler) GetCampaignHandler(ctx context.Context, campaignID string) (httptransport.CampaignResponse, error) {
	item, err := h.Queries.GetCampaign(ctx, campaignID)
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(item)}, nil
}

func (h Handler) GetApplicationHandler(ctx context.Context, applicationID string) (httptransport.ApplicationResponse, error) {
	item, err := h.Queries.GetApplication(ctx, applicationID)
	if err != nil {
		return httptransport.ApplicationResponse{}, err
	}
	return httptransport.ApplicationResponse{Application: mapApplication(item)}, nil
}

func (h Handler) ApplyHandler(
	ctx context.Context,
	creatorID string,
	req httptransport.ApplyRequest,
) (httptransport.ApplicationResponse, error) {
	item, err := h.Apply.Execute(ctx, commands.ApplyCommand{
		CampaignID: req.CampaignID,
		CreatorID:  creatorID,
	})
	if err != nil {
		return httptransport.ApplicationResponse{}, err
	}
	return httptransport.ApplicationResponse{Application: mapApplication(item)}, nil
}

func (h Handler) TransitionApplicationHandler(
	ctx context.Context,
	actorID string,
	applicationID string,
	req httptransport.TransitionApplicationRequest,
) (httptransport.TransitionResponse, error) {
	result, err := h.TransitionApplication.Execute(ctx, commands.TransitionApplicationCommand{
		ApplicationID: applicationID,
		Target:        entities.ApplicationStatus(req.Target),
		ActorID:       actorID,
		Reason:        req.Reason,
	})
	if err != nil {
		return httptransport.TransitionResponse{}, err
	}
	resp := httptransport.TransitionResponse{Application: mapApplication(result.Application)}
	if result.Deliverable != nil {
		deliverable := mapDeliverable(*result.Deliverable)
		resp.Deliverable = &deliverable
	}
	return resp, nil
}

func (h Handler) SubmitPostHandler(
	ctx context.Context,
	creatorID string,
	deliverableID string,
	req httptransport.SubmitPostRequest,
) (httptransport.DeliverableResponse, error) {
	item, err := h.SubmitPost.Execute(ctx, commands.SubmitPostCommand{
		DeliverableID: deliverableID,
		CreatorID:     creatorID,
		PostURL:       req.PostURL,
		InstagramURL:  req.InstagramURL,
		TikTokURL:     req.TikTokURL,
	})
	if err != nil {
		return httptransport.DeliverableResponse{}, err
	}
	return httptransport.DeliverableResponse{Deliverable: mapDeliverable(item)}, nil
}

func (h Handler) ReviewHandler(
	ctx context.Context,
	actorID string,
	deliverableID string,
	req httptransport.ReviewRequest,
) (httptransport.DeliverableResponse, error) {
	item, err := h.ReviewDeliverable.Execute(ctx, commands.ReviewDeliverableCommand{
		DeliverableID: deliverableID,
		ActorID:       actorID,
		Action:        entities.ReviewAction(req.Action),
		Notes:         req.Notes,
	})
	if err != nil {
		return httptransport.DeliverableResponse{}, err
	}
	return httptransport.DeliverableResponse{Deliverable: mapDeliverable(item)}, nil
}

func (h Handler) SubmitMetricsHandler(
	ctx context.Context,
	deliverableID string,
	req httptransport.SubmitMetricsRequest,
) (httptransport.DeliverableResponse, error) {
	cmd := commands.SubmitMetricsCommand{DeliverableID: deliverableID}
	if req.SubmittedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.SubmittedAt)
		if err != nil {
			return httptransport.DeliverableResponse{}, domainerrors.ErrInvalidDeliverableInput
		}
		cmd.SubmittedAt = &parsed
	}
	item, err := h.SubmitMetrics.Execute(ctx, cmd)
	if err != nil {
		return httptransport.DeliverableResponse{}, err
	}
	return httptransport.DeliverableResponse{Deliverable: mapDeliverable(item)}, nil
}

func (h Handler) ResetDeliverableHandler(
	ctx context.Context,
	actorID string,
	deliverableID string,
	req httptransport.ResetDeliverableRequest,
) (httptransport.DeliverableResponse, error) {
	item, err := h.ResetDeliverable.Execute(ctx, commands.ResetDeliverableCommand{
		DeliverableID: deliverableID,
		ActorID:       actorID,
		URLs:          req.URLs,
		Metrics:       req.Metrics,
	})
	if err != nil {
		return httptransport.DeliverableResponse{}, err
	}
	return httptransport.DeliverableResponse{Deliverable: mapDeliverable(item)}, nil
}

func (h Handler) RateHandler(
	ctx context.Context,
	brandID string,
	deliverableID string,
	req httptransport.RateRequest,
) (httptransport.DeliverableResponse, error) {
	item, err := h.RateDeliverable.Execute(ctx, commands.RateDeliverableCommand{
		DeliverableID: deliverableID,
		BrandID:       brandID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		return httptransport.DeliverableResponse{}, err
	}
	return httptransport.DeliverableResponse{Deliverable: mapDeliverable(item)}, nil
}

func (h Handler) GetDeliverableHandler(ctx context.Context, deliverableID string) (httptransport.DeliverableResponse, error) {
	item, err := h.Queries.GetDeliverable(ctx, deliverableID)
	if err != nil {
		return httptransport.DeliverableResponse{}, err
	}
	return httptransport.DeliverableResponse{Deliverable: mapDeliverable(item)}, nil
}

func (h Handler) DeadlinesHandler(ctx context.Context, deliverableID string) (httptransport.DeadlineReportResponse, error) {
	report, err := h.Queries.DeadlineStatuses(ctx, deliverableID)
	if err != nil {
		return httptransport.DeadlineReportResponse{}, err
	}
	return httptransport.DeadlineReportResponse{
		DeliverableID: report.DeliverableID,
		URL:           mapDeadlineStatus(report.URL),
		Metrics:       mapDeadlineStatus(report.Metrics),
	}, nil
}

func (h Handler) ListApplicationsHandler(
	ctx context.Context,
	campaignID string,
	creatorID string,
	status string,
) (httptransport.ListApplicationsResponse, error) {
	items, err := h.Queries.ListApplications(ctx, queries.ListApplicationsQuery{
		CampaignID: campaignID,
		CreatorID:  creatorID,
		Status:     status,
	})
	if err != nil {
		return httptransport.ListApplicationsResponse{}, err
	}
	result := make([]httptransport.ApplicationDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapApplication(item))
	}
	return httptransport.ListApplicationsResponse{Items: result}, nil
}

func (h Handler) ListDeliverablesHandler(
	ctx context.Context,
	campaignID string,
	creatorID string,
	status string,
) (httptransport.ListDeliverablesResponse, error) {
	items, err := h.Queries.ListDeliverables(ctx, queries.ListDeliverablesQuery{
		CampaignID: campaignID,
		CreatorID:  creatorID,
		Status:     status,
	})
	if err != nil {
		return httptransport.ListDeliverablesResponse{}, err
	}
	result := make([]httptransport.DeliverableDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapDeliverable(item))
	}
	return httptransport.ListDeliverablesResponse{Items: result}, nil
}

func (h Handler) ListReviewNotesHandler(ctx context.Context, deliverableID string) (httptransport.ListReviewNotesResponse, error) {
	items, err := h.Queries.ListReviewNotes(ctx, deliverableID)
	if err != nil {
		return httptransport.ListReviewNotesResponse{}, err
	}
	result := make([]httptransport.ReviewNoteDTO, 0, len(items))
	for _, item := range items {
		result = append(result, httptransport.ReviewNoteDTO{
			NoteID:    item.NoteID,
			Round:     item.Round,
			Action:    string(item.Action),
			Notes:     item.Notes,
			AuthorID:  item.AuthorID,
			CreatedAt: item.CreatedAt.Format(time.RFC3339),
		})
	}
	return httptransport.ListReviewNotesResponse{Items: result}, nil
}

func (h Handler) CampaignBucketsHandler(
	ctx context.Context,
	campaignID string,
	includeCancelled bool,
) (httptransport.BucketsResponse, error) {
	buckets, err := h.Queries.CampaignBuckets(ctx, campaignID, includeCancelled)
	if err != nil {
		return httptransport.BucketsResponse{}, err
	}
	return mapBuckets(buckets), nil
}

func (h Handler) CreatorBucketsHandler(
	ctx context.Context,
	creatorID string,
	includeCancelled bool,
) (httptransport.BucketsResponse, error) {
	buckets, err := h.Queries.CreatorBuckets(ctx, creatorID, includeCancelled)
	if err != nil {
		return httptransport.BucketsResponse{}, err
	}
	return mapBuckets(buckets), nil
}
