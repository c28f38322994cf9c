package httpadapter

import (
	"time"

	"canje/contexts/marketplace/lifecycle-service/application/queries"
	"canje/contexts/marketplace/lifecycle-service/domain/deadline"
	"canje/contexts/marketplace/lifecycle-service/domain/entities"
	httptransport "canje/contexts/marketplace/lifecycle-service/transport/http"
)

func mapCampaign(item entities.Campaign) httptransport.CampaignDTO {
	return httptransport.CampaignDTO{
		CampaignID:        item.CampaignID,
		BrandID:           item.BrandID,
		Title:             item.Title,
		Slots:             item.Slots,
		SlotsFilled:       item.SlotsFilled,
		AvailableSlots:    item.AvailableSlots(),
		URLWindowDays:     item.URLWindow(),
		MetricsWindowDays: item.MetricsWindow(),
	}
}

func mapApplication(item entities.Application) httptransport.ApplicationDTO {
	return httptransport.ApplicationDTO{
		ApplicationID: item.ApplicationID,
		CampaignID:    item.CampaignID,
		CreatorID:     item.CreatorID,
		Status:        string(item.Status),
		Reason:        item.Reason,
		AppliedAt:     item.AppliedAt.Format(time.RFC3339),
		UpdatedAt:     item.UpdatedAt.Format(time.RFC3339),
	}
}

func mapDeliverable(item entities.Deliverable) httptransport.DeliverableDTO {
	dto := httptransport.DeliverableDTO{
		DeliverableID: item.DeliverableID,
		ApplicationID: item.ApplicationID,
		CampaignID:    item.CampaignID,
		CreatorID:     item.CreatorID,
		Status:        string(item.Status),
		PostURL:       item.PostURL,
		InstagramURL:  item.InstagramURL,
		TikTokURL:     item.TikTokURL,
		ReviewRound:   item.ReviewRound,
	}
	if item.ConfirmedAt != nil {
		dto.ConfirmedAt = item.ConfirmedAt.Format(time.RFC3339)
	}
	if item.CancelledAt != nil {
		dto.CancelledAt = item.CancelledAt.Format(time.RFC3339)
	}
	if item.URLDeadline != nil {
		dto.URLDeadline = item.URLDeadline.Format(time.RFC3339)
	}
	if item.MetricsDeadline != nil {
		dto.MetricsDeadline = item.MetricsDeadline.Format(time.RFC3339)
	}
	if item.MetricsSubmittedAt != nil {
		dto.MetricsSubmittedAt = item.MetricsSubmittedAt.Format(time.RFC3339)
	}
	if item.BrandRating != nil {
		dto.BrandRating = &httptransport.RatingDTO{
			Rating:  item.BrandRating.Rating,
			Comment: item.BrandRating.Comment,
			RatedBy: item.BrandRating.RatedBy,
			RatedAt: item.BrandRating.RatedAt.Format(time.RFC3339),
		}
	}
	return dto
}

func mapDeadlineStatus(status deadline.Status) httptransport.DeadlineStatusDTO {
	dto := httptransport.DeadlineStatusDTO{
		Code:          string(status.Code),
		DaysRemaining: status.DaysRemaining,
		DaysLate:      status.DaysLate,
		Label:         status.Label,
	}
	if status.Deadline != nil {
		dto.Deadline = status.Deadline.Format(time.RFC3339)
	}
	return dto
}

func mapBuckets(buckets queries.Buckets) httptransport.BucketsResponse {
	return httptransport.BucketsResponse{
		Total:     buckets.Total,
		Pending:   buckets.Pending,
		ToRate:    buckets.ToRate,
		Completed: buckets.Completed,
		Cancelled: buckets.Cancelled,
		Issues:    buckets.Issues,
	}
}
