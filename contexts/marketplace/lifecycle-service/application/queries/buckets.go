package queries

import (
	"context"
	"strings"

	application "canje/contexts/marketplace/lifecycle-service/application"
	"canje/contexts/marketplace/lifecycle-service/domain/entities"
	"canje/contexts/marketplace/lifecycle-service/ports"
)

// Classification predicates for dashboard filters. They derive everything
// from the four persisted facts (status, post URL, metrics timestamp,
// brand rating); no classification is ever stored.

func IsCancelled(d entities.Deliverable) bool {
	return d.IsCancelled()
}

func IsPendingDelivery(d entities.Deliverable) bool {
	return !d.IsCancelled() && (!d.HasPostURL() || !d.HasMetrics())
}

func IsReadyToRate(d entities.Deliverable) bool {
	return !d.IsCancelled() && d.HasPostURL() && d.HasMetrics() && d.BrandRating == nil
}

func IsCompletedAndRated(d entities.Deliverable) bool {
	return !d.IsCancelled() && d.HasPostURL() && d.HasMetrics() && d.BrandRating != nil
}

func HasReviewIssue(d entities.Deliverable) bool {
	return !d.IsCancelled() && d.Status == entities.DeliverableStatusChangesRequested
}

// Buckets holds dashboard counts. Cancelled deliverables are excluded
// from every other bucket; Issues overlays Pending for deliverables
// sitting in changes_requested.
type Buckets struct {
	Total     int
	Pending   int
	ToRate    int
	Completed int
	Cancelled int
	Issues    int
}

// BucketCounts classifies a deliverable population for dashboards. By
// default cancelled rows land only in Cancelled; includeCancelled also
// classifies them by their artifacts so a brand can audit what a
// cancelled engagement had already delivered.
func BucketCounts(items []entities.Deliverable, includeCancelled bool) Buckets {
	buckets := Buckets{Total: len(items)}
	for _, item := range items {
		if IsCancelled(item) {
			buckets.Cancelled++
			if !includeCancelled {
				continue
			}
			switch {
			case item.HasPostURL() && item.HasMetrics() && item.BrandRating == nil:
				buckets.ToRate++
			case item.HasPostURL() && item.HasMetrics():
				buckets.Completed++
			default:
				buckets.Pending++
			}
			continue
		}
		switch {
		case IsReadyToRate(item):
			buckets.ToRate++
		case IsCompletedAndRated(item):
			buckets.Completed++
		case IsPendingDelivery(item):
			buckets.Pending++
		}
		if HasReviewIssue(item) {
			buckets.Issues++
		}
	}
	return buckets
}

func (uc QueryUseCase) CampaignBuckets(ctx context.Context, campaignID string, includeCancelled bool) (Buckets, error) {
	items, err := uc.Repository.ListDeliverables(ctx, ports.DeliverableFilter{
		CampaignID: strings.TrimSpace(campaignID),
	})
	if err != nil {
		return Buckets{}, err
	}
	buckets := BucketCounts(items, includeCancelled)

	application.ResolveLogger(uc.Logger).Debug("campaign buckets computed",
		"event", "lifecycle_buckets_computed",
		"module", "marketplace/lifecycle-service",
		"layer", "application",
		"campaign_id", campaignID,
		"total", buckets.Total,
	)
	return buckets, nil
}

func (uc QueryUseCase) CreatorBuckets(ctx context.Context, creatorID string, includeCancelled bool) (Buckets, error) {
	items, err := uc.Repository.ListDeliverables(ctx, ports.DeliverableFilter{
		CreatorID: strings.TrimSpace(creatorID),
	})
	if err != nil {
		return Buckets{}, err
	}
	return BucketCounts(items, includeCancelled), nil
}
