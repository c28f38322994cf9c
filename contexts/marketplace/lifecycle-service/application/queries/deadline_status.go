package queries

import (
	"context"
	"strings"

	"canje/contexts/marketplace/lifecycle-service/domain/deadline"
	domainerrors "canje/contexts/marketplace/lifecycle-service/domain/errors"
)

// DeadlineReport is the time-pressure snapshot rendered identically for
// admins, brands, and creators.
type DeadlineReport struct {
	DeliverableID string
	URL           deadline.Status
	Metrics       deadline.Status
}

func (uc QueryUseCase) DeadlineStatuses(ctx context.Context, deliverableID string) (DeadlineReport, error) {
	item, err := uc.Repository.GetDeliverable(ctx, strings.TrimSpace(deliverableID))
	if err != nil {
		return DeadlineReport{}, err
	}

	urlWindow := 0
	metricsWindow := 0
	if campaign, err := uc.Repository.GetCampaign(ctx, item.CampaignID); err == nil {
		urlWindow = campaign.URLWindow()
		metricsWindow = campaign.MetricsWindow()
	}

	now := uc.Clock.Now().UTC()
	report := DeadlineReport{
		DeliverableID: item.DeliverableID,
		URL:           deadline.Evaluate(deadline.FromDeliverable(item, deadline.KindURL, urlWindow), deadline.KindURL, now),
		Metrics:       deadline.Evaluate(deadline.FromDeliverable(item, deadline.KindMetrics, metricsWindow), deadline.KindMetrics, now),
	}
	if report.URL.Code == deadline.CodeUnknown && report.Metrics.Code == deadline.CodeUnknown {
		return DeadlineReport{}, domainerrors.ErrMissingConfirmationTimestamp
	}
	return report, nil
}
