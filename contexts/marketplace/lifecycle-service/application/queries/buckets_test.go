package queries

import (
	"testing"
	"time"

	"canje/contexts/marketplace/lifecycle-service/domain/entities"
)

func metricsAt(value time.Time) *time.Time {
	return &value
}

func TestBucketPredicatesAreExclusiveOutsideIssues(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		item entities.Deliverable
		want string
	}{
		{
			name: "fresh confirmation is pending",
			item: entities.Deliverable{Status: entities.DeliverableStatusAwaitingPublish},
			want: "pending",
		},
		{
			name: "url without metrics is pending",
			item: entities.Deliverable{
				Status:  entities.DeliverableStatusMetricsPending,
				PostURL: "https://example.com/p/1",
			},
			want: "pending",
		},
		{
			name: "url and metrics unrated is to_rate",
			item: entities.Deliverable{
				Status:             entities.DeliverableStatusCompleted,
				PostURL:            "https://example.com/p/1",
				MetricsSubmittedAt: metricsAt(now),
			},
			want: "to_rate",
		},
		{
			name: "rated is completed",
			item: entities.Deliverable{
				Status:             entities.DeliverableStatusCompleted,
				PostURL:            "https://example.com/p/1",
				MetricsSubmittedAt: metricsAt(now),
				BrandRating:        &entities.BrandRating{Rating: 5, RatedAt: now},
			},
			want: "completed",
		},
		{
			name: "cancelled with artifacts is only cancelled",
			item: entities.Deliverable{
				Status:             entities.DeliverableStatusCancelled,
				PostURL:            "https://example.com/p/1",
				MetricsSubmittedAt: metricsAt(now),
			},
			want: "cancelled",
		},
	}

	for _, tc := range cases {
		got := ""
		switch {
		case IsCancelled(tc.item):
			got = "cancelled"
		case IsReadyToRate(tc.item):
			got = "to_rate"
		case IsCompletedAndRated(tc.item):
			got = "completed"
		case IsPendingDelivery(tc.item):
			got = "pending"
		}
		if got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestHasReviewIssueOverlaysPending(t *testing.T) {
	item := entities.Deliverable{
		Status:  entities.DeliverableStatusChangesRequested,
		PostURL: "https://example.com/p/1",
	}
	if !HasReviewIssue(item) {
		t.Fatalf("changes_requested should flag an issue")
	}
	if !IsPendingDelivery(item) {
		t.Fatalf("changes_requested is still pending delivery")
	}

	item.Status = entities.DeliverableStatusCancelled
	if HasReviewIssue(item) {
		t.Fatalf("cancelled must never flag an issue")
	}
}

func TestBucketCounts(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []entities.Deliverable{
		{Status: entities.DeliverableStatusAwaitingPublish},
		{Status: entities.DeliverableStatusChangesRequested, PostURL: "https://example.com/1"},
		{
			Status:             entities.DeliverableStatusCompleted,
			PostURL:            "https://example.com/2",
			MetricsSubmittedAt: metricsAt(now),
		},
		{
			Status:             entities.DeliverableStatusCompleted,
			PostURL:            "https://example.com/3",
			MetricsSubmittedAt: metricsAt(now),
			BrandRating:        &entities.BrandRating{Rating: 4, RatedAt: now},
		},
		{Status: entities.DeliverableStatusCancelled, PostURL: "https://example.com/4"},
	}

	buckets := BucketCounts(items, false)
	if buckets.Total != 5 {
		t.Fatalf("total: got %d", buckets.Total)
	}
	if buckets.Pending != 2 {
		t.Fatalf("pending: expected 2, got %d", buckets.Pending)
	}
	if buckets.ToRate != 1 {
		t.Fatalf("to_rate: expected 1, got %d", buckets.ToRate)
	}
	if buckets.Completed != 1 {
		t.Fatalf("completed: expected 1, got %d", buckets.Completed)
	}
	if buckets.Cancelled != 1 {
		t.Fatalf("cancelled: expected 1, got %d", buckets.Cancelled)
	}
	if buckets.Issues != 1 {
		t.Fatalf("issues: expected 1, got %d", buckets.Issues)
	}

	// Non-cancelled buckets plus cancelled always cover the population.
	if buckets.Pending+buckets.ToRate+buckets.Completed+buckets.Cancelled != buckets.Total {
		t.Fatalf("buckets do not partition the total")
	}
}

func TestBucketCountsIncludeCancelledOnRequest(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []entities.Deliverable{
		{Status: entities.DeliverableStatusCancelled},
		{
			Status:             entities.DeliverableStatusCancelled,
			PostURL:            "https://example.com/1",
			MetricsSubmittedAt: metricsAt(now),
		},
		{
			Status:             entities.DeliverableStatusCancelled,
			PostURL:            "https://example.com/2",
			MetricsSubmittedAt: metricsAt(now),
			BrandRating:        &entities.BrandRating{Rating: 3, RatedAt: now},
		},
	}

	excluded := BucketCounts(items, false)
	if excluded.Cancelled != 3 || excluded.Pending != 0 || excluded.ToRate != 0 || excluded.Completed != 0 {
		t.Fatalf("cancelled rows leaked into active buckets: %+v", excluded)
	}

	included := BucketCounts(items, true)
	if included.Cancelled != 3 {
		t.Fatalf("cancelled count must not change: got %d", included.Cancelled)
	}
	if included.Pending != 1 {
		t.Fatalf("pending: expected 1, got %d", included.Pending)
	}
	if included.ToRate != 1 {
		t.Fatalf("to_rate: expected 1, got %d", included.ToRate)
	}
	if included.Completed != 1 {
		t.Fatalf("completed: expected 1, got %d", included.Completed)
	}
	if included.Issues != 0 {
		t.Fatalf("cancelled rows must never flag issues: got %d", included.Issues)
	}
}
