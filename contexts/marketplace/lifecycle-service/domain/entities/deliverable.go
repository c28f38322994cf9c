package entities

import (
	"strings"
	"time"
)

type DeliverableStatus string

// approved and metrics_submitted are never assigned by the operations in
// this service: approval routes straight to metrics_pending or completed,
// and a metrics submission closes the deliverable in the same step. Both
// stay valid stored values so rows migrated from systems that persist the
// intermediate steps still classify correctly.
const (
	DeliverableStatusAwaitingPublish  DeliverableStatus = "awaiting_publish"
	DeliverableStatusSubmitted        DeliverableStatus = "submitted"
	DeliverableStatusResubmitted      DeliverableStatus = "resubmitted"
	DeliverableStatusChangesRequested DeliverableStatus = "changes_requested"
	DeliverableStatusApproved         DeliverableStatus = "approved"
	DeliverableStatusRejected         DeliverableStatus = "rejected"
	DeliverableStatusMetricsPending   DeliverableStatus = "metrics_pending"
	DeliverableStatusMetricsSubmitted DeliverableStatus = "metrics_submitted"
	DeliverableStatusCompleted        DeliverableStatus = "completed"
	DeliverableStatusCancelled        DeliverableStatus = "cancelled"
)

// MaxReviewRounds caps brand feedback cycles on a submitted post.
const MaxReviewRounds = 2

// Deliverable is the tracked unit of creator output for one confirmed
// application: a published post plus its later performance metrics.
type Deliverable struct {
	DeliverableID      string
	ApplicationID      string
	CampaignID         string
	CreatorID          string
	Status             DeliverableStatus
	ConfirmedAt        *time.Time
	CancelledAt        *time.Time
	PostURL            string
	InstagramURL       string
	TikTokURL          string
	URLDeadline        *time.Time
	MetricsDeadline    *time.Time
	MetricsSubmittedAt *time.Time
	ReviewRound        int
	BrandRating        *BrandRating
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasPostURL is true when any post link has been delivered.
func (d Deliverable) HasPostURL() bool {
	return strings.TrimSpace(d.PostURL) != "" ||
		strings.TrimSpace(d.InstagramURL) != "" ||
		strings.TrimSpace(d.TikTokURL) != ""
}

func (d Deliverable) HasMetrics() bool {
	return d.MetricsSubmittedAt != nil
}

func (d Deliverable) IsCancelled() bool {
	return d.Status == DeliverableStatusCancelled
}

// InReview reports whether a brand review decision is currently valid.
func (d Deliverable) InReview() bool {
	return d.Status == DeliverableStatusSubmitted || d.Status == DeliverableStatusResubmitted
}

// URLApproved reports whether the post URL has passed brand review.
func (d Deliverable) URLApproved() bool {
	switch d.Status {
	case DeliverableStatusApproved, DeliverableStatusMetricsPending,
		DeliverableStatusMetricsSubmitted, DeliverableStatusCompleted:
		return true
	default:
		return false
	}
}

func (d Deliverable) IsTerminal() bool {
	return d.Status == DeliverableStatusCancelled || d.Status == DeliverableStatusRejected
}

// BrandRating is the single star rating a brand leaves on a deliverable.
// Re-rating overwrites in place; there is no rating history.
type BrandRating struct {
	Rating    int
	Comment   string
	RatedBy   string
	RatedAt   time.Time
	UpdatedAt time.Time
}

func IsValidRating(value int) bool {
	return value >= 1 && value <= 5
}

type ReviewAction string

const (
	ReviewActionApprove        ReviewAction = "approve"
	ReviewActionRequestChanges ReviewAction = "request_changes"
	ReviewActionReject         ReviewAction = "reject"
)

func IsSupportedReviewAction(value ReviewAction) bool {
	switch value {
	case ReviewActionApprove, ReviewActionRequestChanges, ReviewActionReject:
		return true
	default:
		return false
	}
}

// ReviewNote is one entry in the ordered review log of a deliverable.
type ReviewNote struct {
	NoteID        string
	DeliverableID string
	Round         int
	Action        ReviewAction
	Notes         string
	AuthorID      string
	CreatedAt     time.Time
}
