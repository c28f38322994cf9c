package ports

import (
	"context"
	"time"

	"canje/contexts/marketplace/lifecycle-service/domain/entities"
	"canje/internal/shared/events"
	"canje/internal/shared/outbox"
)

type ApplicationFilter struct {
	CampaignID string
	CreatorID  string
	Status     entities.ApplicationStatus
}

type DeliverableFilter struct {
	CampaignID string
	CreatorID  string
	Status     entities.DeliverableStatus
}

type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign entities.Campaign) error
	GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error)
}

type ApplicationRepository interface {
	CreateApplication(ctx context.Context, application entities.Application) error
	UpdateApplication(ctx context.Context, application entities.Application) error
	GetApplication(ctx context.Context, applicationID string) (entities.Application, error)
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]entities.Application, error)
}

type DeliverableRepository interface {
	UpdateDeliverable(ctx context.Context, deliverable entities.Deliverable) error
	GetDeliverable(ctx context.Context, deliverableID string) (entities.Deliverable, error)
	GetDeliverableByApplication(ctx context.Context, applicationID string) (entities.Deliverable, error)
	ListDeliverables(ctx context.Context, filter DeliverableFilter) ([]entities.Deliverable, error)
}

type ReviewLogRepository interface {
	ListReviewNotes(ctx context.Context, deliverableID string) ([]entities.ReviewNote, error)
	// RecordReviewDecision persists the reviewed deliverable and its log
	// entry as one all-or-nothing write. The change-request cap is counted
	// from the log, so a decision must never land without its note.
	RecordReviewDecision(ctx context.Context, deliverable entities.Deliverable, note entities.ReviewNote) error
}

type HistoryRepository interface {
	AppendStateHistory(ctx context.Context, item entities.StateHistory) error
}

// ConfirmResult reports the state stamped by an atomic confirmation.
type ConfirmResult struct {
	Application    entities.Application
	Deliverable    entities.Deliverable
	SlotsFilled    int
	AvailableSlots int
}

// CancelResult reports the state stamped by an atomic cancellation.
type CancelResult struct {
	Application    entities.Application
	Deliverable    entities.Deliverable
	SlotReleased   bool
	AvailableSlots int
}

// LifecycleRepository serializes the two operations that touch campaign
// slot capacity. Implementations must make each call all-or-nothing and
// must never let SlotsFilled exceed Slots or go below zero.
type LifecycleRepository interface {
	ConfirmApplication(ctx context.Context, applicationID string, deliverableID string, now time.Time) (ConfirmResult, error)
	CancelConfirmedApplication(ctx context.Context, applicationID string, reason string, releaseSlot bool, now time.Time) (CancelResult, error)
}

type Repository interface {
	CampaignRepository
	ApplicationRepository
	DeliverableRepository
	ReviewLogRepository
	HistoryRepository
	LifecycleRepository
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = events.Envelope

type OutboxMessage = outbox.Message

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

type EventSubscriber interface {
	Subscribe(
		ctx context.Context,
		topic string,
		consumerGroup string,
		handler func(context.Context, EventEnvelope) error,
	) error
}

// DeadlineRepository feeds the alert sweep with deliverables that still
// owe an artifact.
type DeadlineRepository interface {
	ListOpenDeliverables(ctx context.Context, limit int) ([]entities.Deliverable, error)
}
