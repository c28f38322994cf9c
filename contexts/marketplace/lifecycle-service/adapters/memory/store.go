package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"canje/contexts/marketplace/lifecycle-service/domain/entities"
	domainerrors "canje/contexts/marketplace/lifecycle-service/domain/errors"
	"canje/contexts/marketplace/lifecycle-service/ports"

	"github.com/google/uuid"
)

// Store is the in-memory adapter used for module tests and local wiring.
// One mutex serializes everything, which also satisfies the single-writer
// requirement on campaign slot capacity.
type Store struct {
	mu sync.RWMutex

	campaigns    map[string]entities.Campaign
	applications map[string]entities.Application
	deliverables map[string]entities.Deliverable
	reviewNotes  map[string][]entities.ReviewNote
	history      []entities.StateHistory
	outbox       []ports.OutboxMessage

	now *time.Time
}

func NewStore(campaigns []entities.Campaign) *Store {
	seeded := make(map[string]entities.Campaign, len(campaigns))
	for _, item := range campaigns {
		seeded[item.CampaignID] = item
	}
	return &Store{
		campaigns:    seeded,
		applications: make(map[string]entities.Application),
		deliverables: make(map[string]entities.Deliverable),
		reviewNotes:  make(map[string][]entities.ReviewNote),
	}
}

// SetNow pins the clock for deterministic tests; nil restores wall time.
func (s *Store) SetNow(now *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) CreateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !campaign.ValidateCreate() {
		return domainerrors.ErrInvalidCampaignInput
	}
	s.campaigns[campaign.CampaignID] = campaign
	return nil
}

func (s *Store) GetCampaign(_ context.Context, campaignID string) (entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.campaigns[strings.TrimSpace(campaignID)]
	if !exists {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return item, nil
}

func (s *Store) CreateApplication(_ context.Context, application entities.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.applications {
		if existing.CampaignID == application.CampaignID && existing.CreatorID == application.CreatorID {
			return domainerrors.ErrDuplicateApplication
		}
	}
	s.applications[application.ApplicationID] = application
	return nil
}

func (s *Store) UpdateApplication(_ context.Context, application entities.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.applications[application.ApplicationID]; !exists {
		return domainerrors.ErrApplicationNotFound
	}
	s.applications[application.ApplicationID] = application
	return nil
}

func (s *Store) GetApplication(_ context.Context, applicationID string) (entities.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.applications[strings.TrimSpace(applicationID)]
	if !exists {
		return entities.Application{}, domainerrors.ErrApplicationNotFound
	}
	return item, nil
}

func (s *Store) ListApplications(_ context.Context, filter ports.ApplicationFilter) ([]entities.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Application, 0, len(s.applications))
	for _, item := range s.applications {
		if strings.TrimSpace(filter.CampaignID) != "" && item.CampaignID != strings.TrimSpace(filter.CampaignID) {
			continue
		}
		if strings.TrimSpace(filter.CreatorID) != "" && item.CreatorID != strings.TrimSpace(filter.CreatorID) {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) UpdateDeliverable(_ context.Context, deliverable entities.Deliverable) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.deliverables[deliverable.DeliverableID]; !exists {
		return domainerrors.ErrDeliverableNotFound
	}
	s.deliverables[deliverable.DeliverableID] = deliverable
	return nil
}

func (s *Store) GetDeliverable(_ context.Context, deliverableID string) (entities.Deliverable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.deliverables[strings.TrimSpace(deliverableID)]
	if !exists {
		return entities.Deliverable{}, domainerrors.ErrDeliverableNotFound
	}
	return item, nil
}

func (s *Store) GetDeliverableByApplication(_ context.Context, applicationID string) (entities.Deliverable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.deliverables {
		if item.ApplicationID == strings.TrimSpace(applicationID) {
			return item, nil
		}
	}
	return entities.Deliverable{}, domainerrors.ErrDeliverableNotFound
}

func (s *Store) ListDeliverables(_ context.Context, filter ports.DeliverableFilter) ([]entities.Deliverable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Deliverable, 0, len(s.deliverables))
	for _, item := range s.deliverables {
		if strings.TrimSpace(filter.CampaignID) != "" && item.CampaignID != strings.TrimSpace(filter.CampaignID) {
			continue
		}
		if strings.TrimSpace(filter.CreatorID) != "" && item.CreatorID != strings.TrimSpace(filter.CreatorID) {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) RecordReviewDecision(_ context.Context, deliverable entities.Deliverable, note entities.ReviewNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.deliverables[deliverable.DeliverableID]; !exists {
		return domainerrors.ErrDeliverableNotFound
	}
	s.deliverables[deliverable.DeliverableID] = deliverable
	s.reviewNotes[note.DeliverableID] = append(s.reviewNotes[note.DeliverableID], note)
	return nil
}

func (s *Store) ListReviewNotes(_ context.Context, deliverableID string) ([]entities.ReviewNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := s.reviewNotes[strings.TrimSpace(deliverableID)]
	return append([]entities.ReviewNote(nil), notes...), nil
}

func (s *Store) AppendStateHistory(_ context.Context, item entities.StateHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, item)
	return nil
}

func (s *Store) ConfirmApplication(
	_ context.Context,
	applicationID string,
	deliverableID string,
	now time.Time,
) (ports.ConfirmResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	application, exists := s.applications[strings.TrimSpace(applicationID)]
	if !exists {
		return ports.ConfirmResult{}, domainerrors.ErrApplicationNotFound
	}
	if !application.CanTransition(entities.ApplicationStatusConfirmed) {
		return ports.ConfirmResult{}, domainerrors.ErrInvalidTransition
	}
	campaign, exists := s.campaigns[application.CampaignID]
	if !exists {
		return ports.ConfirmResult{}, domainerrors.ErrCampaignNotFound
	}
	if !campaign.HasAvailableSlot() {
		return ports.ConfirmResult{}, domainerrors.ErrSlotsExhausted
	}

	campaign.SlotsFilled++
	campaign.UpdatedAt = now
	s.campaigns[campaign.CampaignID] = campaign

	application.Status = entities.ApplicationStatusConfirmed
	application.UpdatedAt = now
	s.applications[application.ApplicationID] = application

	confirmedAt := now
	urlDeadline := now.Add(time.Duration(campaign.URLWindow()) * 24 * time.Hour)
	metricsDeadline := now.Add(time.Duration(campaign.MetricsWindow()) * 24 * time.Hour)
	deliverable := entities.Deliverable{
		DeliverableID:   strings.TrimSpace(deliverableID),
		ApplicationID:   application.ApplicationID,
		CampaignID:      application.CampaignID,
		CreatorID:       application.CreatorID,
		Status:          entities.DeliverableStatusAwaitingPublish,
		ConfirmedAt:     &confirmedAt,
		URLDeadline:     &urlDeadline,
		MetricsDeadline: &metricsDeadline,
		ReviewRound:     1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.deliverables[deliverable.DeliverableID] = deliverable

	return ports.ConfirmResult{
		Application:    application,
		Deliverable:    deliverable,
		SlotsFilled:    campaign.SlotsFilled,
		AvailableSlots: campaign.AvailableSlots(),
	}, nil
}

func (s *Store) CancelConfirmedApplication(
	_ context.Context,
	applicationID string,
	reason string,
	releaseSlot bool,
	now time.Time,
) (ports.CancelResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	application, exists := s.applications[strings.TrimSpace(applicationID)]
	if !exists {
		return ports.CancelResult{}, domainerrors.ErrApplicationNotFound
	}
	if !application.CanTransition(entities.ApplicationStatusCancelled) {
		return ports.CancelResult{}, domainerrors.ErrInvalidTransition
	}
	campaign, exists := s.campaigns[application.CampaignID]
	if !exists {
		return ports.CancelResult{}, domainerrors.ErrCampaignNotFound
	}

	application.Status = entities.ApplicationStatusCancelled
	application.Reason = strings.TrimSpace(reason)
	application.UpdatedAt = now
	s.applications[application.ApplicationID] = application

	if releaseSlot && campaign.SlotsFilled > 0 {
		campaign.SlotsFilled--
		campaign.UpdatedAt = now
		s.campaigns[campaign.CampaignID] = campaign
	}

	var deliverable entities.Deliverable
	for _, item := range s.deliverables {
		if item.ApplicationID == application.ApplicationID {
			cancelledAt := now
			item.Status = entities.DeliverableStatusCancelled
			item.CancelledAt = &cancelledAt
			item.UpdatedAt = now
			s.deliverables[item.DeliverableID] = item
			deliverable = item
			break
		}
	}

	return ports.CancelResult{
		Application:    application,
		Deliverable:    deliverable,
		SlotReleased:   releaseSlot,
		AvailableSlots: campaign.AvailableSlots(),
	}, nil
}

func (s *Store) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.outbox = append(s.outbox, ports.OutboxMessage{
		OutboxID:     envelope.EventID,
		EventType:    envelope.EventType,
		PartitionKey: envelope.PartitionKey,
		Payload:      payload,
		Status:       "pending",
		CreatedAt:    envelope.OccurredAt,
	})
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.OutboxMessage, 0, limit)
	for _, row := range s.outbox {
		if row.Status != "pending" {
			continue
		}
		items = append(items, row)
		if len(items) == limit {
			break
		}
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.outbox {
		if s.outbox[i].OutboxID == outboxID {
			s.outbox[i].Status = "published"
			return nil
		}
	}
	return nil
}

func (s *Store) ListOpenDeliverables(_ context.Context, limit int) ([]entities.Deliverable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Deliverable, 0, limit)
	for _, item := range s.deliverables {
		if item.IsTerminal() || item.Status == entities.DeliverableStatusCompleted {
			continue
		}
		items = append(items, item)
		if len(items) == limit {
			break
		}
	}
	return items, nil
}

func (s *Store) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.now != nil {
		return *s.now
	}
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
