package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"canje/contexts/marketplace/lifecycle-service/domain/entities"
	domainerrors "canje/contexts/marketplace/lifecycle-service/domain/errors"
	"canje/contexts/marketplace/lifecycle-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateCampaign(ctx context.Context, campaign entities.Campaign) error {
	row := campaignModelFromEntity(campaign)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidCampaignInput
		}
		return err
	}
	return nil
}

func (r *Repository) GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error) {
	var row campaignModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Campaign{}, domainerrors.ErrCampaignNotFound
		}
		return entities.Campaign{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateApplication(ctx context.Context, application entities.Application) error {
	row := applicationModelFromEntity(application)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateApplication(ctx context.Context, application entities.Application) error {
	result := r.db.WithContext(ctx).
		Model(&applicationModel{}).
		Where("application_id = ?", strings.TrimSpace(application.ApplicationID)).
		Updates(map[string]any{
			"status":     string(application.Status),
			"reason":     strings.TrimSpace(application.Reason),
			"updated_at": application.UpdatedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrApplicationNotFound
	}
	return nil
}

func (r *Repository) GetApplication(ctx context.Context, applicationID string) (entities.Application, error) {
	var row applicationModel
	err := r.db.WithContext(ctx).
		Where("application_id = ?", strings.TrimSpace(applicationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Application{}, domainerrors.ErrApplicationNotFound
		}
		return entities.Application{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListApplications(ctx context.Context, filter ports.ApplicationFilter) ([]entities.Application, error) {
	tx := r.db.WithContext(ctx).Model(&applicationModel{})
	if strings.TrimSpace(filter.CampaignID) != "" {
		tx = tx.Where("campaign_id = ?", strings.TrimSpace(filter.CampaignID))
	}
	if strings.TrimSpace(filter.CreatorID) != "" {
		tx = tx.Where("creator_id = ?", strings.TrimSpace(filter.CreatorID))
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}

	var rows []applicationModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Application, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateDeliverable(ctx context.Context, deliverable entities.Deliverable) error {
	result := r.db.WithContext(ctx).
		Model(&deliverableModel{}).
		Where("deliverable_id = ?", strings.TrimSpace(deliverable.DeliverableID)).
		Updates(deliverableUpdatesFromEntity(deliverable))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrDeliverableNotFound
	}
	return nil
}

func (r *Repository) GetDeliverable(ctx context.Context, deliverableID string) (entities.Deliverable, error) {
	var row deliverableModel
	err := r.db.WithContext(ctx).
		Where("deliverable_id = ?", strings.TrimSpace(deliverableID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Deliverable{}, domainerrors.ErrDeliverableNotFound
		}
		return entities.Deliverable{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetDeliverableByApplication(ctx context.Context, applicationID string) (entities.Deliverable, error) {
	var row deliverableModel
	err := r.db.WithContext(ctx).
		Where("application_id = ?", strings.TrimSpace(applicationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Deliverable{}, domainerrors.ErrDeliverableNotFound
		}
		return entities.Deliverable{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListDeliverables(ctx context.Context, filter ports.DeliverableFilter) ([]entities.Deliverable, error) {
	tx := r.db.WithContext(ctx).Model(&deliverableModel{})
	if strings.TrimSpace(filter.CampaignID) != "" {
		tx = tx.Where("campaign_id = ?", strings.TrimSpace(filter.CampaignID))
	}
	if strings.TrimSpace(filter.CreatorID) != "" {
		tx = tx.Where("creator_id = ?", strings.TrimSpace(filter.CreatorID))
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}

	var rows []deliverableModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Deliverable, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) RecordReviewDecision(
	ctx context.Context,
	deliverable entities.Deliverable,
	note entities.ReviewNote,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&deliverableModel{}).
			Where("deliverable_id = ?", strings.TrimSpace(deliverable.DeliverableID)).
			Updates(deliverableUpdatesFromEntity(deliverable))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrDeliverableNotFound
		}

		row := reviewNoteModel{
			NoteID:        strings.TrimSpace(note.NoteID),
			DeliverableID: strings.TrimSpace(note.DeliverableID),
			Round:         note.Round,
			Action:        string(note.Action),
			Notes:         strings.TrimSpace(note.Notes),
			AuthorID:      strings.TrimSpace(note.AuthorID),
			CreatedAt:     note.CreatedAt.UTC(),
		}
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrInvalidDeliverableInput
			}
			return err
		}
		return nil
	})
}

func (r *Repository) ListReviewNotes(ctx context.Context, deliverableID string) ([]entities.ReviewNote, error) {
	var rows []reviewNoteModel
	if err := r.db.WithContext(ctx).
		Where("deliverable_id = ?", strings.TrimSpace(deliverableID)).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.ReviewNote, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.ReviewNote{
			NoteID:        row.NoteID,
			DeliverableID: row.DeliverableID,
			Round:         row.Round,
			Action:        entities.ReviewAction(row.Action),
			Notes:         row.Notes,
			AuthorID:      row.AuthorID,
			CreatedAt:     row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) AppendStateHistory(ctx context.Context, item entities.StateHistory) error {
	row := stateHistoryModel{
		HistoryID:     strings.TrimSpace(item.HistoryID),
		ApplicationID: strings.TrimSpace(item.ApplicationID),
		FromStatus:    string(item.FromStatus),
		ToStatus:      string(item.ToStatus),
		ChangedBy:     strings.TrimSpace(item.ChangedBy),
		ChangeReason:  strings.TrimSpace(item.ChangeReason),
		CreatedAt:     item.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidApplicationInput
		}
		return err
	}
	return nil
}

// ConfirmApplication consumes one campaign slot and activates the
// deliverable in a single transaction. The campaign row is locked so
// concurrent confirmations on the same campaign serialize and
// available_slots can never go negative.
func (r *Repository) ConfirmApplication(
	ctx context.Context,
	applicationID string,
	deliverableID string,
	now time.Time,
) (ports.ConfirmResult, error) {
	result := ports.ConfirmResult{}
	timestamp := now.UTC()
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var applicationRow applicationModel
		if err := tx.Where("application_id = ?", strings.TrimSpace(applicationID)).
			First(&applicationRow).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrApplicationNotFound
			}
			return err
		}
		application := applicationRow.toEntity()
		if !application.CanTransition(entities.ApplicationStatusConfirmed) {
			return domainerrors.ErrInvalidTransition
		}

		var campaignRow campaignModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("campaign_id = ?", application.CampaignID).
			First(&campaignRow).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrCampaignNotFound
			}
			return err
		}
		campaign := campaignRow.toEntity()
		if !campaign.HasAvailableSlot() {
			return domainerrors.ErrSlotsExhausted
		}

		campaign.SlotsFilled++
		campaign.UpdatedAt = timestamp
		if err := tx.Model(&campaignModel{}).
			Where("campaign_id = ?", campaign.CampaignID).
			Updates(map[string]any{
				"slots_filled": campaign.SlotsFilled,
				"updated_at":   campaign.UpdatedAt,
			}).
			Error; err != nil {
			return err
		}

		application.Status = entities.ApplicationStatusConfirmed
		application.UpdatedAt = timestamp
		if err := tx.Model(&applicationModel{}).
			Where("application_id = ?", application.ApplicationID).
			Updates(map[string]any{
				"status":     string(application.Status),
				"updated_at": application.UpdatedAt,
			}).
			Error; err != nil {
			return err
		}

		confirmedAt := timestamp
		urlDeadline := timestamp.Add(time.Duration(campaign.URLWindow()) * 24 * time.Hour)
		metricsDeadline := timestamp.Add(time.Duration(campaign.MetricsWindow()) * 24 * time.Hour)
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
			CreatedAt:       timestamp,
			UpdatedAt:       timestamp,
		}
		deliverableRow := deliverableModelFromEntity(deliverable)
		if err := tx.Create(&deliverableRow).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrInvalidDeliverableInput
			}
			return err
		}

		result.Application = application
		result.Deliverable = deliverable
		result.SlotsFilled = campaign.SlotsFilled
		result.AvailableSlots = campaign.AvailableSlots()
		return nil
	})
	if err != nil {
		return ports.ConfirmResult{}, err
	}
	return result, nil
}

// CancelConfirmedApplication stamps the application and its deliverable
// cancelled in one transaction. Submitted artifacts are left untouched;
// the slot is released only when the policy asks for it.
func (r *Repository) CancelConfirmedApplication(
	ctx context.Context,
	applicationID string,
	reason string,
	releaseSlot bool,
	now time.Time,
) (ports.CancelResult, error) {
	result := ports.CancelResult{}
	timestamp := now.UTC()
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var applicationRow applicationModel
		if err := tx.Where("application_id = ?", strings.TrimSpace(applicationID)).
			First(&applicationRow).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrApplicationNotFound
			}
			return err
		}
		application := applicationRow.toEntity()
		if !application.CanTransition(entities.ApplicationStatusCancelled) {
			return domainerrors.ErrInvalidTransition
		}

		var campaignRow campaignModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("campaign_id = ?", application.CampaignID).
			First(&campaignRow).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrCampaignNotFound
			}
			return err
		}
		campaign := campaignRow.toEntity()

		application.Status = entities.ApplicationStatusCancelled
		application.Reason = strings.TrimSpace(reason)
		application.UpdatedAt = timestamp
		if err := tx.Model(&applicationModel{}).
			Where("application_id = ?", application.ApplicationID).
			Updates(map[string]any{
				"status":     string(application.Status),
				"reason":     application.Reason,
				"updated_at": application.UpdatedAt,
			}).
			Error; err != nil {
			return err
		}

		if releaseSlot && campaign.SlotsFilled > 0 {
			campaign.SlotsFilled--
			campaign.UpdatedAt = timestamp
			if err := tx.Model(&campaignModel{}).
				Where("campaign_id = ?", campaign.CampaignID).
				Updates(map[string]any{
					"slots_filled": campaign.SlotsFilled,
					"updated_at":   campaign.UpdatedAt,
				}).
				Error; err != nil {
				return err
			}
		}

		var deliverableRow deliverableModel
		err := tx.Where("application_id = ?", application.ApplicationID).
			First(&deliverableRow).
			Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			deliverable := deliverableRow.toEntity()
			cancelledAt := timestamp
			deliverable.Status = entities.DeliverableStatusCancelled
			deliverable.CancelledAt = &cancelledAt
			deliverable.UpdatedAt = timestamp
			if err := tx.Model(&deliverableModel{}).
				Where("deliverable_id = ?", deliverable.DeliverableID).
				Updates(map[string]any{
					"status":       string(deliverable.Status),
					"cancelled_at": deliverable.CancelledAt,
					"updated_at":   deliverable.UpdatedAt,
				}).
				Error; err != nil {
				return err
			}
			result.Deliverable = deliverable
		}

		result.Application = application
		result.SlotReleased = releaseSlot
		result.AvailableSlots = campaign.AvailableSlots()
		return nil
	})
	if err != nil {
		return ports.CancelResult{}, err
	}
	return result, nil
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	row := outboxModel{
		OutboxID:     strings.TrimSpace(envelope.EventID),
		EventType:    strings.TrimSpace(envelope.EventType),
		PartitionKey: strings.TrimSpace(envelope.PartitionKey),
		Payload:      payload,
		Status:       outboxStatusPending,
		CreatedAt:    envelope.OccurredAt.UTC(),
	}
	if row.OutboxID == "" {
		row.OutboxID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "outbox_id"}},
			DoNothing: true,
		}).
		Create(&row).
		Error
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      append([]byte(nil), row.Payload...),
			Status:       row.Status,
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt.UTC(),
		}).
		Error
}

func (r *Repository) ListOpenDeliverables(ctx context.Context, limit int) ([]entities.Deliverable, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []deliverableModel
	if err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []string{
			string(entities.DeliverableStatusCompleted),
			string(entities.DeliverableStatusCancelled),
			string(entities.DeliverableStatusRejected),
		}).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Deliverable, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

type campaignModel struct {
	CampaignID        string    `gorm:"column:campaign_id;primaryKey"`
	BrandID           string    `gorm:"column:brand_id"`
	Title             string    `gorm:"column:title"`
	Slots             int       `gorm:"column:slots"`
	SlotsFilled       int       `gorm:"column:slots_filled"`
	URLWindowDays     int       `gorm:"column:url_window_days"`
	MetricsWindowDays int       `gorm:"column:metrics_window_days"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (campaignModel) TableName() string {
	return "campaigns"
}

func campaignModelFromEntity(item entities.Campaign) campaignModel {
	return campaignModel{
		CampaignID:        strings.TrimSpace(item.CampaignID),
		BrandID:           strings.TrimSpace(item.BrandID),
		Title:             strings.TrimSpace(item.Title),
		Slots:             item.Slots,
		SlotsFilled:       item.SlotsFilled,
		URLWindowDays:     item.URLWindowDays,
		MetricsWindowDays: item.MetricsWindowDays,
		CreatedAt:         item.CreatedAt.UTC(),
		UpdatedAt:         item.UpdatedAt.UTC(),
	}
}

func (m campaignModel) toEntity() entities.Campaign {
	return entities.Campaign{
		CampaignID:        m.CampaignID,
		BrandID:           m.BrandID,
		Title:             m.Title,
		Slots:             m.Slots,
		SlotsFilled:       m.SlotsFilled,
		URLWindowDays:     m.URLWindowDays,
		MetricsWindowDays: m.MetricsWindowDays,
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
}

type applicationModel struct {
	ApplicationID string    `gorm:"column:application_id;primaryKey"`
	CampaignID    string    `gorm:"column:campaign_id;uniqueIndex:idx_applications_campaign_creator"`
	CreatorID     string    `gorm:"column:creator_id;uniqueIndex:idx_applications_campaign_creator"`
	Status        string    `gorm:"column:status"`
	Reason        string    `gorm:"column:reason"`
	AppliedAt     time.Time `gorm:"column:applied_at"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (applicationModel) TableName() string {
	return "applications"
}

func applicationModelFromEntity(item entities.Application) applicationModel {
	return applicationModel{
		ApplicationID: strings.TrimSpace(item.ApplicationID),
		CampaignID:    strings.TrimSpace(item.CampaignID),
		CreatorID:     strings.TrimSpace(item.CreatorID),
		Status:        string(item.Status),
		Reason:        strings.TrimSpace(item.Reason),
		AppliedAt:     item.AppliedAt.UTC(),
		CreatedAt:     item.CreatedAt.UTC(),
		UpdatedAt:     item.UpdatedAt.UTC(),
	}
}

func (m applicationModel) toEntity() entities.Application {
	return entities.Application{
		ApplicationID: m.ApplicationID,
		CampaignID:    m.CampaignID,
		CreatorID:     m.CreatorID,
		Status:        entities.ApplicationStatus(m.Status),
		Reason:        m.Reason,
		AppliedAt:     m.AppliedAt.UTC(),
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

type deliverableModel struct {
	DeliverableID      string     `gorm:"column:deliverable_id;primaryKey"`
	ApplicationID      string     `gorm:"column:application_id;uniqueIndex"`
	CampaignID         string     `gorm:"column:campaign_id"`
	CreatorID          string     `gorm:"column:creator_id"`
	Status             string     `gorm:"column:status"`
	ConfirmedAt        *time.Time `gorm:"column:confirmed_at"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
	URLDeadline        *time.Time `gorm:"column:url_deadline"`
	MetricsDeadline    *time.Time `gorm:"column:metrics_deadline"`
	MetricsSubmittedAt *time.Time `gorm:"column:metrics_submitted_at"`
	PostURL            string     `gorm:"column:post_url"`
	InstagramURL       string     `gorm:"column:instagram_url"`
	TikTokURL          string     `gorm:"column:tiktok_url"`
	ReviewRound        int        `gorm:"column:review_round"`
	Rating             *int       `gorm:"column:rating"`
	RatingComment      string     `gorm:"column:rating_comment"`
	RatedBy            string     `gorm:"column:rated_by"`
	RatedAt            *time.Time `gorm:"column:rated_at"`
	RatingUpdatedAt    *time.Time `gorm:"column:rating_updated_at"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (deliverableModel) TableName() string {
	return "deliverables"
}

func deliverableModelFromEntity(item entities.Deliverable) deliverableModel {
	row := deliverableModel{
		DeliverableID:      strings.TrimSpace(item.DeliverableID),
		ApplicationID:      strings.TrimSpace(item.ApplicationID),
		CampaignID:         strings.TrimSpace(item.CampaignID),
		CreatorID:          strings.TrimSpace(item.CreatorID),
		Status:             string(item.Status),
		ConfirmedAt:        normalizeOptionalTime(item.ConfirmedAt),
		CancelledAt:        normalizeOptionalTime(item.CancelledAt),
		URLDeadline:        normalizeOptionalTime(item.URLDeadline),
		MetricsDeadline:    normalizeOptionalTime(item.MetricsDeadline),
		MetricsSubmittedAt: normalizeOptionalTime(item.MetricsSubmittedAt),
		PostURL:            strings.TrimSpace(item.PostURL),
		InstagramURL:       strings.TrimSpace(item.InstagramURL),
		TikTokURL:          strings.TrimSpace(item.TikTokURL),
		ReviewRound:        item.ReviewRound,
		CreatedAt:          item.CreatedAt.UTC(),
		UpdatedAt:          item.UpdatedAt.UTC(),
	}
	if item.BrandRating != nil {
		rating := item.BrandRating.Rating
		row.Rating = &rating
		row.RatingComment = strings.TrimSpace(item.BrandRating.Comment)
		row.RatedBy = strings.TrimSpace(item.BrandRating.RatedBy)
		ratedAt := item.BrandRating.RatedAt.UTC()
		row.RatedAt = &ratedAt
		updatedAt := item.BrandRating.UpdatedAt.UTC()
		row.RatingUpdatedAt = &updatedAt
	}
	return row
}

func deliverableUpdatesFromEntity(item entities.Deliverable) map[string]any {
	row := deliverableModelFromEntity(item)
	return map[string]any{
		"status":               row.Status,
		"confirmed_at":         row.ConfirmedAt,
		"cancelled_at":         row.CancelledAt,
		"url_deadline":         row.URLDeadline,
		"metrics_deadline":     row.MetricsDeadline,
		"metrics_submitted_at": row.MetricsSubmittedAt,
		"post_url":             row.PostURL,
		"instagram_url":        row.InstagramURL,
		"tiktok_url":           row.TikTokURL,
		"review_round":         row.ReviewRound,
		"rating":               row.Rating,
		"rating_comment":       row.RatingComment,
		"rated_by":             row.RatedBy,
		"rated_at":             row.RatedAt,
		"rating_updated_at":    row.RatingUpdatedAt,
		"updated_at":           row.UpdatedAt,
	}
}

func (m deliverableModel) toEntity() entities.Deliverable {
	item := entities.Deliverable{
		DeliverableID:      m.DeliverableID,
		ApplicationID:      m.ApplicationID,
		CampaignID:         m.CampaignID,
		CreatorID:          m.CreatorID,
		Status:             entities.DeliverableStatus(m.Status),
		ConfirmedAt:        normalizeOptionalTime(m.ConfirmedAt),
		CancelledAt:        normalizeOptionalTime(m.CancelledAt),
		URLDeadline:        normalizeOptionalTime(m.URLDeadline),
		MetricsDeadline:    normalizeOptionalTime(m.MetricsDeadline),
		MetricsSubmittedAt: normalizeOptionalTime(m.MetricsSubmittedAt),
		PostURL:            m.PostURL,
		InstagramURL:       m.InstagramURL,
		TikTokURL:          m.TikTokURL,
		ReviewRound:        m.ReviewRound,
		CreatedAt:          m.CreatedAt.UTC(),
		UpdatedAt:          m.UpdatedAt.UTC(),
	}
	if m.Rating != nil && m.RatedAt != nil {
		rating := entities.BrandRating{
			Rating:  *m.Rating,
			Comment: m.RatingComment,
			RatedBy: m.RatedBy,
			RatedAt: m.RatedAt.UTC(),
		}
		if m.RatingUpdatedAt != nil {
			rating.UpdatedAt = m.RatingUpdatedAt.UTC()
		} else {
			rating.UpdatedAt = rating.RatedAt
		}
		item.BrandRating = &rating
	}
	return item
}

type reviewNoteModel struct {
	NoteID        string    `gorm:"column:note_id;primaryKey"`
	DeliverableID string    `gorm:"column:deliverable_id;index"`
	Round         int       `gorm:"column:round"`
	Action        string    `gorm:"column:action"`
	Notes         string    `gorm:"column:notes"`
	AuthorID      string    `gorm:"column:author_id"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (reviewNoteModel) TableName() string {
	return "deliverable_review_notes"
}

type stateHistoryModel struct {
	HistoryID     string    `gorm:"column:history_id;primaryKey"`
	ApplicationID string    `gorm:"column:application_id;index"`
	FromStatus    string    `gorm:"column:from_status"`
	ToStatus      string    `gorm:"column:to_status"`
	ChangedBy     string    `gorm:"column:changed_by"`
	ChangeReason  string    `gorm:"column:change_reason"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (stateHistoryModel) TableName() string {
	return "application_state_history"
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload;type:jsonb"`
	Status       string     `gorm:"column:status;index"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "lifecycle_outbox"
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	utc := value.UTC()
	return &utc
}
