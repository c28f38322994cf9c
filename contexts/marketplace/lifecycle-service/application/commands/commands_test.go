package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"canje/contexts/marketplace/lifecycle-service/adapters/memory"
	"canje/contexts/marketplace/lifecycle-service/application/commands"
	"canje/contexts/marketplace/lifecycle-service/domain/entities"
	domainerrors "canje/contexts/marketplace/lifecycle-service/domain/errors"
)

type fixture struct {
	store      *memory.Store
	apply      commands.ApplyUseCase
	transition commands.TransitionApplicationUseCase
	submitPost commands.SubmitPostUseCase
	review     commands.ReviewDeliverableUseCase
	metrics    commands.SubmitMetricsUseCase
	reset      commands.ResetDeliverableUseCase
	rate       commands.RateDeliverableUseCase
}

func newFixture(t *testing.T, campaigns ...entities.Campaign) fixture {
	t.Helper()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store := memory.NewStore(campaigns)
	store.SetNow(&now)

	return fixture{
		store:      store,
		apply:      commands.ApplyUseCase{Repository: store, Outbox: store, Clock: store, IDGen: store},
		transition: commands.TransitionApplicationUseCase{Repository: store, Outbox: store, Clock: store, IDGen: store},
		submitPost: commands.SubmitPostUseCase{Repository: store, Clock: store},
		review:     commands.ReviewDeliverableUseCase{Repository: store, Clock: store, IDGen: store},
		metrics:    commands.SubmitMetricsUseCase{Repository: store, Clock: store},
		reset:      commands.ResetDeliverableUseCase{Repository: store, Clock: store},
		rate:       commands.RateDeliverableUseCase{Repository: store, Clock: store},
	}
}

func testCampaign(slots int) entities.Campaign {
	created := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	return entities.Campaign{
		CampaignID: "camp-1",
		BrandID:    "brand-1",
		Title:      "Summer launch",
		Slots:      slots,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func (f fixture) confirmedDeliverable(t *testing.T, creatorID string) (entities.Application, entities.Deliverable) {
	t.Helper()
	ctx := context.Background()

	app, err := f.apply.Execute(ctx, commands.ApplyCommand{CampaignID: "camp-1", CreatorID: creatorID})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := f.transition.Execute(ctx, commands.TransitionApplicationCommand{
		ApplicationID: app.ApplicationID,
		Target:        entities.ApplicationStatusShortlisted,
		ActorID:       "brand-1",
	}); err != nil {
		t.Fatalf("shortlist: %v", err)
	}
	result, err := f.transition.Execute(ctx, commands.TransitionApplicationCommand{
		ApplicationID: app.ApplicationID,
		Target:        entities.ApplicationStatusConfirmed,
		ActorID:       "brand-1",
	})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if result.Deliverable == nil {
		t.Fatalf("confirmation did not activate a deliverable")
	}
	return result.Application, *result.Deliverable
}

func TestApplyRequiresExistingCampaign(t *testing.T) {
	f := newFixture(t, testCampaign(2))

	_, err := f.apply.Execute(context.Background(), commands.ApplyCommand{CampaignID: "nope", CreatorID: "creator-1"})
	if !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestApplyRejectsDuplicate(t *testing.T) {
	f := newFixture(t, testCampaign(2))
	ctx := context.Background()

	if _, err := f.apply.Execute(ctx, commands.ApplyCommand{CampaignID: "camp-1", CreatorID: "creator-1"}); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	_, err := f.apply.Execute(ctx, commands.ApplyCommand{CampaignID: "camp-1", CreatorID: "creator-1"})
	if !errors.Is(err, domainerrors.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
}

func TestConfirmActivatesDeliverableAndConsumesSlot(t *testing.T) {
	f := newFixture(t, testCampaign(2))

	_, deliverable := f.confirmedDeliverable(t, "creator-1")

	if deliverable.Status != entities.DeliverableStatusAwaitingPublish {
		t.Fatalf("expected awaiting_publish, got %s", deliverable.Status)
	}
	if deliverable.ConfirmedAt == nil {
		t.Fatalf("confirmation timestamp missing")
	}
	if deliverable.ReviewRound != 1 {
		t.Fatalf("expected review round 1, got %d", deliverable.ReviewRound)
	}
	if deliverable.URLDeadline == nil || deliverable.MetricsDeadline == nil {
		t.Fatalf("deadlines not stamped")
	}
	wantURL := deliverable.ConfirmedAt.Add(7 * 24 * time.Hour)
	if !deliverable.URLDeadline.Equal(wantURL) {
		t.Fatalf("url deadline %v, want %v", deliverable.URLDeadline, wantURL)
	}
	wantMetrics := deliverable.ConfirmedAt.Add(14 * 24 * time.Hour)
	if !deliverable.MetricsDeadline.Equal(wantMetrics) {
		t.Fatalf("metrics deadline %v, want %v", deliverable.MetricsDeadline, wantMetrics)
	}

	campaign, err := f.store.GetCampaign(context.Background(), "camp-1")
	if err != nil {
		t.Fatalf("get campaign: %v", err)
	}
	if campaign.SlotsFilled != 1 {
		t.Fatalf("expected 1 slot filled, got %d", campaign.SlotsFilled)
	}
}

func TestConfirmFailsWhenSlotsExhausted(t *testing.T) {
	f := newFixture(t, testCampaign(1))
	ctx := context.Background()

	f.confirmedDeliverable(t, "creator-1")

	app2, err := f.apply.Execute(ctx, commands.ApplyCommand{CampaignID: "camp-1", CreatorID: "creator-2"})
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if _, err := f.transition.Execute(ctx, commands.TransitionApplicationCommand{
		ApplicationID: app2.ApplicationID,
		Target:        entities.ApplicationStatusShortlisted,
		ActorID:       "brand-1",
	}); err != nil {
		t.Fatalf("shortlist: %v", err)
	}

	_, err = f.transition.Execute(ctx, commands.TransitionApplicationCommand{
		ApplicationID: app2.ApplicationID,
		Target:        entities.ApplicationStatusConfirmed,
		ActorID:       "brand-1",
	})
	if !errors.Is(err, domainerrors.ErrSlotsExhausted) {
		t.Fatalf("expected ErrSlotsExhausted, got %v", err)
	}

	// The loser stays shortlisted.
	got, err := f.store.GetApplication(ctx, app2.ApplicationID)
	if err != nil {
		t.Fatalf("get application: %v", err)
	}
	if got.Status != entities.ApplicationStatusShortlisted {
		t.Fatalf("expected shortlisted after failed confirm, got %s", got.Status)
	}
}

func TestTransitionRequiresActor(t *testing.T) {
	f := newFixture(t, testCampaign(1))
	app, err := f.apply.Execute(context.Background(), commands.ApplyCommand{CampaignID: "camp-1", CreatorID: "creator-1"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	_, err = f.transition.Execute(context.Background(), commands.TransitionApplicationCommand{
		ApplicationID: app.ApplicationID,
		Target:        entities.ApplicationStatusShortlisted,
	})
	if !errors.Is(err, domainerrors.ErrUnauthorizedActor) {
		t.Fatalf("expected ErrUnauthorizedActor, got %v", err)
	}
}

func TestTransitionRejectsIllegalEdge(t *testing.T) {
	f := newFixture(t, testCampaign(1))
	app, err := f.apply.Execute(context.Background(), commands.ApplyCommand{CampaignID: "camp-1", CreatorID: "creator-1"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	_, err = f.transition.Execute(context.Background(), commands.TransitionApplicationCommand{
		ApplicationID: app.ApplicationID,
		Target:        entities.ApplicationStatusConfirmed,
		ActorID:       "brand-1",
	})
	if !errors.Is(err, domainerrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for applied->confirmed, got %v", err)
	}
}

func TestRejectDefaultsReasonAndReactivationClearsIt(t *testing.T) {
	f := newFixture(t, testCampaign(1))
	ctx := context.Background()

	app, err := f.apply.Execute(ctx, commands.ApplyCommand{CampaignID: "camp-1", CreatorID: "creator-1"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	rejected, err := f.transition.Execute(ctx, commands.TransitionApplicationCommand{
		ApplicationID: app.ApplicationID,
		Target:        entities.ApplicationStatusRejected,
		ActorID:       "brand-1",
	})
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Application.Reason != "not selected" {
		t.Fatalf("expected default rejection reason, got %q", rejected.Application.Reason)
	}

	reactivated, err := f.transition.Execute(ctx, commands.TransitionApplicationCommand{
		ApplicationID: app.ApplicationID,
		Target:        entities.ApplicationStatusApplied,
		ActorID:       "brand-1",
	})
	if err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	if reactivated.Application.Reason != "" {
		t.Fatalf("expected cleared reason, got %q", reactivated.Application.Reason)
	}
	if !reactivated.Application.AppliedAt.Equal(app.AppliedAt) {
		t.Fatalf("reactivation must keep the original applied_at")
	}
}

func TestCancelStampsDeliverableAndKeepsSlot(t *testing.T) {
	f := newFixture(t, testCampaign(1))
	ctx := context.Background()

	app, deliverable := f.confirmedDeliverable(t, "creator-1")

	// The creator already published; cancellation must not erase that.
	if _, err := f.submitPost.Execute(ctx, commands.SubmitPostCommand{
		DeliverableID: deliverable.DeliverableID,
		CreatorID:     "creator-1",
		PostURL:       "https://example.com/p/1",
	}); err != nil {
		t.Fatalf("submit post: %v", err)
	}

	cancelled, err := f.transition.Execute(ctx, commands.TransitionApplicationCommand{
		ApplicationID: app.ApplicationID,
		Target:        entities.ApplicationStatusCancelled,
		ActorID:       "brand-1",
		Reason:        "creator unavailable",
	})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Application.Reason != "creator unavailable" {
		t.Fatalf("reason not stored: %q", cancelled.Application.Reason)
	}
	if cancelled.Deliverable == nil || cancelled.Deliverable.Status != entities.DeliverableStatusCancelled {
		t.Fatalf("deliverable not cancelled")
	}
	if cancelled.Deliverable.CancelledAt == nil {
		t.Fatalf("cancellation timestamp missing")
	}
	if cancelled.Deliverable.PostURL != "https://example.com/p/1" {
		t.Fatalf("submitted URL erased on cancel")
	}

	campaign, err := f.store.GetCampaign(ctx, "camp-1")
	if err != nil {
		t.Fatalf("get campaign: %v", err)
	}
	if campaign.SlotsFilled != 1 {
		t.Fatalf("slot released despite default policy, filled=%d", campaign.SlotsFilled)
	}
}

func TestCancelReleasesSlotWhenPolicyEnabled(t *testing.T) {
	f := newFixture(t, testCampaign(1))
	f.transition.ReleaseSlotOnCancel = true
	ctx := context.Background()

	app, _ := f.confirmedDeliverable(t, "creator-1")

	if _, err := f.transition.Execute(ctx, commands.TransitionApplicationCommand{
		ApplicationID: app.ApplicationID,
		Target:        entities.ApplicationStatusCancelled,
		ActorID:       "brand-1",
	}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	campaign, err := f.store.GetCampaign(ctx, "camp-1")
	if err != nil {
		t.Fatalf("get campaign: %v", err)
	}
	if campaign.SlotsFilled != 0 {
		t.Fatalf("expected slot released, filled=%d", campaign.SlotsFilled)
	}
}

func TestSubmitPostNeedsAtLeastOneURL(t *testing.T) {
	f := newFixture(t, testCampaign(1))
	_, deliverable := f.confirmedDeliverable(t, "creator-1")

	_, err := f.submitPost.Execute(context.Background(), commands.SubmitPostCommand{
		DeliverableID: deliverable.DeliverableID,
		CreatorID:     "creator-1",
	})
	if !errors.Is(err, domainerrors.ErrInvalidDeliverableInput) {
		t.Fatalf("expected ErrInvalidDeliverableInput, got %v", err)
	}
}

func TestReviewRoundsAreCapped(t *testing.T) {
	f := newFixture(t, testCampaign(1))
	ctx := context.Background()
	_, deliverable := f.confirmedDeliverable(t, "creator-1")

	submit := func() {
		t.Helper()
		if _, err := f.submitPost.Execute(ctx, commands.SubmitPostCommand{
			DeliverableID: deliverable.DeliverableID,
			CreatorID:     "creator-1",
			InstagramURL:  "https://instagram.com/p/x",
		}); err != nil {
			t.Fatalf("submit post: %v", err)
		}
	}
	requestChanges := func() error {
		_, err := f.review.Execute(ctx, commands.ReviewDeliverableCommand{
			DeliverableID: deliverable.DeliverableID,
			ActorID:       "brand-1",
			Action:        entities.ReviewActionRequestChanges,
			Notes:         "tighten the hook",
		})
		return err
	}

	submit()
	if err := requestChanges(); err != nil {
		t.Fatalf("first change request: %v", err)
	}
	submit()
	if err := requestChanges(); err != nil {
		t.Fatalf("second change request: %v", err)
	}
	submit()

	item, err := f.store.GetDeliverable(ctx, deliverable.DeliverableID)
	if err != nil {
		t.Fatalf("get deliverable: %v", err)
	}
	if item.ReviewRound != entities.MaxReviewRounds {
		t.Fatalf("expected review round capped at %d, got %d", entities.MaxReviewRounds, item.ReviewRound)
	}

	if err := requestChanges(); !errors.Is(err, domainerrors.ErrReviewRoundsExhausted) {
		t.Fatalf("expected ErrReviewRoundsExhausted on third request, got %v", err)
	}

	// Approve and reject remain available after the cap.
	approved, err := f.review.Execute(ctx, commands.ReviewDeliverableCommand{
		DeliverableID: deliverable.DeliverableID,
		ActorID:       "brand-1",
		Action:        entities.ReviewActionApprove,
	})
	if err != nil {
		t.Fatalf("approve after cap: %v", err)
	}
	if approved.Status != entities.DeliverableStatusMetricsPending {
		t.Fatalf("expected metrics_pending, got %s", approved.Status)
	}

	notes, err := f.store.ListReviewNotes(ctx, deliverable.DeliverableID)
	if err != nil {
		t.Fatalf("list notes: %v", err)
	}
	if len(notes) != 3 {
		t.Fatalf("expected 3 review notes, got %d", len(notes))
	}
}

func TestReviewDecisionLandsWithItsNote(t *testing.T) {
	f := newFixture(t, testCampaign(1))
	ctx := context.Background()
	_, deliverable := f.confirmedDeliverable(t, "creator-1")

	if _, err := f.submitPost.Execute(ctx, commands.SubmitPostCommand{
		DeliverableID: deliverable.DeliverableID,
		CreatorID:     "creator-1",
		PostURL:       "https://example.com/p/1",
	}); err != nil {
		t.Fatalf("submit post: %v", err)
	}
	if _, err := f.review.Execute(ctx, commands.ReviewDeliverableCommand{
		DeliverableID: deliverable.DeliverableID,
		ActorID:       "brand-1",
		Action:        entities.ReviewActionRequestChanges,
		Notes:         "swap the thumbnail",
	}); err != nil {
		t.Fatalf("review: %v", err)
	}

	notes, err := f.store.ListReviewNotes(ctx, deliverable.DeliverableID)
	if err != nil {
		t.Fatalf("list notes: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected exactly one note with the decision, got %d", len(notes))
	}

	// A decision that cannot be persisted must leave no note behind,
	// otherwise the change-request count drifts from reality.
	err = f.store.RecordReviewDecision(ctx, entities.Deliverable{
		DeliverableID: "ghost",
		Status:        entities.DeliverableStatusChangesRequested,
	}, entities.ReviewNote{
		NoteID:        "note-ghost",
		DeliverableID: "ghost",
		Action:        entities.ReviewActionRequestChanges,
	})
	if !errors.Is(err, domainerrors.ErrDeliverableNotFound) {
		t.Fatalf("expected ErrDeliverableNotFound, got %v", err)
	}
	ghostNotes, err := f.store.ListReviewNotes(ctx, "ghost")
	if err != nil {
		t.Fatalf("list ghost notes: %v", err)
	}
	if len(ghostNotes) != 0 {
		t.Fatalf("failed decision persisted a note: %d", len(ghostNotes))
	}
}

func TestApproveWithMetricsAlreadyPresentCompletes(t *testing.T) {
	f := newFixture(t, testCampaign(1))
	ctx := context.Background()
	_, deliverable := f.confirmedDeliverable(t, "creator-1")

	if _, err := f.submitPost.Execute(ctx, commands.SubmitPostCommand{
		DeliverableID: deliverable.DeliverableID,
		CreatorID:     "creator-1",
		PostURL:       "https://example.com/p/1",
	}); err != nil {
		t.Fatalf("submit post: %v", err)
	}
	// Metrics land while the post is still under review.
	if _, err := f.metrics.Execute(ctx, commands.SubmitMetricsCommand{
		DeliverableID: deliverable.DeliverableID,
	}); err != nil {
		t.Fatalf("submit metrics: %v", err)
	}

	item, err := f.store.GetDeliverable(ctx, deliverable.DeliverableID)
	if err != nil {
		t.Fatalf("get deliverable: %v", err)
	}
	if item.Status != entities.DeliverableStatusSubmitted {
		t.Fatalf("early metrics must not advance review state, got %s", item.Status)
	}

	approved, err := f.review.Execute(ctx, commands.ReviewDeliverableCommand{
		DeliverableID: deliverable.DeliverableID,
		ActorID:       "brand-1",
		Action:        entities.ReviewActionApprove,
	})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != entities.DeliverableStatusCompleted {
		t.Fatalf("expected completed, got %s", approved.Status)
	}
}

func TestMetricsAfterApprovalCompletes(t *testing.T) {
	f := newFixture(t, testCampaign(1))
	ctx := context.Background()
	_, deliverable := f.confirmedDeliverable(t, "creator-1")

	if _, err := f.submitPost.Execute(ctx, commands.SubmitPostCommand{
		DeliverableID: deliverable.DeliverableID,
		CreatorID:     "creator-1",
		PostURL:       "https://example.com/p/1",
	}); err != nil {
		t.Fatalf("submit post: %v", err)
	}
	if _, err := f.review.Execute(ctx, commands.ReviewDeliverableCommand{
		DeliverableID: deliverable.DeliverableID,
		ActorID:       "brand-1",
		Action:        entities.ReviewActionApprove,
	}); err != nil {
		t.Fatalf("approve: %v", err)
	}

	completed, err := f.metrics.Execute(ctx, commands.SubmitMetricsCommand{
		DeliverableID: deliverable.DeliverableID,
	})
	if err != nil {
		t.Fatalf("submit metrics: %v", err)
	}
	if completed.Status != entities.DeliverableStatusCompleted {
		t.Fatalf("expected completed, got %s", completed.Status)
	}
	if completed.MetricsSubmittedAt == nil {
		t.Fatalf("metrics timestamp missing")
	}
}

func TestRatingGate(t *testing.T) {
	f := newFixture(t, testCampaign(1))
	ctx := context.Background()
	_, deliverable := f.confirmedDeliverable(t, "creator-1")

	_, err := f.rate.Execute(ctx, commands.RateDeliverableCommand{
		DeliverableID: deliverable.DeliverableID,
		BrandID:       "brand-1",
		Rating:        5,
	})
	if !errors.Is(err, domainerrors.ErrNotReadyToRate) {
		t.Fatalf("expected ErrNotReadyToRate before URL+metrics, got %v", err)
	}

	if _, err := f.submitPost.Execute(ctx, commands.SubmitPostCommand{
		DeliverableID: deliverable.DeliverableID,
		CreatorID:     "creator-1",
		PostURL:       "https://example.com/p/1",
	}); err != nil {
		t.Fatalf("submit post: %v", err)
	}
	if _, err := f.review.Execute(ctx, commands.ReviewDeliverableCommand{
		DeliverableID: deliverable.DeliverableID,
		ActorID:       "brand-1",
		Action:        entities.ReviewActionApprove,
	}); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := f.metrics.Execute(ctx, commands.SubmitMetricsCommand{
		DeliverableID: deliverable.DeliverableID,
	}); err != nil {
		t.Fatalf("submit metrics: %v", err)
	}

	_, err = f.rate.Execute(ctx, commands.RateDeliverableCommand{
		DeliverableID: deliverable.DeliverableID,
		BrandID:       "brand-1",
		Rating:        9,
	})
	if !errors.Is(err, domainerrors.ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating, got %v", err)
	}

	rated, err := f.rate.Execute(ctx, commands.RateDeliverableCommand{
		DeliverableID: deliverable.DeliverableID,
		BrandID:       "brand-1",
		Rating:        4,
		Comment:       "solid work",
	})
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if rated.BrandRating == nil || rated.BrandRating.Rating != 4 {
		t.Fatalf("rating not stored")
	}

	// Re-rating overwrites in place and keeps the first rated_at.
	firstRatedAt := rated.BrandRating.RatedAt
	rerated, err := f.rate.Execute(ctx, commands.RateDeliverableCommand{
		DeliverableID: deliverable.DeliverableID,
		BrandID:       "brand-1",
		Rating:        2,
	})
	if err != nil {
		t.Fatalf("re-rate: %v", err)
	}
	if rerated.BrandRating.Rating != 2 {
		t.Fatalf("re-rating not applied")
	}
	if !rerated.BrandRating.RatedAt.Equal(firstRatedAt) {
		t.Fatalf("re-rating must keep original rated_at")
	}
}

func TestResetClearsArtifacts(t *testing.T) {
	f := newFixture(t, testCampaign(1))
	ctx := context.Background()
	_, deliverable := f.confirmedDeliverable(t, "creator-1")

	if _, err := f.submitPost.Execute(ctx, commands.SubmitPostCommand{
		DeliverableID: deliverable.DeliverableID,
		CreatorID:     "creator-1",
		PostURL:       "https://example.com/p/1",
	}); err != nil {
		t.Fatalf("submit post: %v", err)
	}
	if _, err := f.review.Execute(ctx, commands.ReviewDeliverableCommand{
		DeliverableID: deliverable.DeliverableID,
		ActorID:       "brand-1",
		Action:        entities.ReviewActionApprove,
	}); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := f.metrics.Execute(ctx, commands.SubmitMetricsCommand{
		DeliverableID: deliverable.DeliverableID,
	}); err != nil {
		t.Fatalf("submit metrics: %v", err)
	}

	_, err := f.reset.Execute(ctx, commands.ResetDeliverableCommand{
		DeliverableID: deliverable.DeliverableID,
		ActorID:       "admin-1",
	})
	if !errors.Is(err, domainerrors.ErrNothingToReset) {
		t.Fatalf("expected ErrNothingToReset with no flags, got %v", err)
	}

	metricsOnly, err := f.reset.Execute(ctx, commands.ResetDeliverableCommand{
		DeliverableID: deliverable.DeliverableID,
		ActorID:       "admin-1",
		Metrics:       true,
	})
	if err != nil {
		t.Fatalf("reset metrics: %v", err)
	}
	if metricsOnly.MetricsSubmittedAt != nil {
		t.Fatalf("metrics timestamp not cleared")
	}
	if metricsOnly.Status != entities.DeliverableStatusMetricsPending {
		t.Fatalf("expected metrics_pending after metrics reset, got %s", metricsOnly.Status)
	}
	if metricsOnly.PostURL == "" {
		t.Fatalf("metrics reset must not touch URLs")
	}

	full, err := f.reset.Execute(ctx, commands.ResetDeliverableCommand{
		DeliverableID: deliverable.DeliverableID,
		ActorID:       "admin-1",
		URLs:          true,
	})
	if err != nil {
		t.Fatalf("reset urls: %v", err)
	}
	if full.PostURL != "" || full.InstagramURL != "" || full.TikTokURL != "" {
		t.Fatalf("URLs not cleared")
	}
	if full.Status != entities.DeliverableStatusAwaitingPublish {
		t.Fatalf("expected awaiting_publish, got %s", full.Status)
	}
	if full.ReviewRound != 1 {
		t.Fatalf("reset must not touch review round, got %d", full.ReviewRound)
	}
}

func TestCreateCampaignValidation(t *testing.T) {
	f := newFixture(t)

	create := commands.CreateCampaignUseCase{Repository: f.store, Clock: f.store, IDGen: f.store}

	_, err := create.Execute(context.Background(), commands.CreateCampaignCommand{
		BrandID: "brand-1",
		Title:   "No capacity",
		Slots:   0,
	})
	if !errors.Is(err, domainerrors.ErrInvalidCampaignInput) {
		t.Fatalf("expected ErrInvalidCampaignInput for zero slots, got %v", err)
	}

	campaign, err := create.Execute(context.Background(), commands.CreateCampaignCommand{
		BrandID:       "brand-1",
		Title:         "Fall push",
		Slots:         3,
		URLWindowDays: 5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if campaign.CampaignID == "" {
		t.Fatalf("expected generated campaign id")
	}
	if campaign.URLWindow() != 5 {
		t.Fatalf("override window lost")
	}
}

func TestCreateCampaignAppliesConfiguredWindowDefaults(t *testing.T) {
	f := newFixture(t)

	create := commands.CreateCampaignUseCase{
		Repository:               f.store,
		Clock:                    f.store,
		IDGen:                    f.store,
		DefaultURLWindowDays:     10,
		DefaultMetricsWindowDays: 21,
	}

	campaign, err := create.Execute(context.Background(), commands.CreateCampaignCommand{
		BrandID: "brand-1",
		Title:   "Winter push",
		Slots:   2,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if campaign.URLWindowDays != 10 {
		t.Fatalf("expected configured url window 10, got %d", campaign.URLWindowDays)
	}
	if campaign.MetricsWindowDays != 21 {
		t.Fatalf("expected configured metrics window 21, got %d", campaign.MetricsWindowDays)
	}

	// An explicit request wins over the deployment default.
	campaign, err = create.Execute(context.Background(), commands.CreateCampaignCommand{
		BrandID:       "brand-1",
		Title:         "Spring push",
		Slots:         2,
		URLWindowDays: 4,
	})
	if err != nil {
		t.Fatalf("create with override: %v", err)
	}
	if campaign.URLWindowDays != 4 {
		t.Fatalf("expected explicit window 4, got %d", campaign.URLWindowDays)
	}
}
