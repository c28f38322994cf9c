package errors

import "errors"

var (
	ErrCampaignNotFound             = errors.New("campaign not found")
	ErrApplicationNotFound          = errors.New("application not found")
	ErrDeliverableNotFound          = errors.New("deliverable not found")
	ErrInvalidCampaignInput         = errors.New("invalid campaign input")
	ErrInvalidApplicationInput      = errors.New("invalid application input")
	ErrInvalidDeliverableInput      = errors.New("invalid deliverable input")
	ErrDuplicateApplication         = errors.New("creator already applied to campaign")
	ErrInvalidTransition            = errors.New("status transition not permitted")
	ErrSlotsExhausted               = errors.New("campaign has no available slots")
	ErrReviewRoundsExhausted        = errors.New("review rounds exhausted")
	ErrNotReadyToRate               = errors.New("deliverable is not ready to rate")
	ErrInvalidRating                = errors.New("rating must be between 1 and 5")
	ErrNothingToReset               = errors.New("nothing selected to reset")
	ErrMissingConfirmationTimestamp = errors.New("deliverable has no confirmation timestamp")
	ErrUnauthorizedActor            = errors.New("actor is not authorized")
)
