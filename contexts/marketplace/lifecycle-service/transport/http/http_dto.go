package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateCampaignRequest struct {
	CampaignID        string `json:"campaign_id"`
	Title             string `json:"title"`
	Slots             int    `json:"slots"`
	URLWindowDays     int    `json:"url_window_days,omitempty"`
	MetricsWindowDays int    `json:"metrics_window_days,omitempty"`
}

type ApplyRequest struct {
	CampaignID string `json:"campaign_id"`
}

type TransitionApplicationRequest struct {
	Target string `json:"target"`
	Reason string `json:"reason,omitempty"`
}

type SubmitPostRequest struct {
	PostURL      string `json:"post_url,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
	TikTokURL    string `json:"tiktok_url,omitempty"`
}

type ReviewRequest struct {
	Action string `json:"action"`
	Notes  string `json:"notes,omitempty"`
}

type SubmitMetricsRequest struct {
	SubmittedAt string `json:"submitted_at,omitempty"`
}

type ResetDeliverableRequest struct {
	URLs    bool `json:"urls"`
	Metrics bool `json:"metrics"`
}

type RateRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type CampaignDTO struct {
	CampaignID        string `json:"campaign_id"`
	BrandID           string `json:"brand_id"`
	Title             string `json:"title"`
	Slots             int    `json:"slots"`
	SlotsFilled       int    `json:"slots_filled"`
	AvailableSlots    int    `json:"available_slots"`
	URLWindowDays     int    `json:"url_window_days"`
	MetricsWindowDays int    `json:"metrics_window_days"`
}

type ApplicationDTO struct {
	ApplicationID string `json:"application_id"`
	CampaignID    string `json:"campaign_id"`
	CreatorID     string `json:"creator_id"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
	AppliedAt     string `json:"applied_at"`
	UpdatedAt     string `json:"updated_at"`
}

type RatingDTO struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
	RatedBy string `json:"rated_by"`
	RatedAt string `json:"rated_at"`
}

type DeliverableDTO struct {
	DeliverableID      string     `json:"deliverable_id"`
	ApplicationID      string     `json:"application_id"`
	CampaignID         string     `json:"campaign_id"`
	CreatorID          string     `json:"creator_id"`
	Status             string     `json:"status"`
	ConfirmedAt        string     `json:"confirmed_at,omitempty"`
	CancelledAt        string     `json:"cancelled_at,omitempty"`
	PostURL            string     `json:"post_url,omitempty"`
	InstagramURL       string     `json:"instagram_url,omitempty"`
	TikTokURL          string     `json:"tiktok_url,omitempty"`
	URLDeadline        string     `json:"url_deadline,omitempty"`
	MetricsDeadline    string     `json:"metrics_deadline,omitempty"`
	MetricsSubmittedAt string     `json:"metrics_submitted_at,omitempty"`
	ReviewRound        int        `json:"review_round"`
	BrandRating        *RatingDTO `json:"brand_rating,omitempty"`
}

type DeadlineStatusDTO struct {
	Code          string `json:"code"`
	DaysRemaining int    `json:"days_remaining"`
	DaysLate      int    `json:"days_late"`
	Label         string `json:"label"`
	Deadline      string `json:"deadline,omitempty"`
}

type DeadlineReportResponse struct {
	DeliverableID string            `json:"deliverable_id"`
	URL           DeadlineStatusDTO `json:"url"`
	Metrics       DeadlineStatusDTO `json:"metrics"`
}

type ReviewNoteDTO struct {
	NoteID    string `json:"note_id"`
	Round     int    `json:"round"`
	Action    string `json:"action"`
	Notes     string `json:"notes,omitempty"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
}

type CampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type ApplicationResponse struct {
	Application ApplicationDTO `json:"application"`
}

type TransitionResponse struct {
	Application ApplicationDTO  `json:"application"`
	Deliverable *DeliverableDTO `json:"deliverable,omitempty"`
}

type DeliverableResponse struct {
	Deliverable DeliverableDTO `json:"deliverable"`
}

type ListApplicationsResponse struct {
	Items []ApplicationDTO `json:"items"`
}

type ListDeliverablesResponse struct {
	Items []DeliverableDTO `json:"items"`
}

type ListReviewNotesResponse struct {
	Items []ReviewNoteDTO `json:"items"`
}

type BucketsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	ToRate    int `json:"to_rate"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Issues    int `json:"issues"`
}
