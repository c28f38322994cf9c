package entities

import (
	"strings"
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusConfirmed   ApplicationStatus = "confirmed"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusCancelled   ApplicationStatus = "cancelled"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"
)

// Application is the creator's entry for one campaign. One record per
// (campaign, creator) pair; never hard-deleted, only status changes.
type Application struct {
	ApplicationID string
	CampaignID    string
	CreatorID     string
	Status        ApplicationStatus
	Reason        string
	AppliedAt     time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (a Application) ValidateCreate() bool {
	return strings.TrimSpace(a.ApplicationID) != "" &&
		strings.TrimSpace(a.CampaignID) != "" &&
		strings.TrimSpace(a.CreatorID) != ""
}

// applicationTransitions is the full status graph. Rejected applications
// may be reactivated; cancelled and withdrawn are terminal.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusApplied:     {ApplicationStatusShortlisted, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusShortlisted: {ApplicationStatusConfirmed, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusConfirmed:   {ApplicationStatusCancelled},
	ApplicationStatusRejected:    {ApplicationStatusApplied},
	ApplicationStatusCancelled:   {},
	ApplicationStatusWithdrawn:   {},
}

func (a Application) CanTransition(target ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[a.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (a Application) IsTerminal() bool {
	return len(applicationTransitions[a.Status]) == 0
}

func IsSupportedApplicationStatus(value ApplicationStatus) bool {
	switch value {
	case ApplicationStatusApplied, ApplicationStatusShortlisted, ApplicationStatusConfirmed,
		ApplicationStatusRejected, ApplicationStatusCancelled, ApplicationStatusWithdrawn:
		return true
	default:
		return false
	}
}

// StateHistory is the audit row appended on every application transition.
type StateHistory struct {
	HistoryID     string
	ApplicationID string
	FromStatus    ApplicationStatus
	ToStatus      ApplicationStatus
	ChangedBy     string
	ChangeReason  string
	CreatedAt     time.Time
}
