// Package deadline computes the submission-deadline status shown for a
// deliverable's two gates (post URL, then performance metrics). Every
// surface renders from this one calculation; presentation layers must not
// reimplement the thresholds.
package deadline

import (
	"fmt"
	"math"
	"time"

	"canje/contexts/marketplace/lifecycle-service/domain/entities"
)

type Kind string

const (
	KindURL     Kind = "url"
	KindMetrics Kind = "metrics"
)

type Code string

const (
	CodeCompleted     Code = "completed"
	CodeOK            Code = "ok"
	CodeCaution       Code = "caution"
	CodeWarning       Code = "warning"
	CodeUrgent        Code = "urgent"
	CodeLate          Code = "late"
	CodeCancelled     Code = "cancelled"
	CodeCancelledLate Code = "cancelled_late"
	CodeUnknown       Code = "unknown"
)

// Thresholds is the severity ladder in days remaining, most severe first.
// A zero Caution disables that bucket for the kind.
type Thresholds struct {
	Urgent  int
	Warning int
	Caution int
}

// URLThresholds escalates sooner because the URL window is shorter.
var URLThresholds = Thresholds{Urgent: 2, Warning: 5}

var MetricsThresholds = Thresholds{Urgent: 1, Warning: 3, Caution: 5}

func (k Kind) thresholds() Thresholds {
	if k == KindMetrics {
		return MetricsThresholds
	}
	return URLThresholds
}

// Input is the slice of deliverable state the calculation reads. Keeping
// it a value type keeps Evaluate referentially transparent.
type Input struct {
	Deadline    *time.Time
	ConfirmedAt *time.Time
	CreatedAt   time.Time
	WindowDays  int
	Submitted   bool
	Cancelled   bool
	CancelledAt *time.Time
	UpdatedAt   time.Time
}

type Status struct {
	Code          Code
	DaysRemaining int
	DaysLate      int
	Label         string
	Deadline      *time.Time
}

// FromDeliverable projects a deliverable onto the calculator input for one
// submission kind. windowDays is the campaign override; zero means the
// default for the kind.
func FromDeliverable(item entities.Deliverable, kind Kind, windowDays int) Input {
	in := Input{
		ConfirmedAt: item.ConfirmedAt,
		CreatedAt:   item.CreatedAt,
		Cancelled:   item.IsCancelled(),
		CancelledAt: item.CancelledAt,
		UpdatedAt:   item.UpdatedAt,
	}
	switch kind {
	case KindMetrics:
		in.Deadline = item.MetricsDeadline
		in.Submitted = item.HasMetrics()
		in.WindowDays = windowDays
		if in.WindowDays <= 0 {
			in.WindowDays = entities.DefaultMetricsWindowDays
		}
	default:
		in.Deadline = item.URLDeadline
		in.Submitted = item.HasPostURL()
		in.WindowDays = windowDays
		if in.WindowDays <= 0 {
			in.WindowDays = entities.DefaultURLWindowDays
		}
	}
	return in
}

// Evaluate classifies one submission gate at the given present time. Same
// inputs always yield the same output; cancellation freezes the reference
// date so a cancelled deliverable's lateness never advances again.
func Evaluate(in Input, kind Kind, now time.Time) Status {
	if in.Submitted {
		return Status{Code: CodeCompleted, Label: "submitted", Deadline: resolveDeadline(in)}
	}

	due := resolveDeadline(in)
	if due == nil {
		return Status{Code: CodeUnknown, Label: "no deadline"}
	}

	reference := now
	if in.Cancelled {
		switch {
		case in.CancelledAt != nil:
			reference = *in.CancelledAt
		default:
			reference = in.UpdatedAt
		}
	}

	daysRemaining := ceilDays(due.Sub(reference))
	daysLate := 0
	if daysRemaining < 0 {
		daysLate = -daysRemaining
	}

	status := Status{
		DaysRemaining: daysRemaining,
		DaysLate:      daysLate,
		Deadline:      due,
	}

	if in.Cancelled {
		if daysRemaining < 0 {
			status.Code = CodeCancelledLate
			status.Label = fmt.Sprintf("cancelled, %s late", dayCount(daysLate))
		} else {
			status.Code = CodeCancelled
			status.Label = "cancelled"
		}
		return status
	}

	ladder := kind.thresholds()
	switch {
	case daysRemaining < 0:
		status.Code = CodeLate
		status.Label = fmt.Sprintf("%s late", dayCount(daysLate))
	case daysRemaining <= ladder.Urgent:
		status.Code = CodeUrgent
		status.Label = remainingLabel(daysRemaining)
	case daysRemaining <= ladder.Warning:
		status.Code = CodeWarning
		status.Label = remainingLabel(daysRemaining)
	case ladder.Caution > 0 && daysRemaining <= ladder.Caution:
		status.Code = CodeCaution
		status.Label = remainingLabel(daysRemaining)
	default:
		status.Code = CodeOK
		status.Label = remainingLabel(daysRemaining)
	}
	return status
}

func resolveDeadline(in Input) *time.Time {
	if in.Deadline != nil {
		value := in.Deadline.UTC()
		return &value
	}
	anchor := in.ConfirmedAt
	if anchor == nil {
		if in.CreatedAt.IsZero() {
			return nil
		}
		created := in.CreatedAt
		anchor = &created
	}
	value := anchor.UTC().Add(time.Duration(in.WindowDays) * 24 * time.Hour)
	return &value
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}

func dayCount(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func remainingLabel(daysRemaining int) string {
	if daysRemaining == 0 {
		return "due today"
	}
	return fmt.Sprintf("%s left", dayCount(daysRemaining))
}
