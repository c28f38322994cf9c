package entities

import (
	"strings"
	"time"
)

const (
	DefaultURLWindowDays     = 7
	DefaultMetricsWindowDays = 14
)

// Campaign carries the slot capacity and the deadline window settings
// every confirmed deliverable inherits. SlotsFilled is mutated only
// through the repository's confirm/cancel operations.
type Campaign struct {
	CampaignID        string
	BrandID           string
	Title             string
	Slots             int
	SlotsFilled       int
	URLWindowDays     int
	MetricsWindowDays int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (c Campaign) ValidateCreate() bool {
	return strings.TrimSpace(c.CampaignID) != "" &&
		strings.TrimSpace(c.BrandID) != "" &&
		strings.TrimSpace(c.Title) != "" &&
		c.Slots >= 1 &&
		c.URLWindowDays >= 0 &&
		c.MetricsWindowDays >= 0
}

// AvailableSlots never reports negative capacity even if stored counters
// drift; the invariant 0 <= SlotsFilled <= Slots is enforced on write.
func (c Campaign) AvailableSlots() int {
	remaining := c.Slots - c.SlotsFilled
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (c Campaign) HasAvailableSlot() bool {
	return c.AvailableSlots() > 0
}

func (c Campaign) URLWindow() int {
	if c.URLWindowDays > 0 {
		return c.URLWindowDays
	}
	return DefaultURLWindowDays
}

func (c Campaign) MetricsWindow() int {
	if c.MetricsWindowDays > 0 {
		return c.MetricsWindowDays
	}
	return DefaultMetricsWindowDays
}
