package services

import (
	"time"

	"github.com/sparklean/cleaning-app/models"
)

// ShiftPolicy decides whether a shift-work cleaner may take an order in the
// given window. Full-time cleaners are never run through the policy.
type ShiftPolicy interface {
	AllowsWindow(cleaner models.Cleaner, start, end time.Time) bool
}

// DayWindowPolicy admits orders that start at or after OpenHour and end by
// CloseHour on the same day.
type DayWindowPolicy struct {
	OpenHour  int
	CloseHour int
}

func NewDayWindowPolicy() *DayWindowPolicy {
	return &DayWindowPolicy{OpenHour: 9, CloseHour: 21}
}

func (p *DayWindowPolicy) AllowsWindow(_ models.Cleaner, start, end time.Time) bool {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy != ey || sm != em || sd != ed {
		return false
	}
	if start.Hour() < p.OpenHour {
		return false
	}
	// An order ending exactly on the hour still fits the window.
	if end.Hour() > p.CloseHour || (end.Hour() == p.CloseHour && (end.Minute() > 0 || end.Second() > 0)) {
		return false
	}
	return !end.Before(start)
}
