package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sparklean/cleaning-app/models"
)

func TestDayWindowPolicy(t *testing.T) {
	policy := NewDayWindowPolicy()
	cleaner := models.Cleaner{Schedule: models.ScheduleShiftWork}
	day := time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		allowed bool
	}{
		{"inside window", day.Add(14 * time.Hour), day.Add(18 * time.Hour), true},
		{"starts at open", day.Add(9 * time.Hour), day.Add(12 * time.Hour), true},
		{"ends exactly at close", day.Add(17 * time.Hour), day.Add(21 * time.Hour), true},
		{"starts before open", day.Add(7 * time.Hour), day.Add(10 * time.Hour), false},
		{"ends after close", day.Add(19 * time.Hour), day.Add(22 * time.Hour), false},
		{"runs past close by minutes", day.Add(18 * time.Hour), day.Add(21*time.Hour + 30*time.Minute), false},
		{"crosses midnight", day.Add(20 * time.Hour), day.Add(26 * time.Hour), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, policy.AllowsWindow(cleaner, tc.start, tc.end))
		})
	}
}

func TestDayWindowPolicyCustomHours(t *testing.T) {
	policy := &DayWindowPolicy{OpenHour: 6, CloseHour: 12}
	day := time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, policy.AllowsWindow(models.Cleaner{}, day.Add(6*time.Hour), day.Add(9*time.Hour)))
	assert.False(t, policy.AllowsWindow(models.Cleaner{}, day.Add(10*time.Hour), day.Add(13*time.Hour)))
}
