package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sparklean/cleaning-app/models"
)

type stubCleanersRepo struct {
	cleaners []models.Cleaner
	err      error
}

func (s *stubCleanersRepo) GetAllCleaners() ([]models.Cleaner, error) {
	return s.cleaners, s.err
}

type allowAllPolicy struct{}

func (allowAllPolicy) AllowsWindow(models.Cleaner, time.Time, time.Time) bool { return true }

type denyAllPolicy struct{}

func (denyAllPolicy) AllowsWindow(models.Cleaner, time.Time, time.Time) bool { return false }

func candidateOrder(start, end time.Time) *models.Order {
	return &models.Order{StartTime: start, EndTime: end, CleanersCount: 2}
}

func TestGetFreeCleanersForOrderFiltersEmploymentStart(t *testing.T) {
	start := time.Date(2022, 8, 1, 14, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	repo := &stubCleanersRepo{cleaners: []models.Cleaner{
		{ID: 11, Schedule: models.ScheduleFullTime, DateOfStartWork: time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 13, Schedule: models.ScheduleFullTime, DateOfStartWork: time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC)},
	}}

	service := NewCleanerService(repo, allowAllPolicy{})
	free, err := service.GetFreeCleanersForOrder(candidateOrder(start, end))

	assert.NoError(t, err)
	assert.Len(t, free, 1)
	assert.Equal(t, uint(11), free[0].ID)
}

func TestGetFreeCleanersForOrderFiltersOverlaps(t *testing.T) {
	start := time.Date(2022, 8, 1, 14, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)
	started := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	repo := &stubCleanersRepo{cleaners: []models.Cleaner{
		// busy: assigned order overlaps the candidate window
		{ID: 1, Schedule: models.ScheduleFullTime, DateOfStartWork: started, Orders: []models.Order{
			{Status: models.StatusCreated, StartTime: start.Add(-time.Hour), EndTime: start.Add(time.Hour)},
		}},
		// free: assigned order ends exactly when the candidate starts
		{ID: 2, Schedule: models.ScheduleFullTime, DateOfStartWork: started, Orders: []models.Order{
			{Status: models.StatusCreated, StartTime: start.Add(-3 * time.Hour), EndTime: start},
		}},
		// free: canceled orders never block
		{ID: 3, Schedule: models.ScheduleFullTime, DateOfStartWork: started, Orders: []models.Order{
			{Status: models.StatusCanceled, StartTime: start, EndTime: end},
		}},
	}}

	service := NewCleanerService(repo, allowAllPolicy{})
	free, err := service.GetFreeCleanersForOrder(candidateOrder(start, end))

	assert.NoError(t, err)
	assert.Len(t, free, 2)
	assert.Equal(t, uint(2), free[0].ID)
	assert.Equal(t, uint(3), free[1].ID)
}

func TestGetFreeCleanersForOrderShiftPolicy(t *testing.T) {
	start := time.Date(2022, 8, 1, 14, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)
	started := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	repo := &stubCleanersRepo{cleaners: []models.Cleaner{
		{ID: 11, Schedule: models.ScheduleFullTime, DateOfStartWork: started},
		{ID: 13, Schedule: models.ScheduleShiftWork, DateOfStartWork: started},
	}}

	// Shift workers are excluded from the slot, full-time never is
	service := NewCleanerService(repo, denyAllPolicy{})
	free, err := service.GetFreeCleanersForOrder(candidateOrder(start, end))

	assert.NoError(t, err)
	assert.Len(t, free, 1)
	assert.Equal(t, uint(11), free[0].ID)
}

func TestGetFreeCleanersForOrderEmptyResult(t *testing.T) {
	start := time.Date(2022, 8, 1, 14, 0, 0, 0, time.UTC)

	service := NewCleanerService(&stubCleanersRepo{}, allowAllPolicy{})
	free, err := service.GetFreeCleanersForOrder(candidateOrder(start, start.Add(2*time.Hour)))

	assert.NoError(t, err)
	assert.Empty(t, free)
}
