package services

import (
	"github.com/sparklean/cleaning-app/models"
)

// CleanersRepository is the slice of the store the availability resolver
// needs. Implementations must exclude soft-deleted cleaners and preload the
// orders currently assigned to each cleaner.
type CleanersRepository interface {
	GetAllCleaners() ([]models.Cleaner, error)
}

// CleanerService resolves which cleaners are free for a candidate order.
type CleanerService struct {
	cleaners CleanersRepository
	policy   ShiftPolicy
}

func NewCleanerService(cleaners CleanersRepository, policy ShiftPolicy) *CleanerService {
	if policy == nil {
		policy = NewDayWindowPolicy()
	}
	return &CleanerService{cleaners: cleaners, policy: policy}
}

// GetFreeCleanersForOrder returns, in repository order, every cleaner who has
// started employment by the order date, has no assigned order overlapping the
// candidate's [StartTime, EndTime) window and whose schedule pattern admits
// the slot. An empty result is valid, never an error.
func (s *CleanerService) GetFreeCleanersForOrder(order *models.Order) ([]models.Cleaner, error) {
	cleaners, err := s.cleaners.GetAllCleaners()
	if err != nil {
		return nil, err
	}

	free := make([]models.Cleaner, 0, len(cleaners))
	for _, cleaner := range cleaners {
		if cleaner.DateOfStartWork.After(order.StartTime) {
			continue
		}
		if cleaner.Schedule == models.ScheduleShiftWork &&
			!s.policy.AllowsWindow(cleaner, order.StartTime, order.EndTime) {
			continue
		}
		if hasScheduleConflict(cleaner, order) {
			continue
		}
		free = append(free, cleaner)
	}
	return free, nil
}

func hasScheduleConflict(cleaner models.Cleaner, candidate *models.Order) bool {
	for i := range cleaner.Orders {
		assigned := &cleaner.Orders[i]
		if assigned.Status == models.StatusCanceled || assigned.IsDeleted {
			continue
		}
		if assigned.Overlaps(candidate.StartTime, candidate.EndTime) {
			return true
		}
	}
	return false
}
