package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/utils"
)

type CleanerRepository struct {
	DB *gorm.DB
}

func NewCleanerRepository(db *gorm.DB) *CleanerRepository {
	return &CleanerRepository{DB: db}
}

// GetAllCleaners returns active cleaners with their assigned orders
// preloaded for conflict checking, ordered by id so the availability
// resolver output stays deterministic.
func (r *CleanerRepository) GetAllCleaners() ([]models.Cleaner, error) {
	var cleaners []models.Cleaner
	err := r.DB.
		Preload("Orders", "is_deleted = ?", false).
		Where("is_deleted = ?", false).
		Order("id asc").
		Find(&cleaners).Error
	return cleaners, err
}

func (r *CleanerRepository) GetCleaner(id uint) (*models.Cleaner, error) {
	var cleaner models.Cleaner
	err := r.DB.
		Preload("Services").
		Preload("Districts").
		Where("is_deleted = ?", false).
		First(&cleaner, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &cleaner, nil
}
