package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/utils"
)

type BundleRepository struct {
	DB *gorm.DB
}

func NewBundleRepository(db *gorm.DB) *BundleRepository {
	return &BundleRepository{DB: db}
}

func (r *BundleRepository) GetBundle(id uint) (*models.Bundle, error) {
	var bundle models.Bundle
	err := r.DB.
		Preload("Services").
		Where("is_deleted = ?", false).
		First(&bundle, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &bundle, nil
}

func (r *BundleRepository) GetAllBundles() ([]models.Bundle, error) {
	var bundles []models.Bundle
	err := r.DB.
		Preload("Services").
		Where("is_deleted = ?", false).
		Order("id asc").
		Find(&bundles).Error
	return bundles, err
}
