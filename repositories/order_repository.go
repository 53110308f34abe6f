package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/utils"
)

// OrderRepository is the GORM-backed store for orders. Every read excludes
// soft-deleted rows by contract, callers never filter on is_deleted.
type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.
		Preload("Bundles").
		Preload("Services").
		Preload("CleanersBand").
		Preload("Comments").
		Where("is_deleted = ?", false).
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// CreateOrder persists the order together with its band and bundle
// associations in one transaction, so the availability check cannot race a
// concurrent booking past the store.
func (r *OrderRepository) CreateOrder(order *models.Order) (uint, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderRepository) UpdateOrder(order *models.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Association("Bundles").Replace(order.Bundles); err != nil {
			return err
		}
		if err := tx.Model(order).Association("Services").Replace(order.Services); err != nil {
			return err
		}
		if err := tx.Model(order).Association("CleanersBand").Replace(order.CleanersBand); err != nil {
			return err
		}
		return tx.Save(order).Error
	})
}

func (r *OrderRepository) GetAllOrders() ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.
		Preload("Bundles").
		Preload("Services").
		Preload("CleanersBand").
		Where("is_deleted = ?", false).
		Order("id asc").
		Find(&orders).Error
	return orders, err
}
