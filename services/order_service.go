package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/utils"
)

// OrdersRepository is the persistence contract the lifecycle manager
// consumes. Read methods must exclude soft-deleted orders; GetOrder and
// GetAllOrders report absence through utils.ErrNotFound.
type OrdersRepository interface {
	GetOrder(id uint) (*models.Order, error)
	CreateOrder(order *models.Order) (uint, error)
	UpdateOrder(order *models.Order) error
	GetAllOrders() ([]models.Order, error)
}

// BundlesRepository resolves bundle references on incoming orders.
type BundlesRepository interface {
	GetBundle(id uint) (*models.Bundle, error)
}

// AvailabilityProvider yields the cleaners free for a candidate order.
type AvailabilityProvider interface {
	GetFreeCleanersForOrder(order *models.Order) ([]models.Cleaner, error)
}

// Notifier alerts an operator that an order needs manual cleaner assignment.
type Notifier interface {
	SendEmail(orderID uint) error
}

// OrderService orchestrates the order lifecycle: pricing, cleaner
// assignment, moderation hand-off, updates and soft deletes.
type OrderService struct {
	orders   OrdersRepository
	bundles  BundlesRepository
	cleaners AvailabilityProvider
	notifier Notifier
}

func NewOrderService(orders OrdersRepository, bundles BundlesRepository, cleaners AvailabilityProvider, notifier Notifier) *OrderService {
	return &OrderService{
		orders:   orders,
		bundles:  bundles,
		cleaners: cleaners,
		notifier: notifier,
	}
}

// AddOrder prices the order, resolves cleaner availability and persists it.
// Enough free cleaners => status created with a full band; otherwise status
// moderation with an empty band and a single operator notification. A missing
// bundle aborts the whole creation, nothing is persisted.
func (s *OrderService) AddOrder(order *models.Order) (uint, error) {
	for i := range order.Bundles {
		bundle, err := s.bundles.GetBundle(order.Bundles[i].ID)
		if err != nil {
			return 0, fmt.Errorf("bundle %d: %w", order.Bundles[i].ID, err)
		}
		order.Bundles[i] = *bundle
	}

	pricing := CalculateOrderPricing(order.Bundles, order.Services)
	order.Price = pricing.Price
	order.TotalDuration = pricing.TotalDuration

	free, err := s.cleaners.GetFreeCleanersForOrder(order)
	if err != nil {
		return 0, err
	}

	if len(free) >= order.CleanersCount {
		order.Status = models.StatusCreated
		order.CleanersBand = free[:order.CleanersCount]
	} else {
		order.Status = models.StatusModeration
		order.CleanersBand = nil
	}

	order.Reference = uuid.NewString()

	id, err := s.orders.CreateOrder(order)
	if err != nil {
		return 0, err
	}

	if order.Status == models.StatusModeration {
		// Fire-and-forget: a failed mail never fails the creation.
		if err := s.notifier.SendEmail(id); err != nil {
			utils.ErrorLogger.Errorf("moderation mail for order %d failed: %v", id, err)
		}
	}

	return id, nil
}

// UpdateOrder replaces every mutable field of the stored order with the
// patch's values. Id, client and cleaning object are immutable.
func (s *OrderService) UpdateOrder(patch *models.Order, id uint) error {
	existing, err := s.orders.GetOrder(id)
	if err != nil {
		return err
	}

	existing.Status = patch.Status
	existing.StartTime = patch.StartTime
	existing.EndTime = patch.EndTime
	existing.UpdateTime = patch.UpdateTime
	existing.Bundles = patch.Bundles
	existing.Services = patch.Services
	existing.CleanersBand = patch.CleanersBand

	return s.orders.UpdateOrder(existing)
}

// GetOrder loads one order for the acting user. Only an admin or the owning
// client may read it.
func (s *OrderService) GetOrder(id uint, user models.UserValues) (*models.Order, error) {
	order, err := s.orders.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if !canAccessOrder(order, user) {
		return nil, utils.ErrForbidden
	}
	return order, nil
}

// DeleteOrder marks the order deleted through the update path. The row is
// never physically removed.
func (s *OrderService) DeleteOrder(id uint, user models.UserValues) error {
	order, err := s.orders.GetOrder(id)
	if err != nil {
		return err
	}
	if !canAccessOrder(order, user) {
		return utils.ErrForbidden
	}
	order.IsDeleted = true
	return s.orders.UpdateOrder(order)
}

// GetAllOrders lists every non-deleted order in storage order.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orders.GetAllOrders()
}

func canAccessOrder(order *models.Order, user models.UserValues) bool {
	if user.IsAdmin() {
		return true
	}
	return user.Role == models.RoleClient && order.ClientID == user.ID
}
