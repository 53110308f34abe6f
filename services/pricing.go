package services

import (
	"github.com/sparklean/cleaning-app/models"
)

// OrderPricing is the total duration (hours) and price of a candidate order.
type OrderPricing struct {
	TotalDuration float64
	Price         float64
}

// CalculateOrderPricing sums durations and prices over the selected bundles
// and ad-hoc services. Empty input is valid and yields zero totals.
func CalculateOrderPricing(bundles []models.Bundle, services []models.Service) OrderPricing {
	var pricing OrderPricing
	for _, b := range bundles {
		pricing.TotalDuration += b.Duration
		pricing.Price += b.Price
	}
	for _, s := range services {
		pricing.TotalDuration += s.Duration
		pricing.Price += s.Price
	}
	return pricing
}
