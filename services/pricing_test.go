package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sparklean/cleaning-app/models"
)

func TestCalculateOrderPricing(t *testing.T) {
	bundles := []models.Bundle{
		{ID: 2, Name: "General cleaning", Measure: models.MeasureApartment, Duration: 6, Price: 100},
	}
	services := []models.Service{
		{ID: 42, Name: "Window washing", Duration: 2, Price: 10},
	}

	pricing := CalculateOrderPricing(bundles, services)

	assert.Equal(t, 8.0, pricing.TotalDuration)
	assert.Equal(t, 110.0, pricing.Price)
}

func TestCalculateOrderPricingMultipleBundles(t *testing.T) {
	bundles := []models.Bundle{
		{Duration: 3, Price: 50.5},
		{Duration: 4.5, Price: 80},
	}
	services := []models.Service{
		{Duration: 1, Price: 15},
		{Duration: 0.5, Price: 7.25},
	}

	pricing := CalculateOrderPricing(bundles, services)

	assert.Equal(t, 9.0, pricing.TotalDuration)
	assert.Equal(t, 152.75, pricing.Price)
}

func TestCalculateOrderPricingEmptyInput(t *testing.T) {
	pricing := CalculateOrderPricing(nil, nil)

	assert.Zero(t, pricing.TotalDuration)
	assert.Zero(t, pricing.Price)
}

func TestCalculateOrderPricingServicesOnly(t *testing.T) {
	services := []models.Service{
		{Duration: 2, Price: 30},
	}

	pricing := CalculateOrderPricing(nil, services)

	assert.Equal(t, 2.0, pricing.TotalDuration)
	assert.Equal(t, 30.0, pricing.Price)
}
