package models

import (
	"time"
)

// Measure is the unit a bundle price scales by.
type Measure string

const (
	MeasureApartment   Measure = "apartment"
	MeasureRoom        Measure = "room"
	MeasureSquareMeter Measure = "square_meter"
	MeasureWindow      Measure = "window"
)

type Bundle struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Measure   Measure   `gorm:"type:varchar(20);not null;default:'apartment'" json:"measure"`
	Duration  float64   `gorm:"not null;default:0" json:"duration"`
	Price     float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"price"`
	Services  []Service `gorm:"many2many:bundle_services" json:"services,omitempty"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
