package models

import (
	"time"
)

// Service is an individually priced ad-hoc cleaning task not bound to a bundle.
type Service struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Duration  float64   `gorm:"not null;default:0" json:"duration"`
	Price     float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"price"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
