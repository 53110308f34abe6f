package models

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	AuthorID  uint      `gorm:"not null" json:"author_id"`
	Summary   string    `gorm:"type:text" json:"summary"`
	Rating    int       `gorm:"not null;default:0" json:"rating"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
