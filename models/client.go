package models

import (
	"time"
)

type Client struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	FirstName       string           `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName        string           `gorm:"type:varchar(255);not null" json:"last_name"`
	Email           string           `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password        string           `gorm:"type:varchar(255);not null" json:"-"`
	Phone           string           `gorm:"type:varchar(30)" json:"phone"`
	BirthDate       *time.Time       `json:"birth_date,omitempty"`
	Orders          []Order          `gorm:"foreignKey:ClientID" json:"orders,omitempty"`
	CleaningObjects []CleaningObject `gorm:"foreignKey:ClientID" json:"cleaning_objects,omitempty"`
	IsDeleted       bool             `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt       time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"not null" json:"updated_at"`
}
