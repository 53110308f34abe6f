package models

import (
	"time"
)

// CleaningObject is the property an order is booked for.
type CleaningObject struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	ClientID          uint      `gorm:"not null" json:"client_id"`
	Address           string    `gorm:"type:varchar(500);not null" json:"address"`
	NumberOfRooms     int       `gorm:"not null;default:1" json:"number_of_rooms"`
	NumberOfBathrooms int       `gorm:"not null;default:1" json:"number_of_bathrooms"`
	NumberOfWindows   int       `gorm:"not null;default:0" json:"number_of_windows"`
	Square            float64   `gorm:"not null;default:0" json:"square"`
	DistrictID        *uint     `gorm:"index" json:"district_id,omitempty"`
	District          *District `gorm:"foreignKey:DistrictID" json:"district,omitempty"`
	IsDeleted         bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null" json:"updated_at"`
}
