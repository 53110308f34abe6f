package models

import (
	"time"
)

type Status string

const (
	StatusCreated    Status = "created"
	StatusEdited     Status = "edited"
	StatusModeration Status = "moderation"
	StatusDone       Status = "done"
	StatusCanceled   Status = "canceled"
)

type Order struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Reference        string         `gorm:"type:varchar(36);uniqueIndex" json:"reference"`
	ClientID         uint           `gorm:"not null" json:"client_id"`
	Client           Client         `gorm:"foreignKey:ClientID" json:"client"`
	CleaningObjectID uint           `gorm:"not null" json:"cleaning_object_id"`
	CleaningObject   CleaningObject `gorm:"foreignKey:CleaningObjectID" json:"cleaning_object"`
	Status           Status         `gorm:"type:varchar(20);not null;default:'created'" json:"status"`
	StartTime        time.Time      `gorm:"not null" json:"start_time"`
	EndTime          time.Time      `gorm:"not null" json:"end_time"`
	UpdateTime       *time.Time     `json:"update_time,omitempty"`
	Price            float64        `gorm:"type:decimal(10,2);not null;default:0.00" json:"price"`
	TotalDuration    float64        `gorm:"not null;default:0" json:"total_duration"`
	CleanersCount    int            `gorm:"not null;default:1" json:"cleaners_count"`
	Bundles          []Bundle       `gorm:"many2many:order_bundles" json:"bundles"`
	Services         []Service      `gorm:"many2many:order_services" json:"services"`
	CleanersBand     []Cleaner      `gorm:"many2many:order_cleaners" json:"cleaners_band"`
	Comments         []Comment      `gorm:"foreignKey:OrderID" json:"comments,omitempty"`
	IsDeleted        bool           `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt        time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null" json:"updated_at"`
}

// Overlaps reports whether the order's [StartTime, EndTime) interval
// intersects the given window.
func (o *Order) Overlaps(start, end time.Time) bool {
	return o.StartTime.Before(end) && start.Before(o.EndTime)
}
