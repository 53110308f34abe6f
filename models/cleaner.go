package models

import (
	"time"
)

type Schedule string

const (
	ScheduleFullTime  Schedule = "full_time"
	ScheduleShiftWork Schedule = "shift_work"
)

type Cleaner struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	FirstName       string     `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName        string     `gorm:"type:varchar(255);not null" json:"last_name"`
	Email           string     `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password        string     `gorm:"type:varchar(255);not null" json:"-"`
	Phone           string     `gorm:"type:varchar(30)" json:"phone"`
	BirthDate       *time.Time `json:"birth_date,omitempty"`
	Rating          float64    `gorm:"type:decimal(3,2);not null;default:0" json:"rating"`
	Schedule        Schedule   `gorm:"type:varchar(20);not null;default:'full_time'" json:"schedule"`
	DateOfStartWork time.Time  `gorm:"not null" json:"date_of_start_work"`
	Orders          []Order    `gorm:"many2many:order_cleaners" json:"orders,omitempty"`
	Services        []Service  `gorm:"many2many:cleaner_services" json:"services,omitempty"`
	Districts       []District `gorm:"many2many:cleaner_districts" json:"districts,omitempty"`
	IsDeleted       bool       `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`
}
