package models

import "time"

// User is a back-office account (admin or operator). Clients and cleaners
// authenticate through their own tables.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(255); not null"`
	Email     string `gorm:"type:varchar(255); unique;not null"`
	Password  string `gorm:"type:varchar(255); not null"`
	Role      Role   `gorm:"type:varchar(255); not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
