package models

import "time"

// StaffAdmin represents a canteen administrator who manages the menu and stock.
type StaffAdmin struct {
	StaffID   uint      `json:"staff_id" gorm:"primaryKey;autoIncrement:false" validate:"required"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"omitempty,email"`
	Phone     string    `json:"phone" gorm:"type:varchar(15)" validate:"omitempty,max=15"`
	CanteenID uint      `json:"canteen_id" gorm:"index" validate:"required"`
	Password  string    `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
