package models

import "time"

// Canteen represents a physical food-service location offering its own menu.
type Canteen struct {
	CanteenID   uint      `json:"canteen_id" gorm:"primaryKey" validate:"omitempty"`
	Name        string    `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
	Description string    `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	ImageURL    string    `json:"image_url" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
