package models

import "time"

// MenuItem represents a purchasable food item belonging to one canteen.
// Stock is the count of remaining servings and must never go negative;
// the order transaction enforces this, not a database trigger.
type MenuItem struct {
	MenuItemID uint      `json:"menu_item_id" gorm:"primaryKey" validate:"omitempty"`
	CanteenID  uint      `json:"canteen_id" gorm:"index" validate:"required"`
	Name       string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	ShiftMenu  string    `json:"shift_menu" gorm:"type:varchar(20);default:anytime" validate:"omitempty,oneof=breakfast lunch dinner anytime"`
	Price      float64   `json:"price" validate:"required,gt=0"`
	Stock      int       `json:"stock" validate:"gte=0"`
	ImageURL   string    `json:"image_url" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
