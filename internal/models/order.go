package models

import "time"

// Order statuses. Orders start as Placed; later lifecycle transitions are
// owned by the canteen staff, not the order transaction.
const (
	OrderStatusPlaced    = "Placed"
	OrderStatusPreparing = "Preparing"
	OrderStatusReady     = "Ready"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// Payment statuses and modes. Only completed card payments are modeled.
const (
	PaymentStatusCompleted = "Completed"
	PaymentModeCard        = "Card"
)

// CartItem is a single requested line of a cart: a menu item reference and a
// quantity. Carts are transient and client-held; they are consumed entirely
// by order placement and never persisted as-is.
type CartItem struct {
	MenuItemID uint `json:"menu_item_id" validate:"required"`
	Quantity   int  `json:"quantity" validate:"required,min=1"`
}

// PlaceOrderRequest is the body of POST /api/orders. TotalAmount is the
// client's display total; the persisted amount is always recomputed
// server-side from current menu prices.
type PlaceOrderRequest struct {
	StudentID   uint       `json:"studentId" validate:"required"`
	CartItems   []CartItem `json:"cartItems" validate:"required,min=1,dive"`
	TotalAmount float64    `json:"totalAmount" validate:"gte=0"`
}

// Payment represents the payment settled alongside an order. Payment and
// Order rows are only ever created together, inside the order transaction.
type Payment struct {
	PaymentID   uint      `json:"payment_id" gorm:"primaryKey"`
	Reference   string    `json:"reference" gorm:"uniqueIndex;type:varchar(36)"`
	PaymentDate time.Time `json:"payment_date"`
	Amount      float64   `json:"amount"`
	PaymentMode string    `json:"payment_mode" gorm:"type:varchar(20)"`
	Status      string    `json:"status" gorm:"type:varchar(20)"`
}

// Order represents a persisted purchase: one student, one payment, one or
// more line items. TotalAmount always equals the payment amount and the sum
// of line-item price*quantity at order time.
type Order struct {
	OrderID     uint            `json:"order_id" gorm:"primaryKey"`
	StudentID   uint            `json:"student_id" gorm:"index"`
	PaymentID   uint            `json:"payment_id"`
	OrderDate   time.Time       `json:"order_date"`
	TotalAmount float64         `json:"total_amount"`
	Status      string          `json:"status" gorm:"type:varchar(20)"`
	Payment     Payment         `json:"payment,omitempty" gorm:"foreignKey:PaymentID"`
	Items       []OrderLineItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderLineItem is the junction between an order and a menu item. UnitPrice
// is the authoritative menu price captured at order time.
type OrderLineItem struct {
	OrderID    uint    `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	MenuItemID uint    `json:"menu_item_id" gorm:"primaryKey;autoIncrement:false"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

// CanteenOrder is the read projection returned by the per-canteen order
// listing: order headers joined with the ordering student's name.
type CanteenOrder struct {
	OrderID     uint      `json:"order_id"`
	OrderDate   time.Time `json:"order_date"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	StudentName string    `json:"student_name"`
}
