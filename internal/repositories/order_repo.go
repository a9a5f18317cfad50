package repositories

import (
	"time"

	"grabngo/internal/models"
)

// OrderRepository defines the interface for order data access.
// PlaceOrder is the one write path: it persists a complete, consistent order
// (payment, order, line items, stock decrements) or persists nothing.
type OrderRepository interface {
	PlaceOrder(studentID uint, cart []models.CartItem) (*models.Order, error)
	GetByID(orderID uint) (*models.Order, error)
	GetByStudent(studentID uint) ([]models.Order, error)
	GetByStudentName(studentName string) ([]models.Order, error)
	GetByCanteen(canteenID uint) ([]models.CanteenOrder, error)
	SalesTotalByDate(day time.Time) (float64, error)
}
