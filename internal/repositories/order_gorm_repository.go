package repositories

import (
	"errors"
	"fmt"
	"time"

	"grabngo/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// PlaceOrder atomically creates a payment, an order, one line item per cart
// entry, and decrements each item's stock. The total is recomputed from the
// stored menu prices; client-supplied totals are never persisted.
//
// Any failure rolls the whole transaction back: no partial order is ever
// observable. Stock cannot go negative: the decrement only matches rows that
// still hold enough servings, and the row lock taken by UPDATE re-checks the
// guard under concurrency.
func (r *GORMOrderRepository) PlaceOrder(studentID uint, cart []models.CartItem) (*models.Order, error) {
	var order *models.Order

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var total float64
		lines := make([]models.OrderLineItem, 0, len(cart))

		for _, entry := range cart {
			var item models.MenuItem
			if err := tx.First(&item, "menu_item_id = ?", entry.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("menu item %d: %w", entry.MenuItemID, ErrMenuItemNotFound)
				}
				return fmt.Errorf("failed to load menu item %d: %w", entry.MenuItemID, err)
			}

			res := tx.Model(&models.MenuItem{}).
				Where("menu_item_id = ? AND stock >= ?", entry.MenuItemID, entry.Quantity).
				Update("stock", gorm.Expr("stock - ?", entry.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement stock for menu item %d: %w", entry.MenuItemID, res.Error)
			}
			if res.RowsAffected != 1 {
				return fmt.Errorf("menu item %d (requested %d, available %d): %w",
					entry.MenuItemID, entry.Quantity, item.Stock, ErrInsufficientStock)
			}

			total += item.Price * float64(entry.Quantity)
			lines = append(lines, models.OrderLineItem{
				MenuItemID: entry.MenuItemID,
				Quantity:   entry.Quantity,
				UnitPrice:  item.Price,
			})
		}

		now := time.Now()
		payment := models.Payment{
			Reference:   uuid.New().String(),
			PaymentDate: now,
			Amount:      total,
			PaymentMode: models.PaymentModeCard,
			Status:      models.PaymentStatusCompleted,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		newOrder := models.Order{
			StudentID:   studentID,
			PaymentID:   payment.PaymentID,
			OrderDate:   now,
			TotalAmount: total,
			Status:      models.OrderStatusPlaced,
			Items:       lines,
		}
		if err := tx.Create(&newOrder).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		newOrder.Payment = payment
		order = &newOrder
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID retrieves a single order with its payment and line items.
func (r *GORMOrderRepository) GetByID(orderID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("Payment").First(&order, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to get order %d: %w", orderID, err)
	}
	return &order, nil
}

// GetByStudent retrieves a student's orders, newest first. An unknown student
// simply yields an empty list.
func (r *GORMOrderRepository) GetByStudent(studentID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Preload("Payment").
		Where("student_id = ?", studentID).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for student %d: %w", studentID, err)
	}
	return orders, nil
}

// GetByStudentName retrieves orders for every student matching the given
// name, newest first.
func (r *GORMOrderRepository) GetByStudentName(studentName string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Preload("Payment").
		Joins("JOIN students ON students.student_id = orders.student_id").
		Where("students.name = ?", studentName).
		Order("orders.order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for student %q: %w", studentName, err)
	}
	return orders, nil
}

// GetByCanteen retrieves every order containing at least one menu item of the
// given canteen, newest first, with the ordering student's name attached.
func (r *GORMOrderRepository) GetByCanteen(canteenID uint) ([]models.CanteenOrder, error) {
	sub := r.db.Model(&models.OrderLineItem{}).
		Distinct("order_line_items.order_id").
		Joins("JOIN menu_items ON menu_items.menu_item_id = order_line_items.menu_item_id").
		Where("menu_items.canteen_id = ?", canteenID)

	var orders []models.CanteenOrder
	err := r.db.Model(&models.Order{}).
		Select("orders.order_id, orders.order_date, orders.total_amount, orders.status, students.name AS student_name").
		Joins("JOIN students ON students.student_id = orders.student_id").
		Where("orders.order_id IN (?)", sub).
		Order("orders.order_date DESC").
		Scan(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for canteen %d: %w", canteenID, err)
	}
	return orders, nil
}

// SalesTotalByDate sums the total amount of all orders placed on the given
// calendar day (local to the supplied time's location).
func (r *GORMOrderRepository) SalesTotalByDate(day time.Time) (float64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var total float64
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("order_date >= ? AND order_date < ?", start, end).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum sales for %s: %w", start.Format("2006-01-02"), err)
	}
	return total, nil
}
