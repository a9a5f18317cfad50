package services

import (
	"fmt"
	"log"
	"math"

	"grabngo/internal/models"
	"grabngo/internal/repositories"
)

// OrderEventPublisher publishes order lifecycle events to the message broker.
// Implemented by pkg/rabbitmq.Client; kept as an interface so the service is
// testable without a broker.
type OrderEventPublisher interface {
	PublishOrderPlaced(event map[string]interface{}) error
}

// OrderService handles business logic related to order placement and history.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	studentRepo repositories.StudentRepository
	events      OrderEventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, studentRepo repositories.StudentRepository, events OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		studentRepo: studentRepo,
		events:      events,
	}
}

// PlaceOrder persists a complete order for the student's cart, or nothing.
// The persisted total is always recomputed from current menu prices inside
// the transaction; the client-supplied total is only compared for display
// drift and never trusted.
func (s *OrderService) PlaceOrder(req *models.PlaceOrderRequest) (*models.Order, error) {
	// Empty carts are rejected outright: a zero-amount order with no line
	// items has no meaning to the kitchen.
	if len(req.CartItems) == 0 {
		return nil, fmt.Errorf("cart must contain at least one item")
	}
	for _, item := range req.CartItems {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("invalid quantity %d for menu item %d", item.Quantity, item.MenuItemID)
		}
	}

	if _, err := s.studentRepo.GetByID(req.StudentID); err != nil {
		return nil, fmt.Errorf("cannot place order: %w", err)
	}

	order, err := s.orderRepo.PlaceOrder(req.StudentID, req.CartItems)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if math.Abs(order.TotalAmount-req.TotalAmount) > 0.005 {
		log.Printf("Client total %.2f disagrees with server total %.2f for order %d; server total persisted",
			req.TotalAmount, order.TotalAmount, order.OrderID)
	}

	if s.events != nil {
		event := map[string]interface{}{
			"orderId":     order.OrderID,
			"studentId":   order.StudentID,
			"status":      order.Status,
			"totalAmount": order.TotalAmount,
			"orderDate":   order.OrderDate,
		}
		if err := s.events.PublishOrderPlaced(event); err != nil {
			// The order is already committed; a broker hiccup must not fail it.
			log.Printf("Warning: failed to publish order placed event for order %d: %v", order.OrderID, err)
		}
	} else {
		log.Println("Order event publisher is not initialized. Skipping message publication.")
	}

	return order, nil
}

// GetOrderByID retrieves a single order with its payment and line items.
func (s *OrderService) GetOrderByID(orderID uint) (*models.Order, error) {
	return s.orderRepo.GetByID(orderID)
}

// GetOrdersByStudent retrieves a student's order history, newest first.
func (s *OrderService) GetOrdersByStudent(studentID uint) ([]models.Order, error) {
	return s.orderRepo.GetByStudent(studentID)
}

// GetOrdersByStudentName retrieves order history for every student matching
// the given name.
func (s *OrderService) GetOrdersByStudentName(studentName string) ([]models.Order, error) {
	if studentName == "" {
		return nil, fmt.Errorf("student name is required")
	}
	return s.orderRepo.GetByStudentName(studentName)
}
