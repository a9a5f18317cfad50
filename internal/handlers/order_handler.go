package handlers

import (
	"errors"
	"fmt"
	"log"

	"grabngo/internal/models"
	"grabngo/internal/repositories"
	"grabngo/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for order placement and history.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/orders", h.HandlePlaceOrder)
	router.Get("/orders/student/:studentId", h.HandleGetStudentOrders)
	router.Get("/orders/student-name/:studentName", h.HandleGetOrdersByStudentName)
}

// HandlePlaceOrder places a new order from the student's cart. The whole
// write is atomic: on any failure nothing is persisted.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req models.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	order, err := h.service.PlaceOrder(&req)
	if err != nil {
		log.Printf("Error placing order for student %d: %v", req.StudentID, err)
		switch {
		case errors.Is(err, repositories.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "Order rejected: insufficient stock.",
			})
		case errors.Is(err, repositories.ErrMenuItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Order rejected: unknown menu item.",
			})
		case errors.Is(err, repositories.ErrStudentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Order rejected: unknown student.",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to place order.",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Order placed successfully!",
		"orderId": order.OrderID,
	})
}

// HandleGetStudentOrders retrieves a student's order history.
func (h *OrderHandler) HandleGetStudentOrders(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil || studentID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student ID",
		})
	}

	orders, err := h.service.GetOrdersByStudent(uint(studentID))
	if err != nil {
		log.Printf("Error getting orders for student %d: %v", studentID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch student orders.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

// HandleGetOrdersByStudentName retrieves order history for every student
// matching the given name.
func (h *OrderHandler) HandleGetOrdersByStudentName(c *fiber.Ctx) error {
	studentName := c.Params("studentName")

	orders, err := h.service.GetOrdersByStudentName(studentName)
	if err != nil {
		log.Printf("Error getting orders for student name %q: %v", studentName, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch orders by name.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}
