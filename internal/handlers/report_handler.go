package handlers

import (
	"log"

	"grabngo/internal/models"
	"grabngo/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles the administrative read endpoints: per-canteen order
// listings and daily sales totals.
type ReportHandler struct {
	service *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// RegisterRoutes registers the report routes with the Fiber app.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/canteen/:canteenId/orders", h.HandleGetCanteenOrders)
	router.Get("/sales/:date", h.HandleGetSalesByDate)
}

// HandleGetCanteenOrders retrieves every order containing at least one item
// of the canteen, newest first.
func (h *ReportHandler) HandleGetCanteenOrders(c *fiber.Ctx) error {
	canteenID, err := c.ParamsInt("canteenId")
	if err != nil || canteenID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid canteen ID",
		})
	}

	orders, err := h.service.GetOrdersByCanteen(uint(canteenID))
	if err != nil {
		log.Printf("Error getting orders for canteen %d: %v", canteenID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch canteen orders.",
		})
	}
	if orders == nil {
		orders = []models.CanteenOrder{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

// HandleGetSalesByDate sums order totals for a calendar day (YYYY-MM-DD).
func (h *ReportHandler) HandleGetSalesByDate(c *fiber.Ctx) error {
	date := c.Params("date")

	total, err := h.service.GetSalesTotalByDate(date)
	if err != nil {
		log.Printf("Error calculating sales for %s: %v", date, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Failed to calculate total sales.",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"totalSales": total,
	})
}
