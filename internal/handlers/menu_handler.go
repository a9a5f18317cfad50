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

// MenuHandler handles HTTP requests for canteens and menus.
type MenuHandler struct {
	service  *services.MenuService
	validate *validator.Validate
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(service *services.MenuService) *MenuHandler {
	return &MenuHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public browse routes with the Fiber app.
func (h *MenuHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/canteens", h.HandleGetCanteens)
	router.Get("/menu/:canteenId", h.HandleGetMenu)
}

// RegisterAdminRoutes registers the stock-management routes. The router is
// expected to carry the admin JWT middleware.
func (h *MenuHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/menu-item", h.HandleAddMenuItem)
	router.Delete("/menu-item/:itemId", h.HandleDeleteMenuItem)
	router.Put("/menu-item/:itemId/stock", h.HandleSetStock)
}

// HandleGetCanteens retrieves all canteens.
func (h *MenuHandler) HandleGetCanteens(c *fiber.Ctx) error {
	canteens, err := h.service.GetAllCanteens()
	if err != nil {
		log.Printf("Error getting canteens: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not retrieve canteens",
		})
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"canteens": canteens,
	})
}

// HandleGetMenu retrieves the menu for a canteen, including live stock.
// An unknown canteen yields an empty menu, not a 404.
func (h *MenuHandler) HandleGetMenu(c *fiber.Ctx) error {
	canteenID, err := c.ParamsInt("canteenId")
	if err != nil || canteenID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid canteen ID",
		})
	}

	menu, err := h.service.GetMenuByCanteen(uint(canteenID))
	if err != nil {
		log.Printf("Error getting menu for canteen %d: %v", canteenID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not retrieve menu",
		})
	}
	if menu == nil {
		menu = []models.MenuItem{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"menu":    menu,
	})
}

// HandleAddMenuItem creates a new menu item.
func (h *MenuHandler) HandleAddMenuItem(c *fiber.Ctx) error {
	var item models.MenuItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing menu item body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(item); err != nil {
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

	if err := h.service.AddMenuItem(&item); err != nil {
		log.Printf("Error adding menu item: %v", err)
		if errors.Is(err, repositories.ErrCanteenNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Canteen not found.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to add menu item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"newItem": item,
	})
}

// HandleDeleteMenuItem deletes a menu item and its junction rows.
func (h *MenuHandler) HandleDeleteMenuItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("itemId")
	if err != nil || itemID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid menu item ID",
		})
	}

	if err := h.service.DeleteMenuItem(uint(itemID)); err != nil {
		log.Printf("Error deleting menu item %d: %v", itemID, err)
		if errors.Is(err, repositories.ErrMenuItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Menu item not found.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete menu item",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Menu item deleted successfully.",
	})
}

// HandleSetStock overwrites a menu item's stock. This administrative path
// deliberately bypasses the order transaction.
func (h *MenuHandler) HandleSetStock(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("itemId")
	if err != nil || itemID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid menu item ID",
		})
	}

	var body struct {
		Stock int `json:"stock"`
	}
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing stock update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.service.SetStock(uint(itemID), body.Stock); err != nil {
		log.Printf("Error updating stock for menu item %d: %v", itemID, err)
		if errors.Is(err, repositories.ErrMenuItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Menu item not found.",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update stock.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Stock updated successfully.",
	})
}
