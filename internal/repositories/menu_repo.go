package repositories

import (
	"grabngo/internal/models"
)

// MenuRepository defines the interface for menu item data access.
type MenuRepository interface {
	GetByCanteen(canteenID uint) ([]models.MenuItem, error)
	GetByID(menuItemID uint) (*models.MenuItem, error)
	Create(item *models.MenuItem) error
	Delete(menuItemID uint) error
	SetStock(menuItemID uint, stock int) error
}
