package repositories

import (
	"errors"
	"fmt"

	"grabngo/internal/models"

	"gorm.io/gorm"
)

// GORMMenuRepository is a GORM implementation of MenuRepository.
type GORMMenuRepository struct {
	db *gorm.DB
}

// NewGORMMenuRepository creates a new instance of GORMMenuRepository.
func NewGORMMenuRepository(db *gorm.DB) *GORMMenuRepository {
	return &GORMMenuRepository{
		db: db,
	}
}

// GetByCanteen retrieves the current menu of a canteen, including live stock.
// An unknown canteen ID yields an empty menu rather than a not-found error.
func (r *GORMMenuRepository) GetByCanteen(canteenID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.Where("canteen_id = ?", canteenID).Order("menu_item_id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get menu for canteen %d: %w", canteenID, err)
	}
	return items, nil
}

// GetByID retrieves a single menu item by its ID.
func (r *GORMMenuRepository) GetByID(menuItemID uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.First(&item, "menu_item_id = ?", menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu item %d: %w", menuItemID, ErrMenuItemNotFound)
		}
		return nil, fmt.Errorf("failed to get menu item %d: %w", menuItemID, err)
	}
	return &item, nil
}

// Create creates a new menu item.
func (r *GORMMenuRepository) Create(item *models.MenuItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

// Delete removes a menu item. Junction rows referencing the item are removed
// first so historical orders do not block the delete on foreign keys.
func (r *GORMMenuRepository) Delete(menuItemID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", menuItemID).Delete(&models.OrderLineItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete line items for menu item %d: %w", menuItemID, err)
		}
		res := tx.Delete(&models.MenuItem{}, "menu_item_id = ?", menuItemID)
		if res.Error != nil {
			return fmt.Errorf("failed to delete menu item %d: %w", menuItemID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("menu item %d: %w", menuItemID, ErrMenuItemNotFound)
		}
		return nil
	})
}

// SetStock overwrites an item's stock unconditionally. This is the
// administrative path; it deliberately bypasses the order transaction.
func (r *GORMMenuRepository) SetStock(menuItemID uint, stock int) error {
	res := r.db.Model(&models.MenuItem{}).Where("menu_item_id = ?", menuItemID).Update("stock", stock)
	if res.Error != nil {
		return fmt.Errorf("failed to update stock for menu item %d: %w", menuItemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("menu item %d: %w", menuItemID, ErrMenuItemNotFound)
	}
	return nil
}
