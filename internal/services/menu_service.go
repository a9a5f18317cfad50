package services

import (
	"fmt"

	"grabngo/internal/models"
	"grabngo/internal/repositories"
)

// MenuService handles business logic for canteens and their menus.
type MenuService struct {
	menuRepo    repositories.MenuRepository
	canteenRepo repositories.CanteenRepository
}

// NewMenuService creates a new MenuService.
func NewMenuService(menuRepo repositories.MenuRepository, canteenRepo repositories.CanteenRepository) *MenuService {
	return &MenuService{
		menuRepo:    menuRepo,
		canteenRepo: canteenRepo,
	}
}

// GetAllCanteens retrieves all canteens.
func (s *MenuService) GetAllCanteens() ([]models.Canteen, error) {
	return s.canteenRepo.GetAll()
}

// GetMenuByCanteen retrieves a canteen's menu with live stock. Unknown
// canteens yield an empty menu, matching the read facade's contract.
func (s *MenuService) GetMenuByCanteen(canteenID uint) ([]models.MenuItem, error) {
	return s.menuRepo.GetByCanteen(canteenID)
}

// GetMenuItemByID retrieves a single menu item.
func (s *MenuService) GetMenuItemByID(menuItemID uint) (*models.MenuItem, error) {
	return s.menuRepo.GetByID(menuItemID)
}

// AddMenuItem creates a new menu item for an existing canteen.
func (s *MenuService) AddMenuItem(item *models.MenuItem) error {
	if _, err := s.canteenRepo.GetByID(item.CanteenID); err != nil {
		return fmt.Errorf("cannot add menu item: %w", err)
	}
	if err := s.menuRepo.Create(item); err != nil {
		return fmt.Errorf("failed to add menu item: %w", err)
	}
	return nil
}

// DeleteMenuItem removes a menu item and its historical junction rows.
func (s *MenuService) DeleteMenuItem(menuItemID uint) error {
	return s.menuRepo.Delete(menuItemID)
}

// SetStock overwrites an item's stock count. This is the administrative
// direct-set path and intentionally bypasses the order transaction.
func (s *MenuService) SetStock(menuItemID uint, stock int) error {
	if stock < 0 {
		return fmt.Errorf("stock must not be negative, got %d", stock)
	}
	return s.menuRepo.SetStock(menuItemID, stock)
}
