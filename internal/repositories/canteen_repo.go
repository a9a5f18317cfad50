package repositories

import (
	"grabngo/internal/models"
)

// CanteenRepository defines the interface for canteen data access.
type CanteenRepository interface {
	GetAll() ([]models.Canteen, error)
	GetByID(canteenID uint) (*models.Canteen, error)
	GetByName(name string) (*models.Canteen, error)
	Create(canteen *models.Canteen) error
}
