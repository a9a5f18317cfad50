package repositories

import (
	"errors"
	"fmt"

	"grabngo/internal/models"

	"gorm.io/gorm"
)

// GORMCanteenRepository is a GORM implementation of CanteenRepository.
type GORMCanteenRepository struct {
	db *gorm.DB
}

// NewGORMCanteenRepository creates a new instance of GORMCanteenRepository.
func NewGORMCanteenRepository(db *gorm.DB) *GORMCanteenRepository {
	return &GORMCanteenRepository{
		db: db,
	}
}

// GetAll retrieves all canteens.
func (r *GORMCanteenRepository) GetAll() ([]models.Canteen, error) {
	var canteens []models.Canteen
	if err := r.db.Order("canteen_id").Find(&canteens).Error; err != nil {
		return nil, fmt.Errorf("failed to get all canteens: %w", err)
	}
	return canteens, nil
}

// GetByID retrieves a single canteen by its ID.
func (r *GORMCanteenRepository) GetByID(canteenID uint) (*models.Canteen, error) {
	var canteen models.Canteen
	if err := r.db.First(&canteen, "canteen_id = ?", canteenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("canteen %d: %w", canteenID, ErrCanteenNotFound)
		}
		return nil, fmt.Errorf("failed to get canteen %d: %w", canteenID, err)
	}
	return &canteen, nil
}

// GetByName retrieves a single canteen by its unique name.
func (r *GORMCanteenRepository) GetByName(name string) (*models.Canteen, error) {
	var canteen models.Canteen
	if err := r.db.First(&canteen, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("canteen %q: %w", name, ErrCanteenNotFound)
		}
		return nil, fmt.Errorf("failed to get canteen %q: %w", name, err)
	}
	return &canteen, nil
}

// Create creates a new canteen.
func (r *GORMCanteenRepository) Create(canteen *models.Canteen) error {
	if err := r.db.Create(canteen).Error; err != nil {
		return fmt.Errorf("failed to create canteen: %w", err)
	}
	return nil
}
