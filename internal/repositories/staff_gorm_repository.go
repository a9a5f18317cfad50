package repositories

import (
	"errors"
	"fmt"

	"grabngo/internal/models"

	"gorm.io/gorm"
)

// GORMStaffRepository is a GORM implementation of StaffRepository.
type GORMStaffRepository struct {
	db *gorm.DB
}

// NewGORMStaffRepository creates a new instance of GORMStaffRepository.
func NewGORMStaffRepository(db *gorm.DB) *GORMStaffRepository {
	return &GORMStaffRepository{
		db: db,
	}
}

// GetByIDAndCanteen retrieves a staff admin by ID, restricted to the canteen
// they are assigned to.
func (r *GORMStaffRepository) GetByIDAndCanteen(staffID, canteenID uint) (*models.StaffAdmin, error) {
	var staff models.StaffAdmin
	err := r.db.First(&staff, "staff_id = ? AND canteen_id = ?", staffID, canteenID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("staff %d at canteen %d: %w", staffID, canteenID, ErrStaffNotFound)
		}
		return nil, fmt.Errorf("failed to get staff %d: %w", staffID, err)
	}
	return &staff, nil
}

// Create registers a new staff admin.
func (r *GORMStaffRepository) Create(staff *models.StaffAdmin) error {
	if err := r.db.Create(staff).Error; err != nil {
		return fmt.Errorf("failed to create staff admin: %w", err)
	}
	return nil
}
