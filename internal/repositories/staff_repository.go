package repositories

import (
	"grabngo/internal/models"
)

// StaffRepository defines the interface for canteen staff account data access.
type StaffRepository interface {
	GetByIDAndCanteen(staffID, canteenID uint) (*models.StaffAdmin, error)
	Create(staff *models.StaffAdmin) error
}
