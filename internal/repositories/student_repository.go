package repositories

import (
	"grabngo/internal/models"
)

// StudentRepository defines the interface for student account data access.
type StudentRepository interface {
	GetByID(studentID uint) (*models.Student, error)
	Create(student *models.Student) error
}
