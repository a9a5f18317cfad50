package repositories

import (
	"errors"
	"fmt"

	"grabngo/internal/models"

	"gorm.io/gorm"
)

// GORMStudentRepository is a GORM implementation of StudentRepository.
type GORMStudentRepository struct {
	db *gorm.DB
}

// NewGORMStudentRepository creates a new instance of GORMStudentRepository.
func NewGORMStudentRepository(db *gorm.DB) *GORMStudentRepository {
	return &GORMStudentRepository{
		db: db,
	}
}

// GetByID retrieves a student by their university-assigned ID.
func (r *GORMStudentRepository) GetByID(studentID uint) (*models.Student, error) {
	var student models.Student
	if err := r.db.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("student %d: %w", studentID, ErrStudentNotFound)
		}
		return nil, fmt.Errorf("failed to get student %d: %w", studentID, err)
	}
	return &student, nil
}

// Create registers a new student.
func (r *GORMStudentRepository) Create(student *models.Student) error {
	if err := r.db.Create(student).Error; err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}
