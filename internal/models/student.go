package models

import "time"

// Student represents a registered student who can place orders.
// Student IDs are university-assigned, so the primary key is supplied by the
// client at registration rather than auto-generated.
type Student struct {
	StudentID  uint      `json:"student_id" gorm:"primaryKey;autoIncrement:false" validate:"required"`
	Name       string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Department string    `json:"department" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	Phone      string    `json:"phone" gorm:"type:varchar(15)" validate:"omitempty,max=15"`
	Age        int       `json:"age" validate:"omitempty,gte=15,lte=100"`
	Password   string    `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
