package handlers

import (
	"errors"
	"fmt"
	"log"

	"grabngo/internal/models"
	"grabngo/internal/repositories"
	"grabngo/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/register/student", h.HandleRegisterStudent)
	router.Post("/login/student", h.HandleStudentLogin)
	router.Post("/login/admin", h.HandleAdminLogin)
}

// HandleRegisterStudent handles new student registration.
func (h *AuthHandler) HandleRegisterStudent(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	// The password field carries no json tag, so bind it separately.
	var credentials struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&credentials); err == nil {
		student.Password = credentials.Password
	}

	// Validate the student struct
	if err := h.validate.Struct(student); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.authService.RegisterStudent(&student); err != nil {
		log.Printf("Error registering student: %v", err)
		if errors.Is(err, repositories.ErrStudentExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "Student ID already registered. Please use a different ID or login.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not register student",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Student registered successfully!",
		"student": fiber.Map{
			"student_id": student.StudentID,
			"name":       student.Name,
		},
	})
}

// HandleStudentLogin authenticates a student and returns a JWT token.
func (h *AuthHandler) HandleStudentLogin(c *fiber.Ctx) error {
	var credentials struct {
		StudentID uint   `json:"student_id" validate:"required"`
		Password  string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&credentials); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(credentials); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Student ID and password are required",
		})
	}

	token, student, err := h.authService.LoginStudent(credentials.StudentID, credentials.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid credentials",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"student": fiber.Map{
			"student_id": student.StudentID,
			"name":       student.Name,
		},
	})
}

// HandleAdminLogin authenticates a canteen staff admin and returns a JWT
// token carrying the admin role.
func (h *AuthHandler) HandleAdminLogin(c *fiber.Ctx) error {
	var credentials struct {
		AdminID     uint   `json:"adminId" validate:"required"`
		CanteenName string `json:"canteenName" validate:"required"`
		Password    string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&credentials); err != nil {
		log.Printf("Error parsing admin login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(credentials); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Admin ID, canteen name, and password are required",
		})
	}

	token, staff, err := h.authService.LoginAdmin(credentials.AdminID, credentials.CanteenName, credentials.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid Admin ID or canteen assignment.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"admin": fiber.Map{
			"staff_id":   staff.StaffID,
			"name":       staff.Name,
			"canteen_id": staff.CanteenID,
		},
	})
}
