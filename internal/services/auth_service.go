package services

import (
	"fmt"
	"log"
	"time"

	"grabngo/internal/models"
	"grabngo/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Token roles embedded in JWT claims.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// AuthService handles registration and login for students and canteen staff.
// Passwords are stored as bcrypt hashes; successful logins yield an HS256 JWT.
type AuthService struct {
	studentRepo repositories.StudentRepository
	staffRepo   repositories.StaffRepository
	canteenRepo repositories.CanteenRepository
	jwtSecret   []byte
	tokenDurat  time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(studentRepo repositories.StudentRepository, staffRepo repositories.StaffRepository, canteenRepo repositories.CanteenRepository, jwtSecret string) *AuthService {
	return &AuthService{
		studentRepo: studentRepo,
		staffRepo:   staffRepo,
		canteenRepo: canteenRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenDurat:  24 * time.Hour, // Token valid for 24 hours
	}
}

// RegisterStudent registers a new student, hashing their password before it
// is stored.
func (s *AuthService) RegisterStudent(student *models.Student) error {
	if existing, err := s.studentRepo.GetByID(student.StudentID); err == nil && existing != nil {
		return fmt.Errorf("student %d: %w", student.StudentID, repositories.ErrStudentExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(student.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	student.Password = string(hashedPassword)

	if err := s.studentRepo.Create(student); err != nil {
		return fmt.Errorf("failed to register student: %w", err)
	}
	return nil
}

// LoginStudent authenticates a student and returns a JWT token plus the
// student record on success.
func (s *AuthService) LoginStudent(studentID uint, password string) (string, *models.Student, error) {
	student, err := s.studentRepo.GetByID(studentID)
	if err != nil {
		// Do not reveal whether the ID exists.
		return "", nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	token, err := s.signToken(jwt.MapClaims{
		"student_id": student.StudentID,
		"name":       student.Name,
		"role":       RoleStudent,
	})
	if err != nil {
		return "", nil, err
	}
	return token, student, nil
}

// LoginAdmin authenticates a staff admin against their canteen assignment and
// returns a JWT token plus the staff record on success.
func (s *AuthService) LoginAdmin(staffID uint, canteenName, password string) (string, *models.StaffAdmin, error) {
	canteen, err := s.canteenRepo.GetByName(canteenName)
	if err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	staff, err := s.staffRepo.GetByIDAndCanteen(staffID, canteen.CanteenID)
	if err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	token, err := s.signToken(jwt.MapClaims{
		"staff_id":   staff.StaffID,
		"name":       staff.Name,
		"canteen_id": staff.CanteenID,
		"role":       RoleAdmin,
	})
	if err != nil {
		return "", nil, err
	}
	return token, staff, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func (s *AuthService) signToken(claims jwt.MapClaims) (string, error) {
	claims["exp"] = time.Now().Add(s.tokenDurat).Unix()
	claims["iat"] = time.Now().Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}
