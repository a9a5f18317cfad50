package middleware

import (
	"log"
	"strings"

	"grabngo/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := bearerClaims(c, authService)
		if !ok {
			return nil
		}

		// Store claims in Fiber context for subsequent handlers
		storeClaims(c, claims)

		// Continue to the next handler
		return c.Next()
	}
}

// AdminRequired is a Fiber middleware that only admits canteen staff tokens.
func AdminRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := bearerClaims(c, authService)
		if !ok {
			return nil
		}

		if role, _ := claims["role"].(string); role != services.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Administrator access required",
			})
		}

		storeClaims(c, claims)
		return c.Next()
	}
}

// bearerClaims extracts and validates the Bearer token. When validation
// fails the error response has already been written and ok is false.
func bearerClaims(c *fiber.Ctx, authService *services.AuthService) (jwt.MapClaims, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		_ = c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Authorization header is required",
		})
		return nil, false
	}

	// Expected format: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		_ = c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Authorization header format must be 'Bearer <token>'",
		})
		return nil, false
	}

	claims, err := authService.ValidateToken(parts[1])
	if err != nil {
		log.Printf("JWT validation failed: %v", err)
		_ = c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid or expired token",
		})
		return nil, false
	}
	return claims, true
}

func storeClaims(c *fiber.Ctx, claims jwt.MapClaims) {
	c.Locals("role", claims["role"])
	c.Locals("name", claims["name"])
	if id, ok := claims["student_id"]; ok {
		c.Locals("student_id", id)
	}
	if id, ok := claims["staff_id"]; ok {
		c.Locals("staff_id", id)
		c.Locals("canteen_id", claims["canteen_id"])
	}
}
