// handlers/auth.go - Student and manager login
package handlers

import (
	"os"
	"strings"
	"time"

	"clubhub/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token,omitempty"`
	Username  string `json:"username,omitempty"`
	Role      string `json:"role,omitempty"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
	Error     string `json:"error,omitempty"`
}

// StudentLogin issues a student token. The portal has no student accounts;
// any non-empty username/password pair is admitted.
func StudentLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Invalid request body"})
	}

	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	if username == "" || password == "" {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Enter username and password to continue."})
	}

	token, expiresAt, err := generateToken(username, middleware.RoleStudent)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to generate token"})
	}

	return c.JSON(AuthResponse{
		Success:   true,
		Token:     token,
		Username:  username,
		Role:      middleware.RoleStudent,
		ExpiresAt: expiresAt,
	})
}

// ManagerLogin checks the env-configured manager credential. When
// MANAGER_PASSWORD_HASH is set it is compared with bcrypt; otherwise the
// plaintext MANAGER_PASSWORD is used (development only).
func ManagerLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Invalid request body"})
	}

	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	if username == "" || password == "" {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Username and password are required"})
	}

	if username != managerUsername() || !managerPasswordMatches(password) {
		return c.Status(401).JSON(AuthResponse{Success: false, Error: "Invalid manager credentials."})
	}

	token, expiresAt, err := generateToken(username, middleware.RoleManager)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to generate token"})
	}

	return c.JSON(AuthResponse{
		Success:   true,
		Token:     token,
		Username:  username,
		Role:      middleware.RoleManager,
		ExpiresAt: expiresAt,
	})
}

// Logout handles logout (client-side token removal)
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

func managerUsername() string {
	if name := os.Getenv("MANAGER_USERNAME"); name != "" {
		return name
	}
	return "admin"
}

func managerPasswordMatches(password string) bool {
	if hash := os.Getenv("MANAGER_PASSWORD_HASH"); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	configured := os.Getenv("MANAGER_PASSWORD")
	if configured == "" {
		configured = "adminpass"
	}
	return password == configured
}

func generateToken(username, role string) (string, int64, error) {
	expiresAt := time.Now().Add(24 * time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"role":     role,
		"jti":      uuid.NewString(),
		"iat":      time.Now().Unix(),
		"exp":      expiresAt.Unix(),
	})

	signed, err := token.SignedString(middleware.JWTSecret())
	if err != nil {
		return "", 0, err
	}
	return signed, expiresAt.Unix(), nil
}
