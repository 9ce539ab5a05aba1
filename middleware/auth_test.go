package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, role string, expiresIn time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "test-user",
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString(JWTSecret())
	require.NoError(t, err)
	return signed
}

func newGatedApp() *fiber.App {
	app := fiber.New()
	app.Get("/any", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"role": c.Locals("role")})
	})
	app.Get("/manager", ManagerAuthMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})
	return app
}

func request(t *testing.T, app *fiber.App, path, authorization string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware(t *testing.T) {
	app := newGatedApp()

	assert.Equal(t, 401, request(t, app, "/any", "").StatusCode)
	assert.Equal(t, 401, request(t, app, "/any", "Bearer not-a-token").StatusCode)
	assert.Equal(t, 401, request(t, app, "/any", "Basic abc").StatusCode)

	expired := signedToken(t, RoleStudent, -time.Hour)
	assert.Equal(t, 401, request(t, app, "/any", "Bearer "+expired).StatusCode)

	student := signedToken(t, RoleStudent, time.Hour)
	assert.Equal(t, 200, request(t, app, "/any", "Bearer "+student).StatusCode)
}

func TestManagerAuthMiddleware(t *testing.T) {
	app := newGatedApp()

	student := signedToken(t, RoleStudent, time.Hour)
	manager := signedToken(t, RoleManager, time.Hour)

	assert.Equal(t, 401, request(t, app, "/manager", "").StatusCode)
	assert.Equal(t, 403, request(t, app, "/manager", "Bearer "+student).StatusCode)
	assert.Equal(t, 200, request(t, app, "/manager", "Bearer "+manager).StatusCode)
}
