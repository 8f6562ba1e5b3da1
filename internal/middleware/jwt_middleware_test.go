package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portal/internal/apperrors"
	"portal/internal/auth"
	"portal/internal/middleware"
	"portal/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(sessions *auth.SessionManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if apperrors.Is(err, apperrors.KindUnauthenticated) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
			}
			if apperrors.Is(err, apperrors.KindForbidden) {
				return c.SendStatus(fiber.StatusForbidden)
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Get("/me", middleware.AuthRequired(sessions, "user_token"), func(c *fiber.Ctx) error {
		return c.JSON(middleware.PrincipalFrom(c))
	})
	app.Get("/admin",
		middleware.AuthRequired(sessions, "user_token"),
		middleware.RequireUserType(models.UserTypeAdmin),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/unguarded", middleware.RequireUserType(models.UserTypeAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	sessions := auth.NewSessionManager("test_jwt_secret", time.Hour)
	user := &models.User{Email: "seller@example.com", UserType: models.UserTypeSeller}
	user.ID = 3
	token, _, err := sessions.Issue(user)
	require.NoError(t, err)

	app := newTestApp(sessions)

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "user_token", Value: token}) }, http.StatusOK},
		{"bearer header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, http.StatusOK},
		{"missing", func(r *http.Request) {}, http.StatusUnauthorized},
		{"malformed header", func(r *http.Request) { r.Header.Set("Authorization", token) }, http.StatusUnauthorized},
		{"tampered cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "user_token", Value: token + "x"}) }, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRequireUserType(t *testing.T) {
	sessions := auth.NewSessionManager("test_jwt_secret", time.Hour)
	app := newTestApp(sessions)

	issue := func(userType models.UserType) string {
		user := &models.User{Email: "someone@example.com", UserType: userType}
		user.ID = 5
		token, _, err := sessions.Issue(user)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"admin", "/admin", issue(models.UserTypeAdmin), http.StatusNoContent},
		{"seller", "/admin", issue(models.UserTypeSeller), http.StatusForbidden},
		{"buyer", "/admin", issue(models.UserTypeBuyer), http.StatusForbidden},
		{"anonymous", "/admin", "", http.StatusUnauthorized},
		{"without session gate", "/unguarded", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
