package handlers

import (
	"log"

	"portal/internal/apperrors"
	"portal/internal/middleware"
	"portal/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService  *services.AuthService
	cookieName   string
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler. The session token is handed out
// in the cookieName cookie.
func NewAuthHandler(authService *services.AuthService, cookieName string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/logout", h.HandleLogout)
	authRoutes.Get("/me", authRequired, h.HandleMe)
}

// HandleLogin checks the credentials and sets the session cookie.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req services.Credentials
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return apperrors.Invalid("Invalid request body", nil)
	}

	token, expiresAt, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{
		"message":    "Login successful",
		"expires_at": expiresAt,
	})
}

// HandleLogout clears the session cookie.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	c.ClearCookie(h.cookieName)
	return c.JSON(fiber.Map{"message": "Logout successful"})
}

// HandleMe returns the principal of the current session.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return apperrors.Unauthenticated(nil)
	}
	return c.JSON(principal)
}
