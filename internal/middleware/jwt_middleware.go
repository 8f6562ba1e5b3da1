package middleware

import (
	"fmt"
	"strings"

	"portal/internal/apperrors"
	"portal/internal/auth"
	"portal/internal/models"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// SessionVerifier turns a session token into a Principal.
type SessionVerifier interface {
	Verify(token string) (*auth.Principal, error)
}

// AuthRequired is a Fiber middleware that only lets requests with a valid
// session through. The token is read from the session cookie and, for API
// clients, from an "Authorization: Bearer <token>" header.
func AuthRequired(verifier SessionVerifier, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(cookieName)
		if tokenString == "" {
			var err error
			if tokenString, err = bearerToken(c.Get(fiber.HeaderAuthorization)); err != nil {
				return apperrors.Unauthenticated(err)
			}
		}

		principal, err := verifier.Verify(tokenString)
		if err != nil {
			return apperrors.Wrap(err, "verify session")
		}

		// Store the principal in Fiber context for subsequent handlers
		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// RequireUserType only lets through principals of one of the given user
// types. It must run after AuthRequired.
func RequireUserType(types ...models.UserType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := PrincipalFrom(c)
		if principal == nil {
			return apperrors.Unauthenticated(fmt.Errorf("no session principal"))
		}
		for _, t := range types {
			if principal.UserType == t {
				return c.Next()
			}
		}
		return apperrors.Forbidden("You are not allowed to access this resource.")
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("no session cookie or authorization header")
	}
	// Expected format: "Bearer <token>"
	parts := strings.SplitN(header, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return "", fmt.Errorf("authorization header format must be 'Bearer <token>'")
	}
	return parts[1], nil
}

// PrincipalFrom returns the principal stored by AuthRequired, or nil on
// public routes.
func PrincipalFrom(c *fiber.Ctx) *auth.Principal {
	principal, _ := c.Locals(principalKey).(*auth.Principal)
	return principal
}
