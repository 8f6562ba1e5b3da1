package services

import (
	"context"
	"log"
	"time"

	"portal/internal/apperrors"
	"portal/internal/auth"
)

// AuthService handles logging in to the portal.
type AuthService struct {
	users    *UserService
	sessions *auth.SessionManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *UserService, sessions *auth.SessionManager) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Credentials is the body of a login request.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates a user and returns a session token and its expiry.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	if err := validateStruct(Credentials{Email: email, Password: password}); err != nil {
		return "", time.Time{}, err
	}
	user, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		log.Printf("Login failed for %s: %v", email, err)
		return "", time.Time{}, err
	}

	token, expiresAt, err := s.sessions.Issue(user)
	if err != nil {
		return "", time.Time{}, apperrors.Internal(err, "failed to issue session")
	}
	return token, expiresAt, nil
}
