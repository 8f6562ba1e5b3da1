// Package auth issues and verifies the session tokens carried in the
// user_token cookie.
package auth

import (
	"fmt"
	"log"
	"time"

	"portal/internal/apperrors"
	"portal/internal/models"

	"github.com/dgrijalva/jwt-go"
)

// Principal is the authenticated identity derived from a verified token.
type Principal struct {
	UserID   uint            `json:"user_id"`
	Email    string          `json:"email"`
	UserType models.UserType `json:"user_type"`
}

// SessionManager signs and verifies HS256 session tokens.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionManager creates a SessionManager. Tokens expire after ttl.
func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token for user and returns it with its expiry.
func (m *SessionManager) Issue(user *models.User) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   user.ID,
		"email":     user.Email,
		"user_type": string(user.UserType),
		"iat":       issuedAt.Unix(),
		"exp":       expiresAt.Unix(),
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// Verify parses and validates a token. Every failure is reported as
// Unauthenticated; the reason only goes to the log.
func (m *SessionManager) Verify(tokenString string) (*Principal, error) {
	if tokenString == "" {
		return nil, apperrors.Unauthenticated(fmt.Errorf("empty token"))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, apperrors.Unauthenticated(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.Unauthenticated(fmt.Errorf("invalid token"))
	}
	if _, hasExp := claims["exp"]; !hasExp {
		return nil, apperrors.Unauthenticated(fmt.Errorf("token without expiry"))
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return nil, apperrors.Unauthenticated(fmt.Errorf("token without user_id"))
	}
	email, _ := claims["email"].(string)
	userType, _ := claims["user_type"].(string)

	return &Principal{
		UserID:   uint(userID),
		Email:    email,
		UserType: models.UserType(userType),
	}, nil
}
