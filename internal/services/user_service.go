package services

import (
	"context"
	"errors"
	"strings"

	"portal/internal/apperrors"
	"portal/internal/models"
	"portal/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService owns the User rows behind admins and sellers. Methods that
// take a repositories.Store run against it, so callers can pass the Store of
// an open transaction.
type UserService struct {
	store      repositories.Store
	bcryptCost int
}

// NewUserService creates a new UserService.
func NewUserService(store repositories.Store, bcryptCost int) *UserService {
	return &UserService{
		store:      store,
		bcryptCost: bcryptCost,
	}
}

// normalizeEmail is the form emails are stored and looked up in.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailTaken reports whether any user already uses email, ignoring case.
func (s *UserService) EmailTaken(ctx context.Context, repos repositories.Store, email string) (bool, error) {
	user, err := repos.Users().GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return false, apperrors.Internal(err, "failed to look up email")
	}
	return user != nil, nil
}

// Create hashes password and inserts an active user of the given type.
func (s *UserService) Create(ctx context.Context, tx repositories.Store, email, password string, userType models.UserType) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to hash password")
	}

	user := &models.User{
		Email:        normalizeEmail(email),
		PasswordHash: string(hashedPassword),
		UserType:     userType,
		Active:       true,
	}
	if err := tx.Users().Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.EmailTaken()
		}
		return nil, apperrors.Internal(err, "failed to create user")
	}
	return user, nil
}

// ChangeEmail moves user to a new email address unless another user has it.
func (s *UserService) ChangeEmail(ctx context.Context, tx repositories.Store, user *models.User, email string) error {
	email = normalizeEmail(email)
	if email == user.Email {
		return nil
	}
	taken, err := s.EmailTaken(ctx, tx, email)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.EmailTaken()
	}
	if err := tx.Users().UpdateEmail(ctx, user.ID, email); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return apperrors.EmailTaken()
		}
		return apperrors.Internal(err, "failed to update email")
	}
	user.Email = email
	return nil
}

// SetActive toggles the active flag of a user.
func (s *UserService) SetActive(ctx context.Context, tx repositories.Store, userID uint, active bool) error {
	if err := tx.Users().SetActive(ctx, userID, active); err != nil {
		return apperrors.Internal(err, "failed to change user activation")
	}
	return nil
}

// Authenticate checks credentials. Unknown email, wrong password and inactive
// accounts all fail the same way.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.store.Users().GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, apperrors.Internal(err, "failed to look up user")
	}
	if user == nil {
		return nil, apperrors.Unauthenticated(errors.New("unknown email"))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthenticated(errors.New("password mismatch"))
	}
	if !user.Active {
		return nil, apperrors.Unauthenticated(errors.New("inactive user"))
	}
	return user, nil
}
