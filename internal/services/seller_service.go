package services

import (
	"context"
	"fmt"

	"portal/internal/apperrors"
	"portal/internal/models"
	"portal/internal/repositories"
)

// SellerDetails is the body of a seller registration.
type SellerDetails struct {
	FirstName       string `json:"first_name" validate:"required,max=100"`
	LastName        string `json:"last_name" validate:"required,max=100"`
	ContactNumber   string `json:"contact_number" validate:"omitempty,max=30"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password"`
}

func (d SellerDetails) empty() bool {
	return d == SellerDetails{}
}

// SellerUpdate carries the seller fields to change; nil fields are kept.
type SellerUpdate struct {
	FirstName     *string `json:"first_name" validate:"omitempty,max=100"`
	LastName      *string `json:"last_name" validate:"omitempty,max=100"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,max=30"`
	Email         *string `json:"email" validate:"omitempty,email,max=255"`
}

func (d SellerUpdate) empty() bool {
	return d.FirstName == nil && d.LastName == nil && d.ContactNumber == nil && d.Email == nil
}

// SellerService manages sellers and the users behind them.
type SellerService struct {
	store    repositories.Store
	users    *UserService
	activity *ActivityLogService
}

// NewSellerService creates a new SellerService.
func NewSellerService(store repositories.Store, users *UserService, activity *ActivityLogService) *SellerService {
	return &SellerService{
		store:    store,
		users:    users,
		activity: activity,
	}
}

// ListAll returns every seller with its user.
func (s *SellerService) ListAll(ctx context.Context) ([]models.Seller, error) {
	sellers, err := s.store.Sellers().GetAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load sellers")
	}
	return sellers, nil
}

// GetByID returns one seller or NotFound.
func (s *SellerService) GetByID(ctx context.Context, id uint) (*models.Seller, error) {
	seller, err := s.store.Sellers().GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load seller")
	}
	if seller == nil {
		return nil, apperrors.NotFound("Seller")
	}
	return seller, nil
}

// Create registers a seller. Self-service registrations (createdByAdmin
// false) must repeat the password. The user, the seller and the activity
// entry are written in one transaction.
func (s *SellerService) Create(ctx context.Context, details SellerDetails, createdByAdmin bool, ip string) (Outcome, error) {
	if details.empty() {
		return OutcomeNoOp, nil
	}
	if err := validateStruct(details); err != nil {
		return OutcomeNoOp, err
	}

	var entry *models.ActivityLog
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		taken, err := s.users.EmailTaken(ctx, tx, details.Email)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.EmailTaken()
		}
		if !createdByAdmin && details.Password != details.ConfirmPassword {
			return apperrors.PasswordMismatch()
		}

		user, err := s.users.Create(ctx, tx, details.Email, details.Password, models.UserTypeSeller)
		if err != nil {
			return err
		}

		seller := &models.Seller{
			FirstName:     details.FirstName,
			LastName:      details.LastName,
			ContactNumber: details.ContactNumber,
			UserID:        user.ID,
			User:          user,
		}
		if err := tx.Sellers().Create(ctx, seller); err != nil {
			return apperrors.Internal(err, "failed to create seller")
		}

		entry, err = s.activity.Record(ctx, tx, "create-seller",
			fmt.Sprintf("A new seller named %s was created.", seller.FullName()), ip)
		return err
	})
	if err != nil {
		return OutcomeNoOp, apperrors.Wrap(err, "failed to create seller")
	}

	s.activity.Publish(ctx, entry)
	return OutcomeApplied, nil
}

// lockSeller loads a seller for update and checks that its user is a seller.
func lockSeller(ctx context.Context, tx repositories.Store, id uint) (*models.Seller, error) {
	seller, err := tx.Sellers().GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load seller")
	}
	if seller == nil {
		return nil, apperrors.NotFound("Seller")
	}
	if seller.User == nil || seller.User.UserType != models.UserTypeSeller {
		return nil, apperrors.Forbidden("The account is not a seller account.")
	}
	return seller, nil
}

// Update changes the profile and email of a seller.
func (s *SellerService) Update(ctx context.Context, id uint, details SellerUpdate, ip string) (Outcome, error) {
	if details.empty() {
		return OutcomeNoOp, nil
	}
	if err := validateStruct(details); err != nil {
		return OutcomeNoOp, err
	}

	var entry *models.ActivityLog
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		seller, err := lockSeller(ctx, tx, id)
		if err != nil {
			return err
		}
		user, err := tx.Users().GetByIDForUpdate(ctx, seller.UserID)
		if err != nil {
			return apperrors.Internal(err, "failed to load seller user")
		}
		if user == nil {
			return apperrors.NotFound("User")
		}

		if details.Email != nil {
			if err := s.users.ChangeEmail(ctx, tx, user, *details.Email); err != nil {
				return err
			}
		}
		if details.FirstName != nil {
			seller.FirstName = *details.FirstName
		}
		if details.LastName != nil {
			seller.LastName = *details.LastName
		}
		if details.ContactNumber != nil {
			seller.ContactNumber = *details.ContactNumber
		}
		if err := tx.Sellers().Update(ctx, seller); err != nil {
			return apperrors.Internal(err, "failed to update seller")
		}
		seller.User = user

		entry, err = s.activity.Record(ctx, tx, "update-seller",
			fmt.Sprintf("A seller named %s has updated its account information.", seller.FullName()), ip)
		return err
	})
	if err != nil {
		return OutcomeNoOp, apperrors.Wrap(err, "failed to update seller")
	}

	s.activity.Publish(ctx, entry)
	return OutcomeApplied, nil
}

// SetActive activates or deactivates the user behind a seller.
func (s *SellerService) SetActive(ctx context.Context, id uint, active bool) error {
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		seller, err := lockSeller(ctx, tx, id)
		if err != nil {
			return err
		}
		return s.users.SetActive(ctx, tx, seller.UserID, active)
	})
	return apperrors.Wrap(err, "failed to change seller activation")
}
