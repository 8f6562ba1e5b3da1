package services

import (
	"context"
	"fmt"

	"portal/internal/apperrors"
	"portal/internal/models"
	"portal/internal/repositories"
)

// AdminDetails is the body used to create an admin account.
type AdminDetails struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required"`
}

func (d AdminDetails) empty() bool {
	return d == AdminDetails{}
}

// AdminUpdate carries the admin fields to change; nil fields are kept.
type AdminUpdate struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
}

func (d AdminUpdate) empty() bool {
	return d.FirstName == nil && d.LastName == nil && d.Email == nil
}

// AdminService manages portal administrators.
type AdminService struct {
	store    repositories.Store
	users    *UserService
	activity *ActivityLogService
}

// NewAdminService creates a new AdminService.
func NewAdminService(store repositories.Store, users *UserService, activity *ActivityLogService) *AdminService {
	return &AdminService{
		store:    store,
		users:    users,
		activity: activity,
	}
}

func (s *AdminService) ListAll(ctx context.Context) ([]models.Admin, error) {
	admins, err := s.store.Admins().GetAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load admins")
	}
	return admins, nil
}

func (s *AdminService) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	admin, err := s.store.Admins().GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load admin")
	}
	if admin == nil {
		return nil, apperrors.NotFound("Admin")
	}
	return admin, nil
}

// Create adds an admin with its user and activity entry in one transaction.
func (s *AdminService) Create(ctx context.Context, details AdminDetails, ip string) (Outcome, error) {
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

		user, err := s.users.Create(ctx, tx, details.Email, details.Password, models.UserTypeAdmin)
		if err != nil {
			return err
		}
		admin := &models.Admin{
			FirstName: details.FirstName,
			LastName:  details.LastName,
			UserID:    user.ID,
			User:      user,
		}
		if err := tx.Admins().Create(ctx, admin); err != nil {
			return apperrors.Internal(err, "failed to create admin")
		}

		entry, err = s.activity.Record(ctx, tx, "create-admin",
			fmt.Sprintf("A new admin named %s was created.", admin.FullName()), ip)
		return err
	})
	if err != nil {
		return OutcomeNoOp, apperrors.Wrap(err, "failed to create admin")
	}

	s.activity.Publish(ctx, entry)
	return OutcomeApplied, nil
}

func lockAdmin(ctx context.Context, tx repositories.Store, id uint) (*models.Admin, error) {
	admin, err := tx.Admins().GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load admin")
	}
	if admin == nil {
		return nil, apperrors.NotFound("Admin")
	}
	if admin.User == nil || admin.User.UserType != models.UserTypeAdmin {
		return nil, apperrors.Forbidden("The account is not an admin account.")
	}
	return admin, nil
}

// Update changes the name and email of an admin.
func (s *AdminService) Update(ctx context.Context, id uint, details AdminUpdate, ip string) (Outcome, error) {
	if details.empty() {
		return OutcomeNoOp, nil
	}
	if err := validateStruct(details); err != nil {
		return OutcomeNoOp, err
	}

	var entry *models.ActivityLog
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		admin, err := lockAdmin(ctx, tx, id)
		if err != nil {
			return err
		}
		user, err := tx.Users().GetByIDForUpdate(ctx, admin.UserID)
		if err != nil {
			return apperrors.Internal(err, "failed to load admin user")
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
			admin.FirstName = *details.FirstName
		}
		if details.LastName != nil {
			admin.LastName = *details.LastName
		}
		if err := tx.Admins().Update(ctx, admin); err != nil {
			return apperrors.Internal(err, "failed to update admin")
		}
		admin.User = user

		entry, err = s.activity.Record(ctx, tx, "update-admin",
			fmt.Sprintf("An admin named %s has updated its account information.", admin.FullName()), ip)
		return err
	})
	if err != nil {
		return OutcomeNoOp, apperrors.Wrap(err, "failed to update admin")
	}

	s.activity.Publish(ctx, entry)
	return OutcomeApplied, nil
}

// SetActive activates or deactivates the user behind an admin.
func (s *AdminService) SetActive(ctx context.Context, id uint, active bool) error {
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		admin, err := lockAdmin(ctx, tx, id)
		if err != nil {
			return err
		}
		return s.users.SetActive(ctx, tx, admin.UserID, active)
	})
	return apperrors.Wrap(err, "failed to change admin activation")
}
