package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/Caarnus/newburgh-lodge/internal/apperr"
	"github.com/Caarnus/newburgh-lodge/internal/auth"
	"github.com/Caarnus/newburgh-lodge/internal/common"
	"github.com/Caarnus/newburgh-lodge/internal/constants"
	"github.com/Caarnus/newburgh-lodge/internal/db/repositories"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/requests"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
	"gorm.io/gorm"
)

// AuthService handles self-service registration and credential checks.
// Role changes beyond the auto-assigned base role go through the admin
// workflow only.
type AuthService struct {
	db       *gorm.DB
	userRepo *repositories.UserRepository
	roleRepo *repositories.RoleRepository
}

func NewAuthService(db *gorm.DB, userRepo *repositories.UserRepository, roleRepo *repositories.RoleRepository) *AuthService {
	return &AuthService{db: db, userRepo: userRepo, roleRepo: roleRepo}
}

// Register creates a user with the base "User" role assigned.
func (s *AuthService) Register(ctx context.Context, req requests.RegisterRequest) (*gormModels.User, error) {
	verrs := apperr.ValidationErrors{}
	if req.Name == "" {
		verrs.Add("name", "name is required")
	}
	if req.Email == "" {
		verrs.Add("email", "email is required")
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		verrs.Add("email", "email must be a valid address")
	} else {
		taken, err := s.userRepo.EmailTaken(ctx, req.Email, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			verrs.Add("email", "the email has already been taken")
		}
	}
	if len(req.Password) < minPasswordLength {
		verrs.Add("password", "password must be at least 8 characters")
	} else if req.Password != req.PasswordConfirmation {
		verrs.Add("password", "password confirmation does not match")
	}
	if err := verrs.OrNil(); err != nil {
		return nil, err
	}

	hash, err := common.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := gormModels.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		baseRoles, err := s.roleRepo.GetByCodes(ctx, []constants.RoleCode{constants.RoleUser})
		if err != nil {
			return err
		}
		if len(baseRoles) > 0 {
			if err := tx.Model(&user).Association("Roles").Append(&baseRoles); err != nil {
				return fmt.Errorf("failed to assign default role: %w", err)
			}
			user.Roles = baseRoles
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate verifies an email/password pair and returns the user with
// roles loaded. Failures do not reveal which half was wrong.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*gormModels.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrForbidden
		}
		return nil, err
	}
	if !common.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.ErrForbidden
	}
	return s.userRepo.GetByIDWithRoles(ctx, user.ID)
}

// VerifyPassword re-checks the signed-in user's own credential for the
// confirmation stamp.
func (s *AuthService) VerifyPassword(ctx context.Context, userID uint, password string) error {
	user, err := s.userRepo.GetByIDWithRoles(ctx, userID)
	if err != nil {
		return err
	}
	if !common.CheckPasswordHash(password, user.PasswordHash) {
		return fmt.Errorf("incorrect password: %w", apperr.ErrConfirmation)
	}
	return nil
}

// CapabilitiesFor computes the per-request Capabilities for a user.
func CapabilitiesFor(user *gormModels.User) auth.Capabilities {
	codes := make([]constants.RoleCode, 0, len(user.Roles))
	for _, role := range user.Roles {
		codes = append(codes, role.Code)
	}
	return auth.CapabilitiesFromRoles(codes)
}
