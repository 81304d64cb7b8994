package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/Caarnus/newburgh-lodge/internal/apperr"
	"github.com/Caarnus/newburgh-lodge/internal/audit"
	"github.com/Caarnus/newburgh-lodge/internal/common"
	"github.com/Caarnus/newburgh-lodge/internal/constants"
	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	"github.com/Caarnus/newburgh-lodge/internal/db/repositories"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/requests"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/responses"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
	"github.com/Caarnus/newburgh-lodge/internal/policies"
	"gorm.io/gorm"
)

const (
	minPasswordLength = 8
	maxFieldLength    = 255
)

// SessionReader is the slice of the session store the confirmation gate
// needs; the Redis-backed SessionService satisfies it.
type SessionReader interface {
	GetSession(ctx context.Context, sessionID string) (*common.SessionData, error)
}

// UserAdminService runs the audited user-administration workflow. Every
// mutating path walks the same gates in order: admin access, elevation
// guard, password re-confirmation, validation, then the mutation and its
// audit entry inside one transaction.
type UserAdminService struct {
	db       *gorm.DB
	userRepo *repositories.UserRepository
	roleRepo *repositories.RoleRepository
	sessions SessionReader
	recorder *audit.Recorder
	access   policies.AdminAccessPolicy

	confirmTimeout time.Duration
}

func NewUserAdminService(
	db *gorm.DB,
	userRepo *repositories.UserRepository,
	roleRepo *repositories.RoleRepository,
	sessions SessionReader,
	recorder *audit.Recorder,
	confirmTimeout time.Duration,
) *UserAdminService {
	return &UserAdminService{
		db:             db,
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		sessions:       sessions,
		recorder:       recorder,
		confirmTimeout: confirmTimeout,
	}
}

/* ---------- gates ---------- */

func (s *UserAdminService) assertAccess(rc reqctx.RequestContext) error {
	if !s.access.Access(rc.Capabilities) {
		return apperr.ErrForbidden
	}
	return nil
}

// assertElevation blocks Secretaries from touching Administrators, even
// for non-role fields.
func (s *UserAdminService) assertElevation(rc reqctx.RequestContext, target *gormModels.User) error {
	if rc.Capabilities.IsAdmin {
		return nil
	}
	if rc.Capabilities.IsSecretary && hasRole(target, constants.RoleAdmin) {
		return apperr.ErrForbidden
	}
	return nil
}

// requireConfirmation passes when the actor confirmed their credential
// within the recency window; otherwise the in-band confirm_password field
// must match their stored hash.
func (s *UserAdminService) requireConfirmation(ctx context.Context, rc reqctx.RequestContext, confirmPassword string) error {
	if rc.SessionID != "" && s.sessions != nil {
		session, err := s.sessions.GetSession(ctx, rc.SessionID)
		if err == nil && session.PasswordConfirmedAt != nil &&
			time.Since(*session.PasswordConfirmedAt) < s.confirmTimeout {
			return nil
		}
	}

	if len(confirmPassword) < minPasswordLength {
		return apperr.ValidationErrors{"confirm_password": "your password is required"}
	}

	actor, err := s.userRepo.GetByIDWithRoles(ctx, rc.ActorID)
	if err != nil {
		return err
	}
	if !common.CheckPasswordHash(confirmPassword, actor.PasswordHash) {
		return fmt.Errorf("incorrect password: %w", apperr.ErrConfirmation)
	}
	return nil
}

/* ---------- operations ---------- */

// Create applies the admin "create user" workflow and returns the created
// row projection.
func (s *UserAdminService) Create(ctx context.Context, rc reqctx.RequestContext, req requests.UserCreateRequest) (*responses.UserRow, error) {
	if err := s.assertAccess(rc); err != nil {
		return nil, err
	}
	if err := s.requireConfirmation(ctx, rc, req.ConfirmPassword); err != nil {
		return nil, err
	}

	verrs := apperr.ValidationErrors{}
	if err := s.validateNameEmail(ctx, verrs, req.Name, req.Email, 0); err != nil {
		return nil, err
	}
	if req.Password != "" && len(req.Password) < minPasswordLength {
		verrs.Add("password", "password must be at least 8 characters")
	}
	roleCodes := s.validateRoles(verrs, req.Roles)
	if err := verrs.OrNil(); err != nil {
		return nil, err
	}

	user := gormModels.User{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Password != "" {
		hash, err := common.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if len(roleCodes) > 0 {
			if err := s.syncRoles(ctx, tx, &user, roleCodes); err != nil {
				return err
			}
		}

		return s.recorder.Record(tx, rc, audit.Entry{
			Action:  "user.create",
			Subject: &audit.Subject{Kind: audit.SubjectUser, ID: user.ID},
			After: map[string]interface{}{
				"name":  user.Name,
				"email": user.Email,
				"roles": roleNames(&user),
			},
			Meta: map[string]interface{}{"set_password": req.Password != ""},
		})
	})
	if err != nil {
		return nil, err
	}

	row := userRow(&user)
	return &row, nil
}

// Update applies name/email and an optional role set-replace to one user.
func (s *UserAdminService) Update(ctx context.Context, rc reqctx.RequestContext, userID uint, req requests.UserUpdateRequest) (*responses.UserRow, error) {
	if err := s.assertAccess(rc); err != nil {
		return nil, err
	}

	target, err := s.userRepo.GetByIDWithRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.assertElevation(rc, target); err != nil {
		return nil, err
	}
	if err := s.requireConfirmation(ctx, rc, req.ConfirmPassword); err != nil {
		return nil, err
	}

	verrs := apperr.ValidationErrors{}
	if err := s.validateNameEmail(ctx, verrs, req.Name, req.Email, target.ID); err != nil {
		return nil, err
	}
	var roleCodes []constants.RoleCode
	if req.Roles != nil {
		roleCodes = s.validateRoles(verrs, *req.Roles)
	}
	if err := verrs.OrNil(); err != nil {
		return nil, err
	}

	before := snapshot(target)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		target.Name = req.Name
		target.Email = req.Email
		if err := tx.Model(target).Updates(map[string]interface{}{
			"name":  req.Name,
			"email": req.Email,
		}).Error; err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		if req.Roles != nil {
			if err := s.syncRoles(ctx, tx, target, roleCodes); err != nil {
				return err
			}
		}

		return s.recorder.Record(tx, rc, audit.Entry{
			Action:  "user.update",
			Subject: &audit.Subject{Kind: audit.SubjectUser, ID: target.ID},
			Before:  before,
			After:   snapshot(target),
		})
	})
	if err != nil {
		return nil, err
	}

	row := userRow(target)
	return &row, nil
}

// SetPassword replaces one user's credential hash.
func (s *UserAdminService) SetPassword(ctx context.Context, rc reqctx.RequestContext, userID uint, req requests.SetPasswordRequest) error {
	if err := s.assertAccess(rc); err != nil {
		return err
	}

	target, err := s.userRepo.GetByIDWithRoles(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.assertElevation(rc, target); err != nil {
		return err
	}
	if err := s.requireConfirmation(ctx, rc, req.ConfirmPassword); err != nil {
		return err
	}

	verrs := apperr.ValidationErrors{}
	if len(req.Password) < minPasswordLength {
		verrs.Add("password", "password must be at least 8 characters")
	}
	if req.Password != req.PasswordConfirmation {
		verrs.Add("password", "password confirmation does not match")
	}
	if err := verrs.OrNil(); err != nil {
		return err
	}

	hash, err := common.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(target).Update("password", hash).Error; err != nil {
			return fmt.Errorf("failed to set password: %w", err)
		}

		return s.recorder.Record(tx, rc, audit.Entry{
			Action:  "user.set_password",
			Subject: &audit.Subject{Kind: audit.SubjectUser, ID: target.ID},
			Meta:    map[string]interface{}{"length": len(req.Password)},
		})
	})
}

// BulkUpdate processes every row inside one transaction: either all row
// mutations and their audit entries commit, or none do. The elevation
// guard is re-checked per row inside the same transaction.
func (s *UserAdminService) BulkUpdate(ctx context.Context, rc reqctx.RequestContext, req requests.BulkUpdateRequest) error {
	if err := s.assertAccess(rc); err != nil {
		return err
	}
	if err := s.requireConfirmation(ctx, rc, req.ConfirmPassword); err != nil {
		return err
	}

	verrs := apperr.ValidationErrors{}
	if len(req.Items) == 0 {
		verrs.Add("items", "at least one row is required")
	}
	rowRoles := make([][]constants.RoleCode, len(req.Items))
	for i, item := range req.Items {
		field := func(name string) string { return fmt.Sprintf("items.%d.%s", i, name) }

		if item.ID == 0 {
			verrs.Add(field("id"), "user id is required")
		} else if _, err := s.userRepo.GetByIDWithRoles(ctx, item.ID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				verrs.Add(field("id"), "user does not exist")
			} else {
				return err
			}
		}

		if item.Name == "" {
			verrs.Add(field("name"), "name is required")
		} else if len(item.Name) > maxFieldLength {
			verrs.Add(field("name"), "name may not be longer than 255 characters")
		}

		if item.Email == "" {
			verrs.Add(field("email"), "email is required")
		} else if _, err := mail.ParseAddress(item.Email); err != nil {
			verrs.Add(field("email"), "email must be a valid address")
		} else {
			taken, err := s.userRepo.EmailTaken(ctx, item.Email, item.ID)
			if err != nil {
				return err
			}
			if taken {
				verrs.Add(field("email"), "the email has already been taken")
			}
		}

		if item.Roles != nil {
			codes := apperr.ValidationErrors{}
			rowRoles[i] = s.validateRoles(codes, *item.Roles)
			for _, msg := range codes {
				verrs.Add(field("roles"), msg)
			}
		}
	}
	if err := verrs.OrNil(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, item := range req.Items {
			var user gormModels.User
			if err := tx.Preload("Roles").First(&user, item.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.ErrNotFound
				}
				return fmt.Errorf("failed to fetch user: %w", err)
			}

			if err := s.assertElevation(rc, &user); err != nil {
				return err
			}

			before := snapshot(&user)

			user.Name = item.Name
			user.Email = item.Email
			if err := tx.Model(&user).Updates(map[string]interface{}{
				"name":  item.Name,
				"email": item.Email,
			}).Error; err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}
			if item.Roles != nil {
				if err := s.syncRoles(ctx, tx, &user, rowRoles[i]); err != nil {
					return err
				}
			}

			if err := s.recorder.Record(tx, rc, audit.Entry{
				Action:  "user.bulk_update.item",
				Subject: &audit.Subject{Kind: audit.SubjectUser, ID: user.ID},
				Before:  before,
				After:   snapshot(&user),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns the management projection plus all assignable roles.
func (s *UserAdminService) List(ctx context.Context, rc reqctx.RequestContext) (*responses.UserListResponse, error) {
	if err := s.assertAccess(rc); err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListWithRoles(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]responses.UserRow, 0, len(users))
	for i := range users {
		rows = append(rows, userRow(&users[i]))
	}

	allRoles, err := s.roleRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	roleList := make([]string, 0, len(allRoles))
	for _, role := range allRoles {
		roleList = append(roleList, role.Name)
	}

	return &responses.UserListResponse{Users: rows, Roles: roleList}, nil
}

/* ---------- helpers ---------- */

func (s *UserAdminService) validateNameEmail(ctx context.Context, verrs apperr.ValidationErrors, name, email string, excludeID uint) error {
	if name == "" {
		verrs.Add("name", "name is required")
	} else if len(name) > maxFieldLength {
		verrs.Add("name", "name may not be longer than 255 characters")
	}

	if email == "" {
		verrs.Add("email", "email is required")
		return nil
	}
	if len(email) > maxFieldLength {
		verrs.Add("email", "email may not be longer than 255 characters")
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		verrs.Add("email", "email must be a valid address")
		return nil
	}
	taken, err := s.userRepo.EmailTaken(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		verrs.Add("email", "the email has already been taken")
	}
	return nil
}

func (s *UserAdminService) validateRoles(verrs apperr.ValidationErrors, roles []string) []constants.RoleCode {
	codes := make([]constants.RoleCode, 0, len(roles))
	for _, raw := range roles {
		if !constants.IsKnownRoleCode(raw) {
			verrs.Add("roles", fmt.Sprintf("unknown role %q", raw))
			continue
		}
		codes = append(codes, constants.RoleCode(raw))
	}
	return codes
}

// syncRoles replaces the user's role assignments with exactly the given
// set (idempotent set-replace, not additive).
func (s *UserAdminService) syncRoles(ctx context.Context, tx *gorm.DB, user *gormModels.User, codes []constants.RoleCode) error {
	roles, err := s.roleRepo.GetByCodes(ctx, codes)
	if err != nil {
		return err
	}
	if err := tx.Model(user).Association("Roles").Replace(&roles); err != nil {
		return fmt.Errorf("failed to sync roles: %w", err)
	}
	user.Roles = roles
	return nil
}

func hasRole(user *gormModels.User, code constants.RoleCode) bool {
	for _, role := range user.Roles {
		if role.Code == code {
			return true
		}
	}
	return false
}

func roleNames(user *gormModels.User) []string {
	names := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		names = append(names, role.Name)
	}
	return names
}

func snapshot(user *gormModels.User) map[string]interface{} {
	return map[string]interface{}{
		"name":  user.Name,
		"email": user.Email,
		"roles": roleNames(user),
	}
}

func userRow(user *gormModels.User) responses.UserRow {
	return responses.UserRow{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Roles:   roleNames(user),
		IsAdmin: hasRole(user, constants.RoleAdmin),
	}
}
