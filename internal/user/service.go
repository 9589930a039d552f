// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/courtbook-dev/courtbook/internal/auth"
	"github.com/courtbook-dev/courtbook/internal/core"
	"github.com/courtbook-dev/courtbook/internal/role"
)

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	CreateAccessToken(claims auth.AccessTokenClaims) (string, error)
}

// RoleProvider resolves role references during registration and update.
type RoleProvider interface {
	IDForName(ctx context.Context, name string) (string, error)
	NameForID(ctx context.Context, id string) (string, error)
}

type Service struct {
	repo   Repository
	roles  RoleProvider
	tokens TokenIssuer
	logger *slog.Logger
}

func NewService(
	repo Repository,
	roles RoleProvider,
	tokens TokenIssuer,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:   repo,
		roles:  roles,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates an account. Without an explicit role_id the new user
// gets the member role; only admins may submit a role_id at all, enforced
// at the handler.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*User, error) {
	roleID := ""
	roleName := role.NameMember

	if req.RoleID != nil {
		name, err := s.roles.NameForID(ctx, *req.RoleID)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return nil, fmt.Errorf("register: role: %w", core.ErrNotFound)
			}
			return nil, err
		}
		roleID = *req.RoleID
		roleName = name
	} else {
		id, err := s.roles.IDForName(ctx, role.NameMember)
		if err != nil {
			return nil, fmt.Errorf("register: member role missing: %w", err)
		}
		roleID = id
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: passwordHash,
		Phone:        req.Phone,
		RoleID:       roleID,
		RoleName:     roleName,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"role", user.RoleName,
	)

	return user, nil
}

// Login verifies the credentials and mints an access token. Password
// verification runs against a dummy hash when the email is unknown so
// response timing does not leak account existence.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (string, *User, error) {
	var storedHash *string

	user, err := s.repo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return "", nil, err
	}
	if user != nil {
		storedHash = &user.PasswordHash
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		storedHash,
	)
	if err != nil {
		return "", nil, fmt.Errorf("login: verify password: %w", err)
	}

	if !valid || user == nil {
		return "", nil, fmt.Errorf(
			"login: invalid credentials: %w",
			core.ErrUnauthorized,
		)
	}

	if newHash != "" {
		if err := s.repo.UpdatePassword(ctx, user.ID, newHash); err != nil {
			s.logger.Warn("password rehash failed",
				"user_id", user.ID,
				"error", err,
			)
		}
	}

	token, err := s.tokens.CreateAccessToken(auth.AccessTokenClaims{
		UserID: user.ID,
		Role:   user.RoleName,
	})
	if err != nil {
		return "", nil, fmt.Errorf("login: create token: %w", err)
	}

	return token, user, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(email))
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateUserRequest,
) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.RoleID != nil {
		name, err := s.roles.NameForID(ctx, *req.RoleID)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return nil, fmt.Errorf(
					"update user: role: %w",
					core.ErrNotFound,
				)
			}
			return nil, err
		}
		user.RoleID = *req.RoleID
		user.RoleName = name
	}
	if req.Verified != nil {
		user.Verified = *req.Verified
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) ChangePassword(
	ctx context.Context,
	id string,
	req ChangePasswordRequest,
) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	valid, err := core.VerifyPassword(
		req.CurrentPassword,
		user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	if !valid {
		return fmt.Errorf(
			"change password: wrong current password: %w",
			core.ErrUnauthorized,
		)
	}

	newHash, err := core.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("change password: hash: %w", err)
	}

	return s.repo.UpdatePassword(ctx, id, newHash)
}

// Delete removes an account. Accounts with reservation history cannot be
// removed; the booking records must keep a valid user reference.
func (s *Service) Delete(ctx context.Context, id string) error {
	reservations, err := s.repo.CountReservations(ctx, id)
	if err != nil {
		return err
	}

	if reservations > 0 {
		return fmt.Errorf(
			"delete user: %d reservations reference it: %w",
			reservations,
			core.ErrConflict,
		)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Exists reports whether a user row is present, used by the reservation
// service to validate booking requests.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
