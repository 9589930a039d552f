// AngelaMos | 2026
// service.go

package role

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/courtbook-dev/courtbook/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	req CreateRoleRequest,
) (*Role, error) {
	role := &Role{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Role, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByName(
	ctx context.Context,
	name string,
) (*Role, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateRoleRequest,
) (*Role, error) {
	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.Description != nil {
		role.Description = req.Description
	}

	if err := s.repo.Update(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// Delete removes a role. Roles still assigned to users cannot be removed.
func (s *Service) Delete(ctx context.Context, id string) error {
	users, err := s.repo.CountUsers(ctx, id)
	if err != nil {
		return err
	}

	if users > 0 {
		return fmt.Errorf(
			"delete role: %d users assigned: %w",
			users,
			core.ErrConflict,
		)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Role, error) {
	return s.repo.List(ctx)
}

// IDForName resolves a role name to its ID, used to assign the default
// member role at registration.
func (s *Service) IDForName(ctx context.Context, name string) (string, error) {
	role, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return "", err
	}
	return role.ID, nil
}

// NameForID resolves a role ID to its name and doubles as an existence
// check when a request supplies an explicit role_id.
func (s *Service) NameForID(ctx context.Context, id string) (string, error) {
	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return role.Name, nil
}
