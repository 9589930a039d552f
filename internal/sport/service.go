// AngelaMos | 2026
// service.go

package sport

import (
	"context"
	"errors"
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
	req CreateSportRequest,
) (*Sport, error) {
	sport := &Sport{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.Create(ctx, sport); err != nil {
		return nil, err
	}

	return sport, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Sport, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateSportRequest,
) (*Sport, error) {
	sport, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sport.Name = *req.Name
	}
	if req.Description != nil {
		sport.Description = req.Description
	}
	if req.ImageURL != nil {
		sport.ImageURL = req.ImageURL
	}

	if err := s.repo.Update(ctx, sport); err != nil {
		return nil, err
	}

	return sport, nil
}

// Delete removes a sport. Sports with courts cannot be removed until the
// courts are reassigned or deleted.
func (s *Service) Delete(ctx context.Context, id string) error {
	courts, err := s.repo.CountCourts(ctx, id)
	if err != nil {
		return err
	}

	if courts > 0 {
		return fmt.Errorf(
			"delete sport: %d courts reference it: %w",
			courts,
			core.ErrConflict,
		)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Sport, error) {
	return s.repo.List(ctx)
}

// Exists reports whether a sport row is present, used by the court service
// to validate references.
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
