// AngelaMos | 2026
// service.go

package court

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/courtbook-dev/courtbook/internal/core"
)

// SportProvider is the slice of the sport service the court service needs.
type SportProvider interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo   Repository
	sports SportProvider
}

func NewService(repo Repository, sports SportProvider) *Service {
	return &Service{repo: repo, sports: sports}
}

func (s *Service) Create(
	ctx context.Context,
	req CreateCourtRequest,
) (*Court, error) {
	exists, err := s.sports.Exists(ctx, req.SportID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("create court: sport: %w", core.ErrNotFound)
	}

	court := &Court{
		ID:          uuid.New().String(),
		Name:        req.Name,
		SportID:     req.SportID,
		Description: req.Description,
		HourlyPrice: req.HourlyPrice,
		ImageURL:    req.ImageURL,
		Active:      true,
	}

	if err := s.repo.Create(ctx, court); err != nil {
		return nil, err
	}

	return court, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateCourtRequest,
) (*Court, error) {
	court, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		court.Name = *req.Name
	}
	if req.Description != nil {
		court.Description = req.Description
	}
	if req.HourlyPrice != nil {
		court.HourlyPrice = *req.HourlyPrice
	}
	if req.ImageURL != nil {
		court.ImageURL = req.ImageURL
	}
	if req.Active != nil {
		court.Active = *req.Active
	}

	if err := s.repo.Update(ctx, court); err != nil {
		return nil, err
	}

	return court, nil
}

// Delete deactivates a court. Courts with schedule slots cannot be removed
// until their slots are deleted.
func (s *Service) Delete(ctx context.Context, id string) error {
	slots, err := s.repo.CountSlots(ctx, id)
	if err != nil {
		return err
	}

	if slots > 0 {
		return fmt.Errorf(
			"delete court: %d slots reference it: %w",
			slots,
			core.ErrConflict,
		)
	}

	return s.repo.Deactivate(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Court, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListBySport(
	ctx context.Context,
	sportID string,
) ([]Court, error) {
	exists, err := s.sports.Exists(ctx, sportID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("list courts: sport: %w", core.ErrNotFound)
	}

	return s.repo.ListBySport(ctx, sportID)
}

// IsActive reports whether a court exists and accepts bookings, used by the
// schedule service to validate slot references.
func (s *Service) IsActive(ctx context.Context, id string) (bool, error) {
	court, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return court.Active, nil
}
