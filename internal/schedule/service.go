// AngelaMos | 2026
// service.go

package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/courtbook-dev/courtbook/internal/core"
)

// CourtProvider is the slice of the court service the schedule needs.
type CourtProvider interface {
	IsActive(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo   Repository
	courts CourtProvider
}

func NewService(repo Repository, courts CourtProvider) *Service {
	return &Service{repo: repo, courts: courts}
}

func (s *Service) Create(
	ctx context.Context,
	req CreateSlotRequest,
) (*Slot, error) {
	if req.StartTime >= req.EndTime {
		return nil, fmt.Errorf(
			"create slot: start %s not before end %s: %w",
			req.StartTime,
			req.EndTime,
			core.ErrInvalidInput,
		)
	}

	active, err := s.courts.IsActive(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, fmt.Errorf("create slot: court: %w", core.ErrNotFound)
	}

	if err := s.checkOverlap(
		ctx, req.CourtID, req.DayOfWeek, req.StartTime, req.EndTime, "",
	); err != nil {
		return nil, err
	}

	slot := &Slot{
		ID:        uuid.New().String(),
		CourtID:   req.CourtID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Available: true,
	}

	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, err
	}

	return slot, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Slot, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial change. Day or time-range changes are re-checked
// for overlap against the court's other slots.
func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateSlotRequest,
) (*Slot, error) {
	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rangeChanged := false
	if req.DayOfWeek != nil && *req.DayOfWeek != slot.DayOfWeek {
		slot.DayOfWeek = *req.DayOfWeek
		rangeChanged = true
	}
	if req.StartTime != nil && *req.StartTime != slot.StartTime {
		slot.StartTime = *req.StartTime
		rangeChanged = true
	}
	if req.EndTime != nil && *req.EndTime != slot.EndTime {
		slot.EndTime = *req.EndTime
		rangeChanged = true
	}
	if req.Available != nil {
		slot.Available = *req.Available
	}

	if slot.StartTime >= slot.EndTime {
		return nil, fmt.Errorf(
			"update slot: start %s not before end %s: %w",
			slot.StartTime,
			slot.EndTime,
			core.ErrInvalidInput,
		)
	}

	if rangeChanged {
		if err := s.checkOverlap(
			ctx,
			slot.CourtID,
			slot.DayOfWeek,
			slot.StartTime,
			slot.EndTime,
			slot.ID,
		); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, slot); err != nil {
		return nil, err
	}

	return slot, nil
}

func (s *Service) SetAvailability(
	ctx context.Context,
	id string,
	available bool,
) (*Slot, error) {
	if err := s.repo.SetAvailability(ctx, id, available); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes a slot. Slots referenced by any reservation, past or
// present, cannot be removed.
func (s *Service) Delete(ctx context.Context, id string) error {
	reservations, err := s.repo.CountReservations(ctx, id)
	if err != nil {
		return err
	}

	if reservations > 0 {
		return fmt.Errorf(
			"delete slot: %d reservations reference it: %w",
			reservations,
			core.ErrConflict,
		)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Slot, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCourt(
	ctx context.Context,
	courtID string,
) ([]Slot, error) {
	return s.repo.ListByCourt(ctx, courtID)
}

// checkOverlap rejects a candidate range that shares any instant with an
// existing slot on the same court and day. excludeID skips the slot being
// updated so it does not collide with itself.
func (s *Service) checkOverlap(
	ctx context.Context,
	courtID string,
	day int,
	start, end, excludeID string,
) error {
	existing, err := s.repo.ListByCourtDay(ctx, courtID, day)
	if err != nil {
		return err
	}

	for i := range existing {
		if existing[i].ID == excludeID {
			continue
		}
		if Overlaps(start, end, existing[i].StartTime, existing[i].EndTime) {
			return fmt.Errorf(
				"slot %s-%s overlaps existing %s-%s: %w",
				start,
				end,
				existing[i].StartTime,
				existing[i].EndTime,
				core.ErrConflict,
			)
		}
	}

	return nil
}
