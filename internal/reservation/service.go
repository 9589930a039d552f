// AngelaMos | 2026
// service.go

package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/courtbook-dev/courtbook/internal/core"
)

// UserProvider is the slice of the user service the booking flow needs.
type UserProvider interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo   Repository
	users  UserProvider
	logger *slog.Logger
}

func NewService(
	repo Repository,
	users UserProvider,
	logger *slog.Logger,
) *Service {
	return &Service{repo: repo, users: users, logger: logger}
}

// Create books a slot for a user on a date. The slot claim itself is
// atomic in the repository; this layer validates the request.
func (s *Service) Create(
	ctx context.Context,
	req CreateReservationRequest,
) (*Reservation, error) {
	date, err := time.Parse("2006-01-02", req.ReservationDate)
	if err != nil {
		return nil, fmt.Errorf(
			"create reservation: bad date %q: %w",
			req.ReservationDate,
			core.ErrInvalidInput,
		)
	}

	exists, err := s.users.Exists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("create reservation: user: %w", core.ErrNotFound)
	}

	reservation := &Reservation{
		ID:              uuid.New().String(),
		UserID:          req.UserID,
		SlotID:          req.SlotID,
		ReservationDate: date,
		Status:          StatusPending,
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		if errors.Is(err, ErrSlotUnavailable) {
			core.AddSpanEvent(ctx, "slot claim lost",
				attribute.String("slot_id", reservation.SlotID),
				attribute.String("date", req.ReservationDate),
			)
		} else {
			core.SetSpanError(ctx, err)
		}
		return nil, err
	}

	core.AddSpanEvent(ctx, "slot claimed",
		attribute.String("slot_id", reservation.SlotID),
	)
	s.logger.Info("reservation created",
		"reservation_id", reservation.ID,
		"slot_id", reservation.SlotID,
		"date", req.ReservationDate,
	)

	return reservation, nil
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus applies a status transition. Moving to cancelled releases
// the slot; every other transition leaves the slot alone.
func (s *Service) UpdateStatus(
	ctx context.Context,
	id, status string,
) (*Reservation, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf(
			"update reservation: bad status %q: %w",
			status,
			core.ErrInvalidInput,
		)
	}

	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	releaseSlot := status == StatusCancelled && reservation.Active()

	if err := s.repo.SetStatus(ctx, id, status, releaseSlot); err != nil {
		return nil, err
	}

	reservation.Status = status

	s.logger.Info("reservation status changed",
		"reservation_id", id,
		"status", status,
		"slot_released", releaseSlot,
	)

	return reservation, nil
}

// Delete removes a reservation and frees its slot. Confirmed reservations
// are protected; they must be cancelled through a status transition first.
func (s *Service) Delete(ctx context.Context, id string) error {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if reservation.Status == StatusConfirmed {
		return fmt.Errorf(
			"delete reservation: confirmed reservations are protected: %w",
			core.ErrForbidden,
		)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Reservation, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByUser(
	ctx context.Context,
	userID string,
) ([]Reservation, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Confirm forces a reservation to confirmed, the payment-completion
// cascade. It applies regardless of the prior status and never touches
// the slot.
func (s *Service) Confirm(ctx context.Context, id string) error {
	if err := s.repo.SetStatus(ctx, id, StatusConfirmed, false); err != nil {
		return err
	}

	s.logger.Info("reservation confirmed by payment", "reservation_id", id)
	return nil
}

// Exists reports whether a reservation row is present, used by the payment
// service to validate references.
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

// OwnedBy reports whether the reservation belongs to the given user.
func (s *Service) OwnedBy(
	ctx context.Context,
	id, userID string,
) (bool, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return reservation.UserID == userID, nil
}
