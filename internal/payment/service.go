// AngelaMos | 2026
// service.go

package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/courtbook-dev/courtbook/internal/core"
)

// ReservationProvider is the slice of the reservation service the payment
// flow needs: reference validation, ownership checks, and the
// payment-completion cascade.
type ReservationProvider interface {
	Exists(ctx context.Context, id string) (bool, error)
	OwnedBy(ctx context.Context, id, userID string) (bool, error)
	Confirm(ctx context.Context, id string) error
}

type Service struct {
	repo         Repository
	reservations ReservationProvider
	logger       *slog.Logger
}

func NewService(
	repo Repository,
	reservations ReservationProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:         repo,
		reservations: reservations,
		logger:       logger,
	}
}

func (s *Service) Create(
	ctx context.Context,
	req CreatePaymentRequest,
) (*Payment, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf(
			"create payment: amount must be positive: %w",
			core.ErrInvalidInput,
		)
	}
	if !ValidMethod(req.Method) {
		return nil, fmt.Errorf(
			"create payment: bad method %q: %w",
			req.Method,
			core.ErrInvalidInput,
		)
	}

	exists, err := s.reservations.Exists(ctx, req.ReservationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf(
			"create payment: reservation: %w",
			core.ErrNotFound,
		)
	}

	payment := &Payment{
		ID:            uuid.New().String(),
		ReservationID: req.ReservationID,
		Amount:        req.Amount,
		Method:        req.Method,
		Status:        StatusPending,
		TransactionID: req.TransactionID,
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("payment created",
		"payment_id", payment.ID,
		"reservation_id", payment.ReservationID,
		"method", payment.Method,
	)

	return payment, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdatePaymentRequest,
) (*Payment, error) {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.Method != nil {
		payment.Method = *req.Method
	}
	if req.TransactionID != nil {
		payment.TransactionID = req.TransactionID
	}

	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, err
	}

	// A status carried on the partial update goes through the same
	// transition path as the dedicated endpoint, cascade included.
	if req.Status != nil {
		return s.SetStatus(ctx, id, *req.Status, req.TransactionID)
	}

	return payment, nil
}

// SetStatus applies a payment status transition. Completing a payment
// stamps paid_at and forces the linked reservation to confirmed. The
// cascade is one way: a later refund or rejection does not revert the
// reservation.
func (s *Service) SetStatus(
	ctx context.Context,
	id, status string,
	transactionID *string,
) (*Payment, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf(
			"set payment status: bad status %q: %w",
			status,
			core.ErrInvalidInput,
		)
	}

	markPaid := status == StatusCompleted

	payment, err := s.repo.SetStatus(ctx, id, status, transactionID, markPaid)
	if err != nil {
		return nil, err
	}

	if markPaid {
		if err := s.reservations.Confirm(
			ctx,
			payment.ReservationID,
		); err != nil {
			return nil, fmt.Errorf("confirm reservation: %w", err)
		}
	}

	s.logger.Info("payment status changed",
		"payment_id", id,
		"status", status,
	)

	return payment, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Payment, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByReservation(
	ctx context.Context,
	reservationID string,
) ([]Payment, error) {
	return s.repo.ListByReservation(ctx, reservationID)
}

func (s *Service) ListByUser(
	ctx context.Context,
	userID string,
) ([]Payment, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ReservationOwnedBy lets the handler scope payment reads to the caller's
// own reservations.
func (s *Service) ReservationOwnedBy(
	ctx context.Context,
	reservationID, userID string,
) (bool, error) {
	return s.reservations.OwnedBy(ctx, reservationID, userID)
}
