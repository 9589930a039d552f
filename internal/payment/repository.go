// AngelaMos | 2026
// repository.go

package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/courtbook-dev/courtbook/internal/core"
)

type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id string) (*Payment, error)
	Update(ctx context.Context, payment *Payment) error
	SetStatus(
		ctx context.Context,
		id, status string,
		transactionID *string,
		markPaid bool,
	) (*Payment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Payment, error)
	ListByReservation(ctx context.Context, reservationID string) ([]Payment, error)
	ListByUser(ctx context.Context, userID string) ([]Payment, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const paymentColumns = `
	id, reservation_id, amount, method, status,
	transaction_id, paid_at, created_at`

func (r *repository) Create(ctx context.Context, payment *Payment) error {
	query := `
		INSERT INTO payments (id, reservation_id, amount, method, status, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &payment.CreatedAt, query,
		payment.ID,
		payment.ReservationID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Payment, error) {
	query := `SELECT` + paymentColumns + ` FROM payments WHERE id = $1`

	var payment Payment
	err := r.db.GetContext(ctx, &payment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get payment: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	return &payment, nil
}

func (r *repository) Update(ctx context.Context, payment *Payment) error {
	query := `
		UPDATE payments
		SET amount = $2, method = $3, transaction_id = $4
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.Amount,
		payment.Method,
		payment.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update payment: %w", core.ErrNotFound)
	}

	return nil
}

// SetStatus updates the payment status. A completed payment stamps paid_at
// once; a supplied transaction_id overrides the stored one, otherwise the
// stored value is kept.
func (r *repository) SetStatus(
	ctx context.Context,
	id, status string,
	transactionID *string,
	markPaid bool,
) (*Payment, error) {
	query := `
		UPDATE payments
		SET status = $2,
		    transaction_id = COALESCE($3, transaction_id),
		    paid_at = CASE WHEN $4 THEN COALESCE(paid_at, NOW()) ELSE paid_at END
		WHERE id = $1
		RETURNING` + paymentColumns

	var payment Payment
	err := r.db.GetContext(ctx, &payment, query,
		id,
		status,
		transactionID,
		markPaid,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("set payment status: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("set payment status: %w", err)
	}

	return &payment, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM payments WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete payment: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]Payment, error) {
	query := `SELECT` + paymentColumns + `
		FROM payments
		ORDER BY created_at DESC`

	var payments []Payment
	if err := r.db.SelectContext(ctx, &payments, query); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return payments, nil
}

func (r *repository) ListByReservation(
	ctx context.Context,
	reservationID string,
) ([]Payment, error) {
	query := `SELECT` + paymentColumns + `
		FROM payments
		WHERE reservation_id = $1
		ORDER BY created_at DESC`

	var payments []Payment
	err := r.db.SelectContext(ctx, &payments, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("list payments by reservation: %w", err)
	}

	return payments, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Payment, error) {
	query := `
		SELECT p.id, p.reservation_id, p.amount, p.method, p.status,
		       p.transaction_id, p.paid_at, p.created_at
		FROM payments p
		JOIN reservations res ON res.id = p.reservation_id
		WHERE res.user_id = $1
		ORDER BY p.created_at DESC`

	var payments []Payment
	if err := r.db.SelectContext(ctx, &payments, query, userID); err != nil {
		return nil, fmt.Errorf("list payments by user: %w", err)
	}

	return payments, nil
}
