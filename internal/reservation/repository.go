// AngelaMos | 2026
// repository.go

package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/courtbook-dev/courtbook/internal/core"
)

// ErrSlotUnavailable reports a booking attempt against a slot that is
// missing or already claimed.
var ErrSlotUnavailable = errors.New("slot unavailable")

type Repository interface {
	Create(ctx context.Context, reservation *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	SetStatus(ctx context.Context, id, status string, releaseSlot bool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]Reservation, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create books a slot atomically: the conditional claim and the reservation
// insert commit together or not at all, so two concurrent requests for the
// same slot cannot both succeed. The partial unique index on
// (slot_id, reservation_date) backstops the per-date constraint.
func (r *repository) Create(
	ctx context.Context,
	reservation *Reservation,
) error {
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		claim := `UPDATE slots SET available = FALSE WHERE id = $1 AND available`

		result, err := tx.ExecContext(ctx, claim, reservation.SlotID)
		if err != nil {
			return fmt.Errorf("claim slot: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("claim slot: %w", err)
		}

		if rows == 0 {
			return fmt.Errorf("claim slot: %w", ErrSlotUnavailable)
		}

		insert := `
			INSERT INTO reservations (id, user_id, slot_id, reservation_date, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at`

		err = tx.GetContext(ctx, &reservation.CreatedAt, insert,
			reservation.ID,
			reservation.UserID,
			reservation.SlotID,
			reservation.ReservationDate,
			reservation.Status,
		)
		if err != nil {
			if isDuplicateKeyError(err) {
				return fmt.Errorf(
					"insert reservation: %w",
					core.ErrDuplicateKey,
				)
			}
			return fmt.Errorf("insert reservation: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Reservation, error) {
	query := `
		SELECT id, user_id, slot_id, reservation_date, status, created_at
		FROM reservations
		WHERE id = $1`

	var reservation Reservation
	err := r.db.GetContext(ctx, &reservation, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get reservation: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	return &reservation, nil
}

// SetStatus updates the reservation status and, when releaseSlot is set,
// frees the slot in the same transaction.
func (r *repository) SetStatus(
	ctx context.Context,
	id, status string,
	releaseSlot bool,
) error {
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		update := `
			UPDATE reservations
			SET status = $2
			WHERE id = $1
			RETURNING slot_id`

		var slotID string
		err := tx.GetContext(ctx, &slotID, update, id, status)
		if errors.Is(err, sql.ErrNoRows) {
			return core.ErrNotFound
		}
		if err != nil {
			// Re-activating a cancelled reservation collides with the
			// per-date uniqueness when another active one took the slot.
			if isDuplicateKeyError(err) {
				return fmt.Errorf("update status: %w", core.ErrDuplicateKey)
			}
			return fmt.Errorf("update status: %w", err)
		}

		if releaseSlot {
			release := `UPDATE slots SET available = TRUE WHERE id = $1`
			if _, err := tx.ExecContext(ctx, release, slotID); err != nil {
				return fmt.Errorf("release slot: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("set reservation status: %w", err)
	}

	return nil
}

// Delete removes a reservation and frees its slot together.
func (r *repository) Delete(ctx context.Context, id string) error {
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		del := `DELETE FROM reservations WHERE id = $1 RETURNING slot_id`

		var slotID string
		err := tx.GetContext(ctx, &slotID, del, id)
		if errors.Is(err, sql.ErrNoRows) {
			return core.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("delete row: %w", err)
		}

		release := `UPDATE slots SET available = TRUE WHERE id = $1`
		if _, err := tx.ExecContext(ctx, release, slotID); err != nil {
			return fmt.Errorf("release slot: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]Reservation, error) {
	query := `
		SELECT id, user_id, slot_id, reservation_date, status, created_at
		FROM reservations
		ORDER BY created_at DESC`

	var reservations []Reservation
	if err := r.db.SelectContext(ctx, &reservations, query); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	return reservations, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Reservation, error) {
	query := `
		SELECT id, user_id, slot_id, reservation_date, status, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY reservation_date DESC, created_at DESC`

	var reservations []Reservation
	err := r.db.SelectContext(ctx, &reservations, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by user: %w", err)
	}

	return reservations, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
