// AngelaMos | 2026
// repository.go

package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/courtbook-dev/courtbook/internal/core"
)

type Repository interface {
	Create(ctx context.Context, slot *Slot) error
	GetByID(ctx context.Context, id string) (*Slot, error)
	Update(ctx context.Context, slot *Slot) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Slot, error)
	ListByCourt(ctx context.Context, courtID string) ([]Slot, error)
	ListByCourtDay(ctx context.Context, courtID string, day int) ([]Slot, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	CountReservations(ctx context.Context, id string) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const slotColumns = `
	id, court_id, day_of_week,
	to_char(start_time, 'HH24:MI') AS start_time,
	to_char(end_time, 'HH24:MI') AS end_time,
	available`

func (r *repository) Create(ctx context.Context, slot *Slot) error {
	query := `
		INSERT INTO slots (id, court_id, day_of_week, start_time, end_time, available)
		VALUES ($1, $2, $3, $4::time, $5::time, $6)`

	_, err := r.db.ExecContext(ctx, query,
		slot.ID,
		slot.CourtID,
		slot.DayOfWeek,
		slot.StartTime,
		slot.EndTime,
		slot.Available,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create slot: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create slot: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE id = $1`

	var slot Slot
	err := r.db.GetContext(ctx, &slot, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get slot: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	return &slot, nil
}

func (r *repository) Update(ctx context.Context, slot *Slot) error {
	query := `
		UPDATE slots
		SET day_of_week = $2, start_time = $3::time, end_time = $4::time,
		    available = $5
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		slot.ID,
		slot.DayOfWeek,
		slot.StartTime,
		slot.EndTime,
		slot.Available,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("update slot: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update slot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update slot: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update slot: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM slots WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete slot: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]Slot, error) {
	query := `SELECT` + slotColumns + `
		FROM slots
		ORDER BY court_id, day_of_week, start_time`

	var slots []Slot
	if err := r.db.SelectContext(ctx, &slots, query); err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	return slots, nil
}

func (r *repository) ListByCourt(
	ctx context.Context,
	courtID string,
) ([]Slot, error) {
	query := `SELECT` + slotColumns + `
		FROM slots
		WHERE court_id = $1
		ORDER BY day_of_week, start_time`

	var slots []Slot
	if err := r.db.SelectContext(ctx, &slots, query, courtID); err != nil {
		return nil, fmt.Errorf("list slots by court: %w", err)
	}

	return slots, nil
}

func (r *repository) ListByCourtDay(
	ctx context.Context,
	courtID string,
	day int,
) ([]Slot, error) {
	query := `SELECT` + slotColumns + `
		FROM slots
		WHERE court_id = $1 AND day_of_week = $2
		ORDER BY start_time`

	var slots []Slot
	if err := r.db.SelectContext(ctx, &slots, query, courtID, day); err != nil {
		return nil, fmt.Errorf("list slots by court/day: %w", err)
	}

	return slots, nil
}

func (r *repository) SetAvailability(
	ctx context.Context,
	id string,
	available bool,
) error {
	query := `UPDATE slots SET available = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, available)
	if err != nil {
		return fmt.Errorf("set slot availability: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set slot availability: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("set slot availability: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) CountReservations(
	ctx context.Context,
	id string,
) (int, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE slot_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, id); err != nil {
		return 0, fmt.Errorf("count slot reservations: %w", err)
	}

	return count, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
