// AngelaMos | 2026
// repository.go

package court

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/courtbook-dev/courtbook/internal/core"
)

type Repository interface {
	Create(ctx context.Context, court *Court) error
	GetByID(ctx context.Context, id string) (*Court, error)
	Update(ctx context.Context, court *Court) error
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context) ([]Court, error)
	ListBySport(ctx context.Context, sportID string) ([]Court, error)
	CountSlots(ctx context.Context, id string) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, court *Court) error {
	query := `
		INSERT INTO courts (id, name, sport_id, description, hourly_price, image_url, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		court.ID,
		court.Name,
		court.SportID,
		court.Description,
		court.HourlyPrice,
		court.ImageURL,
		court.Active,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create court: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create court: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Court, error) {
	query := `
		SELECT id, name, sport_id, description, hourly_price, image_url, active
		FROM courts
		WHERE id = $1`

	var court Court
	err := r.db.GetContext(ctx, &court, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get court: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get court: %w", err)
	}

	return &court, nil
}

func (r *repository) Update(ctx context.Context, court *Court) error {
	query := `
		UPDATE courts
		SET name = $2, description = $3, hourly_price = $4,
		    image_url = $5, active = $6
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		court.ID,
		court.Name,
		court.Description,
		court.HourlyPrice,
		court.ImageURL,
		court.Active,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("update court: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update court: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update court: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update court: %w", core.ErrNotFound)
	}

	return nil
}

// Deactivate performs the logical delete. Court rows are never removed so
// historical reservations keep a valid reference.
func (r *repository) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE courts SET active = FALSE WHERE id = $1 AND active`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate court: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deactivate court: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("deactivate court: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]Court, error) {
	query := `
		SELECT id, name, sport_id, description, hourly_price, image_url, active
		FROM courts
		ORDER BY name`

	var courts []Court
	if err := r.db.SelectContext(ctx, &courts, query); err != nil {
		return nil, fmt.Errorf("list courts: %w", err)
	}

	return courts, nil
}

func (r *repository) ListBySport(
	ctx context.Context,
	sportID string,
) ([]Court, error) {
	query := `
		SELECT id, name, sport_id, description, hourly_price, image_url, active
		FROM courts
		WHERE sport_id = $1
		ORDER BY name`

	var courts []Court
	if err := r.db.SelectContext(ctx, &courts, query, sportID); err != nil {
		return nil, fmt.Errorf("list courts by sport: %w", err)
	}

	return courts, nil
}

func (r *repository) CountSlots(
	ctx context.Context,
	id string,
) (int, error) {
	query := `SELECT COUNT(*) FROM slots WHERE court_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, id); err != nil {
		return 0, fmt.Errorf("count court slots: %w", err)
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
