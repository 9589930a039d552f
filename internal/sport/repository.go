// AngelaMos | 2026
// repository.go

package sport

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/courtbook-dev/courtbook/internal/core"
)

type Repository interface {
	Create(ctx context.Context, sport *Sport) error
	GetByID(ctx context.Context, id string) (*Sport, error)
	Update(ctx context.Context, sport *Sport) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Sport, error)
	CountCourts(ctx context.Context, id string) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, sport *Sport) error {
	query := `
		INSERT INTO sports (id, name, description, image_url)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query,
		sport.ID,
		sport.Name,
		sport.Description,
		sport.ImageURL,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create sport: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create sport: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Sport, error) {
	query := `
		SELECT id, name, description, image_url
		FROM sports
		WHERE id = $1`

	var sport Sport
	err := r.db.GetContext(ctx, &sport, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get sport: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get sport: %w", err)
	}

	return &sport, nil
}

func (r *repository) Update(ctx context.Context, sport *Sport) error {
	query := `
		UPDATE sports
		SET name = $2, description = $3, image_url = $4
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		sport.ID,
		sport.Name,
		sport.Description,
		sport.ImageURL,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("update sport: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update sport: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update sport: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update sport: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sports WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete sport: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete sport: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete sport: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]Sport, error) {
	query := `
		SELECT id, name, description, image_url
		FROM sports
		ORDER BY name`

	var sports []Sport
	if err := r.db.SelectContext(ctx, &sports, query); err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}

	return sports, nil
}

func (r *repository) CountCourts(
	ctx context.Context,
	id string,
) (int, error) {
	query := `SELECT COUNT(*) FROM courts WHERE sport_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, id); err != nil {
		return 0, fmt.Errorf("count sport courts: %w", err)
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
