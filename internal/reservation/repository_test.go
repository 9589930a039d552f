// AngelaMos | 2026
// repository_test.go

package reservation

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"

	"github.com/courtbook-dev/courtbook/internal/core"
)

func testReservation() *Reservation {
	return &Reservation{
		ID:              uuid.New().String(),
		UserID:          uuid.New().String(),
		SlotID:          uuid.New().String(),
		ReservationDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:          StatusPending,
	}
}

func TestRepositoryCreate_ClaimsSlotAtomically(t *testing.T) {
	db, mock, err := sqlxmock.Newx()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	reservation := testReservation()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE slots SET available = FALSE WHERE id = $1 AND available`,
	)).
		WithArgs(reservation.SlotID).
		WillReturnResult(sqlxmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO reservations (id, user_id, slot_id, reservation_date, status)`,
	)).
		WithArgs(
			reservation.ID,
			reservation.UserID,
			reservation.SlotID,
			reservation.ReservationDate,
			reservation.Status,
		).
		WillReturnRows(
			sqlxmock.NewRows([]string{"created_at"}).AddRow(time.Now()),
		)
	mock.ExpectCommit()

	err = repo.Create(context.Background(), reservation)

	require.NoError(t, err)
	assert.False(t, reservation.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreate_SlotAlreadyClaimed(t *testing.T) {
	db, mock, err := sqlxmock.Newx()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	reservation := testReservation()

	// The conditional claim touches no rows, so the whole transaction
	// rolls back without inserting anything.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE slots SET available = FALSE WHERE id = $1 AND available`,
	)).
		WithArgs(reservation.SlotID).
		WillReturnResult(sqlxmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = repo.Create(context.Background(), reservation)

	require.ErrorIs(t, err, ErrSlotUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositorySetStatus_ReleasesSlot(t *testing.T) {
	db, mock, err := sqlxmock.Newx()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	reservationID := uuid.New().String()
	slotID := uuid.New().String()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE reservations`)).
		WithArgs(reservationID, StatusCancelled).
		WillReturnRows(
			sqlxmock.NewRows([]string{"slot_id"}).AddRow(slotID),
		)
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE slots SET available = TRUE WHERE id = $1`,
	)).
		WithArgs(slotID).
		WillReturnResult(sqlxmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.SetStatus(
		context.Background(),
		reservationID,
		StatusCancelled,
		true,
	)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositorySetStatus_ReactivationConflict(t *testing.T) {
	db, mock, err := sqlxmock.Newx()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	reservationID := uuid.New().String()

	// Moving a cancelled reservation back to pending while another active
	// reservation holds the same slot and date violates the per-date
	// uniqueness and must surface as a duplicate, not a raw driver error.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE reservations`)).
		WithArgs(reservationID, StatusPending).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err = repo.SetStatus(
		context.Background(),
		reservationID,
		StatusPending,
		false,
	)

	require.ErrorIs(t, err, core.ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDelete_ReleasesSlot(t *testing.T) {
	db, mock, err := sqlxmock.Newx()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	reservationID := uuid.New().String()
	slotID := uuid.New().String()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		`DELETE FROM reservations WHERE id = $1 RETURNING slot_id`,
	)).
		WithArgs(reservationID).
		WillReturnRows(
			sqlxmock.NewRows([]string{"slot_id"}).AddRow(slotID),
		)
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE slots SET available = TRUE WHERE id = $1`,
	)).
		WithArgs(slotID).
		WillReturnResult(sqlxmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.Delete(context.Background(), reservationID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlxmock.Newx()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New().String()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WithArgs(id).
		WillReturnRows(sqlxmock.NewRows([]string{
			"id", "user_id", "slot_id",
			"reservation_date", "status", "created_at",
		}))

	_, err = repo.GetByID(context.Background(), id)

	require.ErrorIs(t, err, core.ErrNotFound)
}
