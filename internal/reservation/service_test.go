// AngelaMos | 2026
// service_test.go

package reservation

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtbook-dev/courtbook/internal/core"
)

type fakeReservationRepo struct {
	reservations map[string]*Reservation
	slotFree     map[string]bool
	released     []string
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		reservations: map[string]*Reservation{},
		slotFree:     map[string]bool{},
	}
}

func (f *fakeReservationRepo) Create(
	_ context.Context,
	reservation *Reservation,
) error {
	if !f.slotFree[reservation.SlotID] {
		return ErrSlotUnavailable
	}
	for _, existing := range f.reservations {
		if existing.SlotID == reservation.SlotID &&
			existing.ReservationDate.Equal(reservation.ReservationDate) &&
			existing.Active() {
			return core.ErrDuplicateKey
		}
	}
	f.slotFree[reservation.SlotID] = false
	reservation.CreatedAt = time.Now()
	f.reservations[reservation.ID] = reservation
	return nil
}

func (f *fakeReservationRepo) GetByID(
	_ context.Context,
	id string,
) (*Reservation, error) {
	if r, ok := f.reservations[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeReservationRepo) SetStatus(
	_ context.Context,
	id, status string,
	releaseSlot bool,
) error {
	r, ok := f.reservations[id]
	if !ok {
		return core.ErrNotFound
	}
	r.Status = status
	if releaseSlot {
		f.slotFree[r.SlotID] = true
		f.released = append(f.released, r.SlotID)
	}
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id string) error {
	r, ok := f.reservations[id]
	if !ok {
		return core.ErrNotFound
	}
	f.slotFree[r.SlotID] = true
	f.released = append(f.released, r.SlotID)
	delete(f.reservations, id)
	return nil
}

func (f *fakeReservationRepo) List(_ context.Context) ([]Reservation, error) {
	out := make([]Reservation, 0, len(f.reservations))
	for _, r := range f.reservations {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReservationRepo) ListByUser(
	_ context.Context,
	userID string,
) ([]Reservation, error) {
	var out []Reservation
	for _, r := range f.reservations {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeUsers struct {
	known map[string]bool
}

func (f *fakeUsers) Exists(_ context.Context, id string) (bool, error) {
	return f.known[id], nil
}

func testService(
	repo *fakeReservationRepo,
	users *fakeUsers,
) *Service {
	return NewService(repo, users, slog.New(slog.DiscardHandler))
}

func TestCreateReservation(t *testing.T) {
	userID := uuid.New().String()
	slotID := uuid.New().String()

	repo := newFakeReservationRepo()
	repo.slotFree[slotID] = true
	svc := testService(repo, &fakeUsers{known: map[string]bool{userID: true}})

	reservation, err := svc.Create(
		context.Background(),
		CreateReservationRequest{
			UserID:          userID,
			SlotID:          slotID,
			ReservationDate: "2026-09-01",
		},
	)

	require.NoError(t, err)
	assert.Equal(t, StatusPending, reservation.Status)
	assert.False(t, repo.slotFree[slotID], "slot must be claimed")
}

func TestCreateReservation_SlotUnavailable(t *testing.T) {
	userID := uuid.New().String()
	slotID := uuid.New().String()

	repo := newFakeReservationRepo()
	repo.slotFree[slotID] = false
	svc := testService(repo, &fakeUsers{known: map[string]bool{userID: true}})

	_, err := svc.Create(context.Background(), CreateReservationRequest{
		UserID:          userID,
		SlotID:          slotID,
		ReservationDate: "2026-09-01",
	})

	require.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestCreateReservation_UnknownUser(t *testing.T) {
	slotID := uuid.New().String()

	repo := newFakeReservationRepo()
	repo.slotFree[slotID] = true
	svc := testService(repo, &fakeUsers{known: map[string]bool{}})

	_, err := svc.Create(context.Background(), CreateReservationRequest{
		UserID:          uuid.New().String(),
		SlotID:          slotID,
		ReservationDate: "2026-09-01",
	})

	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestCreateReservation_BadDate(t *testing.T) {
	svc := testService(newFakeReservationRepo(), &fakeUsers{})

	_, err := svc.Create(context.Background(), CreateReservationRequest{
		UserID:          uuid.New().String(),
		SlotID:          uuid.New().String(),
		ReservationDate: "01/09/2026",
	})

	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestCancelReleasesSlot(t *testing.T) {
	userID := uuid.New().String()
	slotID := uuid.New().String()

	repo := newFakeReservationRepo()
	repo.slotFree[slotID] = true
	svc := testService(repo, &fakeUsers{known: map[string]bool{userID: true}})

	created, err := svc.Create(context.Background(), CreateReservationRequest{
		UserID:          userID,
		SlotID:          slotID,
		ReservationDate: "2026-09-01",
	})
	require.NoError(t, err)
	require.False(t, repo.slotFree[slotID])

	updated, err := svc.UpdateStatus(
		context.Background(),
		created.ID,
		StatusCancelled,
	)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, updated.Status)
	assert.True(t, repo.slotFree[slotID], "cancel must free the slot")

	// The freed slot can be booked again for the same date.
	_, err = svc.Create(context.Background(), CreateReservationRequest{
		UserID:          userID,
		SlotID:          slotID,
		ReservationDate: "2026-09-01",
	})
	require.NoError(t, err)
}

func TestUpdateStatus_ConfirmKeepsSlotClaimed(t *testing.T) {
	userID := uuid.New().String()
	slotID := uuid.New().String()

	repo := newFakeReservationRepo()
	repo.slotFree[slotID] = true
	svc := testService(repo, &fakeUsers{known: map[string]bool{userID: true}})

	created, err := svc.Create(context.Background(), CreateReservationRequest{
		UserID:          userID,
		SlotID:          slotID,
		ReservationDate: "2026-09-01",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, StatusConfirmed)
	require.NoError(t, err)
	assert.False(t, repo.slotFree[slotID])
	assert.Empty(t, repo.released)
}

func TestUpdateStatus_Invalid(t *testing.T) {
	svc := testService(newFakeReservationRepo(), &fakeUsers{})

	_, err := svc.UpdateStatus(
		context.Background(),
		uuid.New().String(),
		"archived",
	)

	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestDeleteReservation(t *testing.T) {
	userID := uuid.New().String()
	slotID := uuid.New().String()

	repo := newFakeReservationRepo()
	repo.slotFree[slotID] = true
	svc := testService(repo, &fakeUsers{known: map[string]bool{userID: true}})

	created, err := svc.Create(context.Background(), CreateReservationRequest{
		UserID:          userID,
		SlotID:          slotID,
		ReservationDate: "2026-09-01",
	})
	require.NoError(t, err)

	// Confirmed reservations are protected from deletion.
	_, err = svc.UpdateStatus(context.Background(), created.ID, StatusConfirmed)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID)
	require.ErrorIs(t, err, core.ErrForbidden)

	// Back to pending, deletion succeeds and frees the slot.
	_, err = svc.UpdateStatus(context.Background(), created.ID, StatusPending)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, repo.slotFree[slotID])
}

func TestConfirmCascade(t *testing.T) {
	userID := uuid.New().String()
	slotID := uuid.New().String()

	repo := newFakeReservationRepo()
	repo.slotFree[slotID] = true
	svc := testService(repo, &fakeUsers{known: map[string]bool{userID: true}})

	created, err := svc.Create(context.Background(), CreateReservationRequest{
		UserID:          userID,
		SlotID:          slotID,
		ReservationDate: "2026-09-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Confirm(context.Background(), created.ID))

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, got.Status)
}
