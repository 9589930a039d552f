// AngelaMos | 2026
// service_test.go

package court

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtbook-dev/courtbook/internal/core"
)

type fakeCourtRepo struct {
	courts map[string]*Court
	slots  map[string]int
}

func newFakeCourtRepo() *fakeCourtRepo {
	return &fakeCourtRepo{
		courts: map[string]*Court{},
		slots:  map[string]int{},
	}
}

func (f *fakeCourtRepo) Create(_ context.Context, court *Court) error {
	f.courts[court.ID] = court
	return nil
}

func (f *fakeCourtRepo) GetByID(
	_ context.Context,
	id string,
) (*Court, error) {
	if c, ok := f.courts[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeCourtRepo) Update(_ context.Context, court *Court) error {
	if _, ok := f.courts[court.ID]; !ok {
		return core.ErrNotFound
	}
	copied := *court
	f.courts[court.ID] = &copied
	return nil
}

// Deactivate mirrors the conditional update: already-inactive and missing
// courts both touch zero rows.
func (f *fakeCourtRepo) Deactivate(_ context.Context, id string) error {
	c, ok := f.courts[id]
	if !ok || !c.Active {
		return core.ErrNotFound
	}
	c.Active = false
	return nil
}

func (f *fakeCourtRepo) List(_ context.Context) ([]Court, error) {
	out := make([]Court, 0, len(f.courts))
	for _, c := range f.courts {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCourtRepo) ListBySport(
	_ context.Context,
	sportID string,
) ([]Court, error) {
	var out []Court
	for _, c := range f.courts {
		if c.SportID == sportID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCourtRepo) CountSlots(
	_ context.Context,
	id string,
) (int, error) {
	return f.slots[id], nil
}

type fakeSports struct {
	known map[string]bool
}

func (f *fakeSports) Exists(_ context.Context, id string) (bool, error) {
	return f.known[id], nil
}

func TestCreateCourt(t *testing.T) {
	sportID := uuid.New().String()
	svc := NewService(
		newFakeCourtRepo(),
		&fakeSports{known: map[string]bool{sportID: true}},
	)

	court, err := svc.Create(context.Background(), CreateCourtRequest{
		Name:        "Cancha 1",
		SportID:     sportID,
		HourlyPrice: 25,
	})

	require.NoError(t, err)
	assert.True(t, court.Active, "new courts accept bookings")
	assert.Equal(t, sportID, court.SportID)
}

func TestCreateCourt_UnknownSport(t *testing.T) {
	svc := NewService(
		newFakeCourtRepo(),
		&fakeSports{known: map[string]bool{}},
	)

	_, err := svc.Create(context.Background(), CreateCourtRequest{
		Name:        "Cancha 1",
		SportID:     uuid.New().String(),
		HourlyPrice: 25,
	})

	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteCourt_BlockedBySlots(t *testing.T) {
	sportID := uuid.New().String()
	repo := newFakeCourtRepo()
	svc := NewService(
		repo,
		&fakeSports{known: map[string]bool{sportID: true}},
	)

	court, err := svc.Create(context.Background(), CreateCourtRequest{
		Name:        "Cancha 1",
		SportID:     sportID,
		HourlyPrice: 25,
	})
	require.NoError(t, err)

	repo.slots[court.ID] = 3
	err = svc.Delete(context.Background(), court.ID)
	require.ErrorIs(t, err, core.ErrConflict)

	active, err := svc.IsActive(context.Background(), court.ID)
	require.NoError(t, err)
	assert.True(t, active, "blocked delete leaves the court active")

	// With the slots gone the delete deactivates instead of removing.
	repo.slots[court.ID] = 0
	require.NoError(t, svc.Delete(context.Background(), court.ID))

	active, err = svc.IsActive(context.Background(), court.ID)
	require.NoError(t, err)
	assert.False(t, active)

	got, err := svc.GetByID(context.Background(), court.ID)
	require.NoError(t, err, "deactivated courts stay readable")
	assert.False(t, got.Active)
}

func TestDeleteCourt_AlreadyInactive(t *testing.T) {
	sportID := uuid.New().String()
	repo := newFakeCourtRepo()
	svc := NewService(
		repo,
		&fakeSports{known: map[string]bool{sportID: true}},
	)

	court, err := svc.Create(context.Background(), CreateCourtRequest{
		Name:        "Cancha 1",
		SportID:     sportID,
		HourlyPrice: 25,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), court.ID))
	err = svc.Delete(context.Background(), court.ID)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestUpdateCourt_Partial(t *testing.T) {
	sportID := uuid.New().String()
	svc := NewService(
		newFakeCourtRepo(),
		&fakeSports{known: map[string]bool{sportID: true}},
	)

	desc := "techada"
	court, err := svc.Create(context.Background(), CreateCourtRequest{
		Name:        "Cancha 1",
		SportID:     sportID,
		Description: &desc,
		HourlyPrice: 25,
	})
	require.NoError(t, err)

	price := 30.0
	updated, err := svc.Update(context.Background(), court.ID,
		UpdateCourtRequest{HourlyPrice: &price})

	require.NoError(t, err)
	assert.Equal(t, 30.0, updated.HourlyPrice)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "techada", *updated.Description)
	assert.Equal(t, "Cancha 1", updated.Name)
}

func TestListCourtsBySport_UnknownSport(t *testing.T) {
	svc := NewService(
		newFakeCourtRepo(),
		&fakeSports{known: map[string]bool{}},
	)

	_, err := svc.ListBySport(context.Background(), uuid.New().String())

	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestIsActive_MissingCourt(t *testing.T) {
	svc := NewService(newFakeCourtRepo(), &fakeSports{})

	active, err := svc.IsActive(context.Background(), uuid.New().String())

	require.NoError(t, err)
	assert.False(t, active)
}
