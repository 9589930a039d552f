// AngelaMos | 2026
// service_test.go

package schedule

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtbook-dev/courtbook/internal/core"
)

type fakeSlotRepo struct {
	slots   map[string]*Slot
	created []*Slot
}

func newFakeSlotRepo(existing ...*Slot) *fakeSlotRepo {
	repo := &fakeSlotRepo{slots: map[string]*Slot{}}
	for _, s := range existing {
		repo.slots[s.ID] = s
	}
	return repo
}

func (f *fakeSlotRepo) Create(_ context.Context, slot *Slot) error {
	f.slots[slot.ID] = slot
	f.created = append(f.created, slot)
	return nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id string) (*Slot, error) {
	if s, ok := f.slots[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeSlotRepo) Update(_ context.Context, slot *Slot) error {
	if _, ok := f.slots[slot.ID]; !ok {
		return core.ErrNotFound
	}
	copied := *slot
	f.slots[slot.ID] = &copied
	return nil
}

func (f *fakeSlotRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.slots[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.slots, id)
	return nil
}

func (f *fakeSlotRepo) List(_ context.Context) ([]Slot, error) {
	out := make([]Slot, 0, len(f.slots))
	for _, s := range f.slots {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSlotRepo) ListByCourt(
	_ context.Context,
	courtID string,
) ([]Slot, error) {
	var out []Slot
	for _, s := range f.slots {
		if s.CourtID == courtID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) ListByCourtDay(
	_ context.Context,
	courtID string,
	day int,
) ([]Slot, error) {
	var out []Slot
	for _, s := range f.slots {
		if s.CourtID == courtID && s.DayOfWeek == day {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) SetAvailability(
	_ context.Context,
	id string,
	available bool,
) error {
	s, ok := f.slots[id]
	if !ok {
		return core.ErrNotFound
	}
	s.Available = available
	return nil
}

func (f *fakeSlotRepo) CountReservations(
	_ context.Context,
	_ string,
) (int, error) {
	return 0, nil
}

type fakeCourts struct {
	active map[string]bool
}

func (f *fakeCourts) IsActive(_ context.Context, id string) (bool, error) {
	return f.active[id], nil
}

func testSlot(courtID string, day int, start, end string) *Slot {
	return &Slot{
		ID:        uuid.New().String(),
		CourtID:   courtID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
		Available: true,
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                         string
		aStart, aEnd, bStart, bEnd   string
		want                         bool
	}{
		{"disjoint before", "08:00", "09:00", "10:00", "11:00", false},
		{"disjoint after", "12:00", "13:00", "10:00", "11:00", false},
		{"contained", "10:15", "10:45", "10:00", "11:00", true},
		{"partial", "10:30", "11:30", "10:00", "11:00", true},
		{"identical", "10:00", "11:00", "10:00", "11:00", true},
		{"shared boundary start", "11:00", "12:00", "10:00", "11:00", true},
		{"shared boundary end", "09:00", "10:00", "10:00", "11:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCreateSlot(t *testing.T) {
	courtID := uuid.New().String()
	courts := &fakeCourts{active: map[string]bool{courtID: true}}

	repo := newFakeSlotRepo()
	svc := NewService(repo, courts)

	slot, err := svc.Create(context.Background(), CreateSlotRequest{
		CourtID:   courtID,
		DayOfWeek: 1,
		StartTime: "10:00",
		EndTime:   "11:00",
	})

	require.NoError(t, err)
	assert.True(t, slot.Available)
	assert.Len(t, repo.created, 1)
}

func TestCreateSlot_OverlapRejected(t *testing.T) {
	courtID := uuid.New().String()
	courts := &fakeCourts{active: map[string]bool{courtID: true}}
	existing := testSlot(courtID, 1, "10:00", "11:00")

	cases := []struct {
		name       string
		start, end string
	}{
		{"partial overlap", "10:30", "11:30"},
		{"contained", "10:15", "10:45"},
		{"back to back after", "11:00", "12:00"},
		{"back to back before", "09:00", "10:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(newFakeSlotRepo(existing), courts)

			_, err := svc.Create(context.Background(), CreateSlotRequest{
				CourtID:   courtID,
				DayOfWeek: 1,
				StartTime: tc.start,
				EndTime:   tc.end,
			})

			require.ErrorIs(t, err, core.ErrConflict)
		})
	}
}

func TestCreateSlot_OtherDayOrCourtAllowed(t *testing.T) {
	courtID := uuid.New().String()
	otherCourt := uuid.New().String()
	courts := &fakeCourts{active: map[string]bool{
		courtID:    true,
		otherCourt: true,
	}}
	existing := testSlot(courtID, 1, "10:00", "11:00")

	svc := NewService(newFakeSlotRepo(existing), courts)

	_, err := svc.Create(context.Background(), CreateSlotRequest{
		CourtID:   courtID,
		DayOfWeek: 2,
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.NoError(t, err, "same range on another day")

	_, err = svc.Create(context.Background(), CreateSlotRequest{
		CourtID:   otherCourt,
		DayOfWeek: 1,
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.NoError(t, err, "same range on another court")
}

func TestCreateSlot_InvalidRange(t *testing.T) {
	courtID := uuid.New().String()
	courts := &fakeCourts{active: map[string]bool{courtID: true}}
	svc := NewService(newFakeSlotRepo(), courts)

	_, err := svc.Create(context.Background(), CreateSlotRequest{
		CourtID:   courtID,
		DayOfWeek: 1,
		StartTime: "11:00",
		EndTime:   "10:00",
	})

	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestCreateSlot_InactiveCourt(t *testing.T) {
	courts := &fakeCourts{active: map[string]bool{}}
	svc := NewService(newFakeSlotRepo(), courts)

	_, err := svc.Create(context.Background(), CreateSlotRequest{
		CourtID:   uuid.New().String(),
		DayOfWeek: 1,
		StartTime: "10:00",
		EndTime:   "11:00",
	})

	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestUpdateSlot_OverlapRechecked(t *testing.T) {
	courtID := uuid.New().String()
	courts := &fakeCourts{active: map[string]bool{courtID: true}}

	morning := testSlot(courtID, 1, "08:00", "09:00")
	midday := testSlot(courtID, 1, "10:00", "11:00")
	repo := newFakeSlotRepo(morning, midday)
	svc := NewService(repo, courts)

	// Moving the morning slot onto the midday range must fail.
	newStart := "10:30"
	newEnd := "11:30"
	_, err := svc.Update(context.Background(), morning.ID, UpdateSlotRequest{
		StartTime: &newStart,
		EndTime:   &newEnd,
	})
	require.ErrorIs(t, err, core.ErrConflict)

	// Shifting within free space succeeds, and the slot does not collide
	// with its own stored range.
	newStart = "08:30"
	newEnd = "09:30"
	updated, err := svc.Update(
		context.Background(),
		morning.ID,
		UpdateSlotRequest{StartTime: &newStart, EndTime: &newEnd},
	)
	require.NoError(t, err)
	assert.Equal(t, "08:30", updated.StartTime)
	assert.Equal(t, "09:30", updated.EndTime)
}

func TestSetAvailability(t *testing.T) {
	courtID := uuid.New().String()
	courts := &fakeCourts{active: map[string]bool{courtID: true}}
	slot := testSlot(courtID, 1, "10:00", "11:00")
	repo := newFakeSlotRepo(slot)
	svc := NewService(repo, courts)

	updated, err := svc.SetAvailability(context.Background(), slot.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Available)
}
