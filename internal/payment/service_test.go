// AngelaMos | 2026
// service_test.go

package payment

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

type fakePaymentRepo struct {
	payments map[string]*Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*Payment{}}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *Payment) error {
	payment.CreatedAt = time.Now()
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakePaymentRepo) GetByID(
	_ context.Context,
	id string,
) (*Payment, error) {
	if p, ok := f.payments[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakePaymentRepo) Update(_ context.Context, payment *Payment) error {
	if _, ok := f.payments[payment.ID]; !ok {
		return core.ErrNotFound
	}
	copied := *payment
	f.payments[payment.ID] = &copied
	return nil
}

func (f *fakePaymentRepo) SetStatus(
	_ context.Context,
	id, status string,
	transactionID *string,
	markPaid bool,
) (*Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	p.Status = status
	if transactionID != nil {
		p.TransactionID = transactionID
	}
	if markPaid && p.PaidAt == nil {
		now := time.Now()
		p.PaidAt = &now
	}
	copied := *p
	return &copied, nil
}

func (f *fakePaymentRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.payments[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.payments, id)
	return nil
}

func (f *fakePaymentRepo) List(_ context.Context) ([]Payment, error) {
	out := make([]Payment, 0, len(f.payments))
	for _, p := range f.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePaymentRepo) ListByReservation(
	_ context.Context,
	reservationID string,
) ([]Payment, error) {
	var out []Payment
	for _, p := range f.payments {
		if p.ReservationID == reservationID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ListByUser(
	_ context.Context,
	_ string,
) ([]Payment, error) {
	return nil, nil
}

type fakeReservations struct {
	known     map[string]bool
	confirmed []string
}

func (f *fakeReservations) Exists(
	_ context.Context,
	id string,
) (bool, error) {
	return f.known[id], nil
}

func (f *fakeReservations) OwnedBy(
	_ context.Context,
	_, _ string,
) (bool, error) {
	return true, nil
}

func (f *fakeReservations) Confirm(_ context.Context, id string) error {
	f.confirmed = append(f.confirmed, id)
	return nil
}

func testService(
	repo *fakePaymentRepo,
	reservations *fakeReservations,
) *Service {
	return NewService(repo, reservations, slog.New(slog.DiscardHandler))
}

func TestCreatePayment(t *testing.T) {
	reservationID := uuid.New().String()
	reservations := &fakeReservations{
		known: map[string]bool{reservationID: true},
	}
	svc := testService(newFakePaymentRepo(), reservations)

	payment, err := svc.Create(context.Background(), CreatePaymentRequest{
		ReservationID: reservationID,
		Amount:        100,
		Method:        MethodCard,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusPending, payment.Status)
	assert.Nil(t, payment.PaidAt)
}

func TestCreatePayment_Invalid(t *testing.T) {
	reservationID := uuid.New().String()
	reservations := &fakeReservations{
		known: map[string]bool{reservationID: true},
	}
	svc := testService(newFakePaymentRepo(), reservations)

	_, err := svc.Create(context.Background(), CreatePaymentRequest{
		ReservationID: reservationID,
		Amount:        -10,
		Method:        MethodCard,
	})
	require.ErrorIs(t, err, core.ErrInvalidInput, "negative amount")

	_, err = svc.Create(context.Background(), CreatePaymentRequest{
		ReservationID: reservationID,
		Amount:        100,
		Method:        "crypto",
	})
	require.ErrorIs(t, err, core.ErrInvalidInput, "unknown method")
}

func TestCreatePayment_UnknownReservation(t *testing.T) {
	svc := testService(
		newFakePaymentRepo(),
		&fakeReservations{known: map[string]bool{}},
	)

	_, err := svc.Create(context.Background(), CreatePaymentRequest{
		ReservationID: uuid.New().String(),
		Amount:        100,
		Method:        MethodCash,
	})

	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestCompletePayment_ConfirmsReservation(t *testing.T) {
	reservationID := uuid.New().String()
	reservations := &fakeReservations{
		known: map[string]bool{reservationID: true},
	}
	repo := newFakePaymentRepo()
	svc := testService(repo, reservations)

	created, err := svc.Create(context.Background(), CreatePaymentRequest{
		ReservationID: reservationID,
		Amount:        100,
		Method:        MethodTransfer,
	})
	require.NoError(t, err)

	txID := "tx-123"
	payment, err := svc.SetStatus(
		context.Background(),
		created.ID,
		StatusCompleted,
		&txID,
	)

	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, payment.Status)
	require.NotNil(t, payment.PaidAt)
	assert.Equal(t, &txID, payment.TransactionID)
	assert.Equal(t, []string{reservationID}, reservations.confirmed)
}

func TestUpdatePayment_StatusCascades(t *testing.T) {
	reservationID := uuid.New().String()
	reservations := &fakeReservations{
		known: map[string]bool{reservationID: true},
	}
	repo := newFakePaymentRepo()
	svc := testService(repo, reservations)

	created, err := svc.Create(context.Background(), CreatePaymentRequest{
		ReservationID: reservationID,
		Amount:        100,
		Method:        MethodCard,
	})
	require.NoError(t, err)

	// Completing through the partial update behaves like the dedicated
	// status endpoint: paid_at is stamped and the reservation confirms.
	amount := 150.0
	status := StatusCompleted
	payment, err := svc.Update(context.Background(), created.ID,
		UpdatePaymentRequest{
			Amount: &amount,
			Status: &status,
		})

	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, payment.Status)
	assert.Equal(t, 150.0, payment.Amount)
	require.NotNil(t, payment.PaidAt)
	assert.Equal(t, []string{reservationID}, reservations.confirmed)
}

func TestUpdatePayment_WithoutStatusKeepsStatus(t *testing.T) {
	reservationID := uuid.New().String()
	reservations := &fakeReservations{
		known: map[string]bool{reservationID: true},
	}
	repo := newFakePaymentRepo()
	svc := testService(repo, reservations)

	created, err := svc.Create(context.Background(), CreatePaymentRequest{
		ReservationID: reservationID,
		Amount:        100,
		Method:        MethodCard,
	})
	require.NoError(t, err)

	method := MethodTransfer
	payment, err := svc.Update(context.Background(), created.ID,
		UpdatePaymentRequest{Method: &method})

	require.NoError(t, err)
	assert.Equal(t, StatusPending, payment.Status)
	assert.Nil(t, payment.PaidAt)
	assert.Empty(t, reservations.confirmed)
}

func TestRefundPayment_NoReverseCascade(t *testing.T) {
	reservationID := uuid.New().String()
	reservations := &fakeReservations{
		known: map[string]bool{reservationID: true},
	}
	repo := newFakePaymentRepo()
	svc := testService(repo, reservations)

	created, err := svc.Create(context.Background(), CreatePaymentRequest{
		ReservationID: reservationID,
		Amount:        100,
		Method:        MethodCard,
	})
	require.NoError(t, err)

	_, err = svc.SetStatus(
		context.Background(),
		created.ID,
		StatusCompleted,
		nil,
	)
	require.NoError(t, err)
	require.Len(t, reservations.confirmed, 1)

	// Refunding afterwards must not touch the reservation again.
	payment, err := svc.SetStatus(
		context.Background(),
		created.ID,
		StatusRefunded,
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, StatusRefunded, payment.Status)
	assert.Len(t, reservations.confirmed, 1)
	assert.NotNil(t, payment.PaidAt, "paid_at survives the refund")
}

func TestSetStatus_Invalid(t *testing.T) {
	svc := testService(newFakePaymentRepo(), &fakeReservations{})

	_, err := svc.SetStatus(
		context.Background(),
		uuid.New().String(),
		"chargeback",
		nil,
	)

	require.ErrorIs(t, err, core.ErrInvalidInput)
}
