// AngelaMos | 2026
// entity.go

package reservation

import (
	"time"
)

type Reservation struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	SlotID          string    `db:"slot_id"`
	ReservationDate time.Time `db:"reservation_date"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
}

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Active reservations hold their slot; cancelled and completed ones have
// released it.
func (r *Reservation) Active() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}
