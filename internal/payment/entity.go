// AngelaMos | 2026
// entity.go

package payment

import (
	"time"
)

type Payment struct {
	ID            string     `db:"id"`
	ReservationID string     `db:"reservation_id"`
	Amount        float64    `db:"amount"`
	Method        string     `db:"method"`
	Status        string     `db:"status"`
	TransactionID *string    `db:"transaction_id"`
	PaidAt        *time.Time `db:"paid_at"`
	CreatedAt     time.Time  `db:"created_at"`
}

const (
	MethodCard     = "card"
	MethodTransfer = "transfer"
	MethodCash     = "cash"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
	StatusRefunded  = "refunded"
)

func ValidMethod(method string) bool {
	switch method {
	case MethodCard, MethodTransfer, MethodCash:
		return true
	}
	return false
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusCompleted, StatusRejected, StatusRefunded:
		return true
	}
	return false
}
