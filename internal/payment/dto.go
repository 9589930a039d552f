// AngelaMos | 2026
// dto.go

package payment

import (
	"time"
)

type CreatePaymentRequest struct {
	ReservationID string  `json:"reservation_id" validate:"required,uuid4"`
	Amount        float64 `json:"amount"         validate:"required,gt=0"`
	Method        string  `json:"method"         validate:"required,oneof=card transfer cash"`
	TransactionID *string `json:"transaction_id" validate:"omitempty,max=100"`
}

type UpdatePaymentRequest struct {
	Amount        *float64 `json:"amount,omitempty"         validate:"omitempty,gt=0"`
	Method        *string  `json:"method,omitempty"         validate:"omitempty,oneof=card transfer cash"`
	Status        *string  `json:"status,omitempty"         validate:"omitempty,oneof=pending completed rejected refunded"`
	TransactionID *string  `json:"transaction_id,omitempty" validate:"omitempty,max=100"`
}

type SetStatusRequest struct {
	Status        string  `json:"status"         validate:"required,oneof=pending completed rejected refunded"`
	TransactionID *string `json:"transaction_id" validate:"omitempty,max=100"`
}

type PaymentResponse struct {
	ID            string     `json:"id"`
	ReservationID string     `json:"reservation_id"`
	Amount        float64    `json:"amount"`
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToPaymentResponse(p *Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Amount:        p.Amount,
		Method:        p.Method,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
	}
}

func ToPaymentResponseList(payments []Payment) []PaymentResponse {
	responses := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, ToPaymentResponse(&payments[i]))
	}
	return responses
}
