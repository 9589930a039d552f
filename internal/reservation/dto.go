// AngelaMos | 2026
// dto.go

package reservation

import (
	"time"
)

type CreateReservationRequest struct {
	UserID          string `json:"user_id"          validate:"required,uuid4"`
	SlotID          string `json:"slot_id"          validate:"required,uuid4"`
	ReservationDate string `json:"reservation_date" validate:"required,datetime=2006-01-02"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type ReservationResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	SlotID          string    `json:"slot_id"`
	ReservationDate string    `json:"reservation_date"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToReservationResponse(r *Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		SlotID:          r.SlotID,
		ReservationDate: r.ReservationDate.Format("2006-01-02"),
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
	}
}

func ToReservationResponseList(
	reservations []Reservation,
) []ReservationResponse {
	responses := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		responses = append(responses, ToReservationResponse(&reservations[i]))
	}
	return responses
}
