// AngelaMos | 2026
// dto.go

package schedule

type CreateSlotRequest struct {
	CourtID   string `json:"court_id"    validate:"required,uuid4"`
	DayOfWeek int    `json:"day_of_week" validate:"required,min=1,max=7"`
	StartTime string `json:"start_time"  validate:"required,len=5,datetime=15:04"`
	EndTime   string `json:"end_time"    validate:"required,len=5,datetime=15:04"`
}

type UpdateSlotRequest struct {
	DayOfWeek *int    `json:"day_of_week,omitempty" validate:"omitempty,min=1,max=7"`
	StartTime *string `json:"start_time,omitempty"  validate:"omitempty,len=5,datetime=15:04"`
	EndTime   *string `json:"end_time,omitempty"    validate:"omitempty,len=5,datetime=15:04"`
	Available *bool   `json:"available,omitempty"`
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

type SlotResponse struct {
	ID        string `json:"id"`
	CourtID   string `json:"court_id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

func ToSlotResponse(s *Slot) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		CourtID:   s.CourtID,
		DayOfWeek: s.DayOfWeek,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Available: s.Available,
	}
}

func ToSlotResponseList(slots []Slot) []SlotResponse {
	responses := make([]SlotResponse, 0, len(slots))
	for i := range slots {
		responses = append(responses, ToSlotResponse(&slots[i]))
	}
	return responses
}
