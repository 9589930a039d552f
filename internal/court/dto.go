// AngelaMos | 2026
// dto.go

package court

type CreateCourtRequest struct {
	Name        string  `json:"name"         validate:"required,min=1,max=100"`
	SportID     string  `json:"sport_id"     validate:"required,uuid4"`
	Description *string `json:"description"  validate:"omitempty,max=500"`
	HourlyPrice float64 `json:"hourly_price" validate:"required,gt=0"`
	ImageURL    *string `json:"image_url"    validate:"omitempty,url,max=500"`
}

type UpdateCourtRequest struct {
	Name        *string  `json:"name,omitempty"         validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty"  validate:"omitempty,max=500"`
	HourlyPrice *float64 `json:"hourly_price,omitempty" validate:"omitempty,gt=0"`
	ImageURL    *string  `json:"image_url,omitempty"    validate:"omitempty,url,max=500"`
	Active      *bool    `json:"active,omitempty"`
}

type CourtResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SportID     string  `json:"sport_id"`
	Description *string `json:"description,omitempty"`
	HourlyPrice float64 `json:"hourly_price"`
	ImageURL    *string `json:"image_url,omitempty"`
	Active      bool    `json:"active"`
}

func ToCourtResponse(c *Court) CourtResponse {
	return CourtResponse{
		ID:          c.ID,
		Name:        c.Name,
		SportID:     c.SportID,
		Description: c.Description,
		HourlyPrice: c.HourlyPrice,
		ImageURL:    c.ImageURL,
		Active:      c.Active,
	}
}

func ToCourtResponseList(courts []Court) []CourtResponse {
	responses := make([]CourtResponse, 0, len(courts))
	for i := range courts {
		responses = append(responses, ToCourtResponse(&courts[i]))
	}
	return responses
}
