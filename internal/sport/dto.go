// AngelaMos | 2026
// dto.go

package sport

type CreateSportRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	ImageURL    *string `json:"image_url"   validate:"omitempty,url,max=500"`
}

type UpdateSportRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	ImageURL    *string `json:"image_url,omitempty"   validate:"omitempty,url,max=500"`
}

type SportResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

func ToSportResponse(s *Sport) SportResponse {
	return SportResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		ImageURL:    s.ImageURL,
	}
}

func ToSportResponseList(sports []Sport) []SportResponse {
	responses := make([]SportResponse, 0, len(sports))
	for i := range sports {
		responses = append(responses, ToSportResponse(&sports[i]))
	}
	return responses
}
