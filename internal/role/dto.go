// AngelaMos | 2026
// dto.go

package role

type CreateRoleRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=50"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

type UpdateRoleRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
}

type RoleResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func ToRoleResponse(r *Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

func ToRoleResponseList(roles []Role) []RoleResponse {
	responses := make([]RoleResponse, 0, len(roles))
	for i := range roles {
		responses = append(responses, ToRoleResponse(&roles[i]))
	}
	return responses
}
