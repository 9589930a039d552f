// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type RegisterRequest struct {
	Name     string  `json:"name"     validate:"required,min=1,max=100"`
	Email    string  `json:"email"    validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=128"`
	Phone    *string `json:"phone"    validate:"omitempty,max=30"`
	RoleID   *string `json:"role_id"  validate:"omitempty,uuid4"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"     validate:"omitempty,min=1,max=100"`
	Phone    *string `json:"phone,omitempty"    validate:"omitempty,max=30"`
	RoleID   *string `json:"role_id,omitempty"  validate:"omitempty,uuid4"`
	Verified *bool   `json:"verified,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=128"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	RoleID       string    `json:"role_id"`
	Role         string    `json:"role"`
	RegisteredAt time.Time `json:"registered_at"`
	Verified     bool      `json:"verified"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		RoleID:       u.RoleID,
		Role:         u.RoleName,
		RegisteredAt: u.RegisteredAt,
		Verified:     u.Verified,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}
