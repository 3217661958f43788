package dto

import (
	"time"

	"jobswipe/internal/domain/user"

	"github.com/google/uuid"
)

type PreferencesRequest struct {
	JobTypes     []string `json:"job_types" validate:"max=20,dive,max=64"`
	LocationType string   `json:"location_type" validate:"max=32"`
	MinSalary    *int     `json:"min_salary" validate:"omitempty,gte=0"`
}

type CreateUserRequest struct {
	Email       string              `json:"email" validate:"required,email,max=254"`
	Name        string              `json:"name" validate:"required,max=200"`
	Skills      []string            `json:"skills" validate:"max=200,dive,max=64"`
	Preferences *PreferencesRequest `json:"preferences"`
}

type UpdateUserRequest struct {
	Email  *string   `json:"email" validate:"omitempty,email,max=254"`
	Name   *string   `json:"name" validate:"omitempty,max=200"`
	Skills *[]string `json:"skills" validate:"omitempty,max=200,dive,max=64"`
}

type PreferencesResponse struct {
	JobTypes     []string `json:"job_types"`
	LocationType string   `json:"location_type"`
	MinSalary    *int     `json:"min_salary"`
}

type UserResponse struct {
	ID          uuid.UUID           `json:"id"`
	Email       string              `json:"email"`
	Name        string              `json:"name"`
	Skills      []string            `json:"skills"`
	Preferences PreferencesResponse `json:"preferences"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Skills: nonNil(u.Skills),
		Preferences: PreferencesResponse{
			JobTypes:     nonNil(u.Preferences.JobTypes),
			LocationType: string(u.Preferences.LocationType),
			MinSalary:    u.Preferences.MinSalary,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
