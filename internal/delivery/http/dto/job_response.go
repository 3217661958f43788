package dto

import (
	"time"

	"jobswipe/internal/domain/job"

	"github.com/google/uuid"
)

type SalaryDTO struct {
	Min      int    `json:"min" validate:"gte=0"`
	Max      int    `json:"max" validate:"gte=0"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
}

type CreateJobRequest struct {
	Title          string    `json:"title" validate:"required,max=200"`
	Company        string    `json:"company" validate:"required,max=200"`
	LogoURL        *string   `json:"logo_url" validate:"omitempty,max=2048"`
	Salary         SalaryDTO `json:"salary"`
	JobType        string    `json:"job_type" validate:"required,max=64"`
	IsRemote       bool      `json:"is_remote"`
	Location       *string   `json:"location" validate:"omitempty,max=200"`
	SkillsRequired []string  `json:"skills_required" validate:"max=200,dive,max=64"`
}

type UpdateJobRequest struct {
	Title          *string    `json:"title"`
	Company        *string    `json:"company"`
	LogoURL        *string    `json:"logo_url"`
	Salary         *SalaryDTO `json:"salary" validate:"omitempty"`
	JobType        *string    `json:"job_type"`
	IsRemote       *bool      `json:"is_remote"`
	Location       *string    `json:"location"`
	SkillsRequired *[]string  `json:"skills_required" validate:"omitempty,max=200,dive,max=64"`
}

type JobResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	LogoURL        *string   `json:"logo_url"`
	Salary         SalaryDTO `json:"salary"`
	JobType        string    `json:"job_type"`
	IsRemote       bool      `json:"is_remote"`
	Location       *string   `json:"location"`
	SkillsRequired []string  `json:"skills_required"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type JobListResponse struct {
	Items []JobResponse `json:"items"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (s SalaryDTO) ToDomain() job.SalaryRange {
	return job.SalaryRange{Min: s.Min, Max: s.Max, Currency: s.Currency}
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:             j.ID,
		Title:          j.Title,
		Company:        j.Company,
		LogoURL:        j.LogoURL,
		Salary:         SalaryDTO{Min: j.Salary.Min, Max: j.Salary.Max, Currency: j.Salary.Currency},
		JobType:        j.JobType,
		IsRemote:       j.IsRemote,
		Location:       j.Location,
		SkillsRequired: nonNil(j.SkillsRequired),
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

func NewJobResponses(items []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, j := range items {
		out = append(out, NewJobResponse(j))
	}
	return out
}
