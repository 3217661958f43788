package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type SalaryRange struct {
	Min      int
	Max      int
	Currency string
}

type Job struct {
	ID             uuid.UUID
	Title          string
	Company        string
	LogoURL        *string
	Salary         SalaryRange
	JobType        string
	IsRemote       bool
	Location       *string
	SkillsRequired []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Update lists the mutable job fields; nil leaves the stored value untouched.
type Update struct {
	Title          *string
	Company        *string
	LogoURL        *string
	Salary         *SalaryRange
	JobType        *string
	IsRemote       *bool
	Location       *string
	SkillsRequired *[]string
}

func (u Update) Empty() bool {
	return u.Title == nil && u.Company == nil && u.LogoURL == nil && u.Salary == nil &&
		u.JobType == nil && u.IsRemote == nil && u.Location == nil && u.SkillsRequired == nil
}

type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	List(ctx context.Context, limit, offset int) ([]Job, error)
	Update(ctx context.Context, id uuid.UUID, upd Update) (Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
