package usecase

import (
	"context"
	"errors"
	"strings"

	"jobswipe/internal/domain/job"
	"jobswipe/internal/domain/tags"

	"github.com/google/uuid"
)

const (
	defaultJobPageSize = 20
	maxJobPageSize     = 100
)

type CreateJobInput struct {
	Title          string
	Company        string
	LogoURL        *string
	Salary         job.SalaryRange
	JobType        string
	IsRemote       bool
	Location       *string
	SkillsRequired []string
}

type UpdateJobInput struct {
	Title          *string
	Company        *string
	LogoURL        *string
	Salary         *job.SalaryRange
	JobType        *string
	IsRemote       *bool
	Location       *string
	SkillsRequired *[]string
}

type JobPage struct {
	Items []job.Job
	Page  int
	Limit int
}

const (
	JobEventCreated = "job_created"
	JobEventUpdated = "job_updated"
	JobEventDeleted = "job_deleted"
)

// JobEventPublisher is notified after a successful write to the job pool.
type JobEventPublisher interface {
	PublishJobEvent(eventType string, jobID uuid.UUID)
}

type JobUsecase interface {
	Create(ctx context.Context, in CreateJobInput) (job.Job, error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
	List(ctx context.Context, page, limit int) (JobPage, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateJobInput) (job.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Job struct {
	jobs   job.Repository
	events JobEventPublisher
}

func NewJobUsecase(jobs job.Repository) *Job {
	return &Job{jobs: jobs}
}

func (u *Job) WithEvents(p JobEventPublisher) *Job {
	u.events = p
	return u
}

func (u *Job) publish(eventType string, id uuid.UUID) {
	if u.events != nil {
		u.events.PublishJobEvent(eventType, id)
	}
}

func (u *Job) Create(ctx context.Context, in CreateJobInput) (job.Job, error) {
	j := job.Job{
		Title:          strings.TrimSpace(in.Title),
		Company:        strings.TrimSpace(in.Company),
		LogoURL:        trimmedOrNil(in.LogoURL),
		Salary:         in.Salary,
		JobType:        strings.TrimSpace(in.JobType),
		IsRemote:       in.IsRemote,
		Location:       trimmedOrNil(in.Location),
		SkillsRequired: tags.Normalize(in.SkillsRequired),
	}
	switch {
	case j.Title == "":
		return job.Job{}, invalidInput("title is required")
	case j.Company == "":
		return job.Job{}, invalidInput("company is required")
	case j.JobType == "":
		return job.Job{}, invalidInput("job_type is required")
	}
	if err := validateSalary(j.Salary); err != nil {
		return job.Job{}, err
	}

	created, err := u.jobs.Create(ctx, j)
	if err != nil {
		return job.Job{}, storageError(err)
	}
	u.publish(JobEventCreated, created.ID)
	return created, nil
}

func (u *Job) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Job{}, mapJobError(err)
	}
	return j, nil
}

// List pages through jobs newest first. page is 1-based; zero values pick
// the defaults.
func (u *Job) List(ctx context.Context, page, limit int) (JobPage, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultJobPageSize
	}
	if page < 0 {
		return JobPage{}, invalidInput("page must be positive")
	}
	if limit < 0 || limit > maxJobPageSize {
		return JobPage{}, invalidInput("limit must be between 1 and 100")
	}

	items, err := u.jobs.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return JobPage{}, storageError(err)
	}
	return JobPage{Items: items, Page: page, Limit: limit}, nil
}

func (u *Job) Update(ctx context.Context, id uuid.UUID, in UpdateJobInput) (job.Job, error) {
	var upd job.Update
	if in.Title != nil {
		v := strings.TrimSpace(*in.Title)
		if v == "" {
			return job.Job{}, invalidInput("title must not be empty")
		}
		upd.Title = &v
	}
	if in.Company != nil {
		v := strings.TrimSpace(*in.Company)
		if v == "" {
			return job.Job{}, invalidInput("company must not be empty")
		}
		upd.Company = &v
	}
	if in.JobType != nil {
		v := strings.TrimSpace(*in.JobType)
		if v == "" {
			return job.Job{}, invalidInput("job_type must not be empty")
		}
		upd.JobType = &v
	}
	if in.Salary != nil {
		if err := validateSalary(*in.Salary); err != nil {
			return job.Job{}, err
		}
		s := *in.Salary
		upd.Salary = &s
	}
	if in.LogoURL != nil {
		v := strings.TrimSpace(*in.LogoURL)
		upd.LogoURL = &v
	}
	if in.Location != nil {
		v := strings.TrimSpace(*in.Location)
		upd.Location = &v
	}
	upd.IsRemote = in.IsRemote
	if in.SkillsRequired != nil {
		skills := tags.Normalize(*in.SkillsRequired)
		upd.SkillsRequired = &skills
	}

	updated, err := u.jobs.Update(ctx, id, upd)
	if err != nil {
		return job.Job{}, mapJobError(err)
	}
	u.publish(JobEventUpdated, updated.ID)
	return updated, nil
}

func (u *Job) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.jobs.Delete(ctx, id); err != nil {
		return mapJobError(err)
	}
	u.publish(JobEventDeleted, id)
	return nil
}

func validateSalary(s job.SalaryRange) error {
	if s.Min < 0 || s.Max < 0 {
		return invalidInput("salary must not be negative")
	}
	if s.Max > 0 && s.Min > s.Max {
		return invalidInput("salary min must not exceed max")
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func mapJobError(err error) error {
	if errors.Is(err, job.ErrNotFound) {
		return ErrJobNotFound
	}
	return storageError(err)
}
