package seeder

import (
	"context"
	"fmt"

	"jobswipe/internal/database"

	"github.com/google/uuid"
)

var (
	demoJobBackend  = uuid.MustParse("0b5e7d2a-3c11-4e8b-8f0d-0b0000000001")
	demoJobData     = uuid.MustParse("0b5e7d2a-3c11-4e8b-8f0d-0b0000000002")
	demoJobPlatform = uuid.MustParse("0b5e7d2a-3c11-4e8b-8f0d-0b0000000003")
	demoJobFrontend = uuid.MustParse("0b5e7d2a-3c11-4e8b-8f0d-0b0000000004")
)

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs",
		"id", "title", "company", "salary_min", "salary_max", "salary_currency",
		"job_type", "is_remote", "location", "skills_required",
	); err != nil {
		return err
	}

	items := []struct {
		ID       uuid.UUID
		Title    string
		Company  string
		Min, Max int
		JobType  string
		IsRemote bool
		Location string
		Skills   []string
	}{
		{demoJobBackend, "Backend Engineer (Go)", "Gopher Labs", 90000, 120000, "full-time", true, "Remote", []string{"Go", "PostgreSQL", "Redis"}},
		{demoJobData, "Data Engineer", "InsightWorks", 85000, 110000, "full-time", false, "Berlin", []string{"Python", "SQL", "Airflow"}},
		{demoJobPlatform, "Platform Engineer", "CloudKita", 100000, 140000, "contract", false, "Amsterdam", []string{"Kubernetes", "Docker", "Terraform"}},
		{demoJobFrontend, "Frontend Developer", "Pixel & Co", 70000, 95000, "part-time", true, "Remote", []string{"TypeScript", "React"}},
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range items {
			if _, err := tx.Exec(ctx,
				`INSERT INTO jobs (id, title, company, salary_min, salary_max, salary_currency,
				                   job_type, is_remote, location, skills_required)
				 VALUES ($1, $2, $3, $4, $5, 'USD', $6, $7, $8, $9)
				 ON CONFLICT (id) DO NOTHING`,
				it.ID, it.Title, it.Company, it.Min, it.Max, it.JobType, it.IsRemote, it.Location, it.Skills,
			); err != nil {
				return fmt.Errorf("insert job %q: %w", it.Title, err)
			}
		}
		return nil
	})
}
