package seeder

import (
	"context"
	"fmt"

	"jobswipe/internal/database"

	"github.com/google/uuid"
)

var (
	demoUserAda   = uuid.MustParse("6f1c1f3e-1a55-4c3f-9a1e-0a0000000001")
	demoUserGrace = uuid.MustParse("6f1c1f3e-1a55-4c3f-9a1e-0a0000000002")
)

type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users",
		"id", "email", "name", "skills", "job_types", "location_type", "min_salary",
	); err != nil {
		return err
	}

	items := []struct {
		ID           uuid.UUID
		Email        string
		Name         string
		Skills       []string
		JobTypes     []string
		LocationType string
		MinSalary    int
	}{
		{
			ID: demoUserAda, Email: "ada@jobswipe.dev", Name: "Ada",
			Skills:   []string{"Python", "SQL", "Go"},
			JobTypes: []string{"full-time"}, LocationType: "remote", MinSalary: 60000,
		},
		{
			ID: demoUserGrace, Email: "grace@jobswipe.dev", Name: "Grace",
			Skills:   []string{"Kubernetes", "Docker", "Go"},
			JobTypes: []string{"contract", "full-time"}, LocationType: "onsite", MinSalary: 80000,
		},
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range items {
			if _, err := tx.Exec(ctx,
				`INSERT INTO users (id, email, name, skills, job_types, location_type, min_salary)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)
				 ON CONFLICT (email) DO NOTHING`,
				it.ID, it.Email, it.Name, it.Skills, it.JobTypes, it.LocationType, it.MinSalary,
			); err != nil {
				return fmt.Errorf("insert user %s: %w", it.Email, err)
			}
		}
		return nil
	})
}
