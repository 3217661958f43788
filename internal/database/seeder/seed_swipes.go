package seeder

import (
	"context"
	"fmt"

	"jobswipe/internal/database"

	"github.com/google/uuid"
)

type SwipesSeeder struct{}

func (SwipesSeeder) Name() string { return "swipes" }

func (SwipesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "swipes", "id", "user_id", "job_id", "action"); err != nil {
		return err
	}

	items := []struct {
		UserID uuid.UUID
		JobID  uuid.UUID
		Action string
	}{
		{demoUserGrace, demoJobBackend, "like"},
		{demoUserGrace, demoJobFrontend, "dislike"},
		{demoUserAda, demoJobFrontend, "dislike"},
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range items {
			if _, err := tx.Exec(ctx,
				`INSERT INTO swipes (id, user_id, job_id, action)
				 SELECT $1, $2, $3, $4
				 WHERE EXISTS (SELECT 1 FROM users WHERE id = $2)
				 ON CONFLICT (user_id, job_id) DO NOTHING`,
				uuid.New(), it.UserID, it.JobID, it.Action,
			); err != nil {
				return fmt.Errorf("insert swipe: %w", err)
			}
		}
		return nil
	})
}
