package repository

import (
	"context"

	"jobswipe/internal/database"
	"jobswipe/internal/domain/job"
	"jobswipe/internal/domain/swipe"
	"jobswipe/internal/domain/user"

	"github.com/google/uuid"
)

// RecommendationQuery is the read-only surface the recommender needs.
// FindUser returns user.ErrNotFound for unknown IDs.
type RecommendationQuery interface {
	FindUser(ctx context.Context, id uuid.UUID) (user.User, error)
	ListSwipesByUser(ctx context.Context, userID uuid.UUID) ([]swipe.Swipe, error)
	ListJobsExcluding(ctx context.Context, jobIDs []uuid.UUID) ([]job.Job, error)
	CountLikesForJob(ctx context.Context, jobID uuid.UUID) (int64, error)
}

type PostgresRecommendationRepository struct {
	db database.DB
}

func NewPostgresRecommendationRepository(db database.DB) *PostgresRecommendationRepository {
	return &PostgresRecommendationRepository{db: db}
}

func (r *PostgresRecommendationRepository) FindUser(ctx context.Context, id uuid.UUID) (user.User, error) {
	return findUserByID(ctx, r.db, id)
}

func (r *PostgresRecommendationRepository) ListSwipesByUser(ctx context.Context, userID uuid.UUID) ([]swipe.Swipe, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+swipeColumns+` FROM swipes WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return collectSwipes(rows)
}

func (r *PostgresRecommendationRepository) ListJobsExcluding(ctx context.Context, jobIDs []uuid.UUID) ([]job.Job, error) {
	ids := make([]string, 0, len(jobIDs))
	for _, id := range jobIDs {
		ids = append(ids, id.String())
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE NOT (id = ANY($1::uuid[]))
		 ORDER BY id ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *PostgresRecommendationRepository) CountLikesForJob(ctx context.Context, jobID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM swipes WHERE job_id = $1 AND action = $2`,
		jobID, string(swipe.ActionLike),
	).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
