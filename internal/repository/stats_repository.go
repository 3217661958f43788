package repository

import (
	"context"

	"jobswipe/internal/database"
)

type PoolStats struct {
	Users    int64
	Jobs     int64
	Likes    int64
	Dislikes int64
}

type PostgresStatsRepository struct {
	db database.DB
}

func NewPostgresStatsRepository(db database.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

func (r *PostgresStatsRepository) PoolStats(ctx context.Context) (PoolStats, error) {
	var st PoolStats
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM users),
			(SELECT count(*) FROM jobs),
			(SELECT count(*) FROM swipes WHERE action = 'like'),
			(SELECT count(*) FROM swipes WHERE action = 'dislike')`,
	).Scan(&st.Users, &st.Jobs, &st.Likes, &st.Dislikes)
	if err != nil {
		return PoolStats{}, err
	}
	return st, nil
}
