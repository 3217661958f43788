package repository

import (
	"context"

	"jobswipe/internal/database"
	"jobswipe/internal/database/postgres"
	"jobswipe/internal/domain/swipe"

	"github.com/google/uuid"
)

const swipeColumns = `id, user_id, job_id, action, created_at, updated_at`

const upsertSwipeSQL = `INSERT INTO swipes (id, user_id, job_id, action)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, job_id)
	DO UPDATE SET action = EXCLUDED.action, updated_at = now()
	RETURNING ` + swipeColumns + `, (xmax = 0) AS inserted`

type PostgresSwipeRepository struct {
	db database.DB
}

func NewPostgresSwipeRepository(db database.DB) *PostgresSwipeRepository {
	return &PostgresSwipeRepository{db: db}
}

func (r *PostgresSwipeRepository) Upsert(ctx context.Context, s swipe.Swipe) (swipe.Swipe, bool, error) {
	return upsertSwipe(ctx, r.db, s)
}

// UpsertBatch writes all swipes in one transaction; either every item is
// stored or none is.
func (r *PostgresSwipeRepository) UpsertBatch(ctx context.Context, items []swipe.Swipe) (swipe.BatchResult, error) {
	var res swipe.BatchResult
	if len(items) == 0 {
		return res, nil
	}

	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		for _, it := range items {
			_, inserted, err := upsertSwipe(ctx, tx, it)
			if err != nil {
				return err
			}
			if inserted {
				res.Inserted++
			} else {
				res.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return swipe.BatchResult{}, err
	}
	return res, nil
}

func (r *PostgresSwipeRepository) UpdateAction(ctx context.Context, id uuid.UUID, action swipe.Action) (swipe.Swipe, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE swipes SET action = $1, updated_at = now()
		 WHERE id = $2
		 RETURNING `+swipeColumns,
		string(action), id,
	)
	return scanSwipe(row)
}

func (r *PostgresSwipeRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]swipe.Swipe, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+swipeColumns+`
		 FROM swipes
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id ASC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	return collectSwipes(rows)
}

func upsertSwipe(ctx context.Context, q database.Querier, s swipe.Swipe) (swipe.Swipe, bool, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	var (
		out      swipe.Swipe
		action   string
		inserted bool
	)
	err := q.QueryRow(ctx, upsertSwipeSQL, s.ID, s.UserID, s.JobID, string(s.Action)).Scan(
		&out.ID, &out.UserID, &out.JobID, &action, &out.CreatedAt, &out.UpdatedAt, &inserted,
	)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return swipe.Swipe{}, false, swipe.ErrUnknownReference
		}
		return swipe.Swipe{}, false, err
	}
	out.Action = swipe.Action(action)
	return out, inserted, nil
}

func scanSwipe(row database.Row) (swipe.Swipe, error) {
	var (
		s      swipe.Swipe
		action string
	)
	if err := row.Scan(&s.ID, &s.UserID, &s.JobID, &action, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if postgres.IsNoRows(err) {
			return swipe.Swipe{}, swipe.ErrNotFound
		}
		return swipe.Swipe{}, err
	}
	s.Action = swipe.Action(action)
	return s, nil
}

func collectSwipes(rows database.Rows) ([]swipe.Swipe, error) {
	defer rows.Close()

	out := make([]swipe.Swipe, 0)
	for rows.Next() {
		s, err := scanSwipe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
