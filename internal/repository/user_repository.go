package repository

import (
	"context"
	"fmt"
	"strings"

	"jobswipe/internal/database"
	"jobswipe/internal/database/postgres"
	"jobswipe/internal/domain/user"

	"github.com/google/uuid"
)

const userColumns = `id, email, name, skills, job_types, location_type, min_salary, created_at, updated_at`

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (id, email, name, skills, job_types, location_type, min_salary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+userColumns,
		u.ID, u.Email, u.Name, nonNilStrings(u.Skills), nonNilStrings(u.Preferences.JobTypes),
		string(u.Preferences.LocationType), u.Preferences.MinSalary,
	)
	created, err := scanUser(row)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, err
	}
	return created, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return findUserByID(ctx, r.db, id)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// Update writes only the fields set in upd. Column names come from a fixed
// list, never from the payload.
func (r *PostgresUserRepository) Update(ctx context.Context, id uuid.UUID, upd user.Update) (user.User, error) {
	if upd.Empty() {
		return r.GetByID(ctx, id)
	}

	set := newSetBuilder()
	if upd.Email != nil {
		set.add("email", *upd.Email)
	}
	if upd.Name != nil {
		set.add("name", *upd.Name)
	}
	if upd.Skills != nil {
		set.add("skills", nonNilStrings(*upd.Skills))
	}

	query, args := set.build("users", id, userColumns)
	updated, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, err
	}
	return updated, nil
}

func (r *PostgresUserRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, prefs user.Preferences) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE users
		 SET job_types = $1, location_type = $2, min_salary = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING `+userColumns,
		nonNilStrings(prefs.JobTypes), string(prefs.LocationType), prefs.MinSalary, id,
	)
	return scanUser(row)
}

func findUserByID(ctx context.Context, q database.Querier, id uuid.UUID) (user.User, error) {
	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func scanUser(row database.Row) (user.User, error) {
	var (
		u            user.User
		locationType string
	)
	if err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Skills, &u.Preferences.JobTypes,
		&locationType, &u.Preferences.MinSalary, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if postgres.IsNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.Preferences.LocationType = user.LocationType(locationType)
	return u, nil
}

type setBuilder struct {
	cols []string
	args []any
}

func newSetBuilder() *setBuilder {
	return &setBuilder{}
}

func (b *setBuilder) add(col string, v any) {
	b.args = append(b.args, v)
	b.cols = append(b.cols, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

func (b *setBuilder) build(table string, id uuid.UUID, returning string) (string, []any) {
	args := append(b.args, id)
	query := fmt.Sprintf(
		`UPDATE %s SET %s, updated_at = now() WHERE id = $%d RETURNING %s`,
		table, strings.Join(b.cols, ", "), len(args), returning,
	)
	return query, args
}

// nonNilStrings keeps NOT NULL text[] columns from receiving NULL.
func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
