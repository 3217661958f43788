package repository

import (
	"context"

	"jobswipe/internal/database"
	"jobswipe/internal/database/postgres"
	"jobswipe/internal/domain/job"

	"github.com/google/uuid"
)

const jobColumns = `id, title, company, logo_url, salary_min, salary_max, salary_currency,
	job_type, is_remote, location, skills_required, created_at, updated_at`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, title, company, logo_url, salary_min, salary_max, salary_currency,
		                   job_type, is_remote, location, skills_required)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+jobColumns,
		j.ID, j.Title, j.Company, j.LogoURL, j.Salary.Min, j.Salary.Max, j.Salary.Currency,
		j.JobType, j.IsRemote, j.Location, nonNilStrings(j.SkillsRequired),
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) List(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 ORDER BY created_at DESC, id ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *PostgresJobRepository) Update(ctx context.Context, id uuid.UUID, upd job.Update) (job.Job, error) {
	if upd.Empty() {
		return r.GetByID(ctx, id)
	}

	set := newSetBuilder()
	if upd.Title != nil {
		set.add("title", *upd.Title)
	}
	if upd.Company != nil {
		set.add("company", *upd.Company)
	}
	if upd.LogoURL != nil {
		set.add("logo_url", *upd.LogoURL)
	}
	if upd.Salary != nil {
		set.add("salary_min", upd.Salary.Min)
		set.add("salary_max", upd.Salary.Max)
		set.add("salary_currency", upd.Salary.Currency)
	}
	if upd.JobType != nil {
		set.add("job_type", *upd.JobType)
	}
	if upd.IsRemote != nil {
		set.add("is_remote", *upd.IsRemote)
	}
	if upd.Location != nil {
		set.add("location", *upd.Location)
	}
	if upd.SkillsRequired != nil {
		set.add("skills_required", nonNilStrings(*upd.SkillsRequired))
	}

	query, args := set.build("jobs", id, jobColumns)
	return scanJob(r.db.QueryRow(ctx, query, args...))
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	if err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.LogoURL, &j.Salary.Min, &j.Salary.Max, &j.Salary.Currency,
		&j.JobType, &j.IsRemote, &j.Location, &j.SkillsRequired, &j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		if postgres.IsNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
