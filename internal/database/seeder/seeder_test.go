package seeder

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"jobswipe/internal/database"
)

type columnRows struct {
	cols []string
	i    int
}

func (r *columnRows) Close()     {}
func (r *columnRows) Err() error { return nil }
func (r *columnRows) Next() bool {
	if r.i >= len(r.cols) {
		return false
	}
	r.i++
	return true
}
func (r *columnRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.cols[r.i-1]
	return nil
}

type columnsDB struct {
	database.DB
	cols []string
}

func (d columnsDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return &columnRows{cols: d.cols}, nil
}

func (d columnsDB) SQLDB() *sql.DB { return nil }

func TestEnsureTableColumns(t *testing.T) {
	db := columnsDB{cols: []string{"id", "email", "name"}}

	if err := EnsureTableColumns(context.Background(), db, "users", "id", "email"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	err := EnsureTableColumns(context.Background(), db, "users", "id", "skills", "job_types")
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "users.skills") || !strings.Contains(err.Error(), "users.job_types") {
		t.Fatalf("every missing column should be reported: %v", err)
	}

	if err := EnsureTableColumns(context.Background(), db, "", "id"); err == nil {
		t.Fatalf("expected error for empty table")
	}
}

type stubSeeder struct {
	name string
	err  error
	ran  *[]string
}

func (s stubSeeder) Name() string { return s.name }
func (s stubSeeder) Run(context.Context, database.DB) error {
	*s.ran = append(*s.ran, s.name)
	return s.err
}

func TestRunner_StopsOnFirstFailure(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	r := Runner{Seeders: []Seeder{
		stubSeeder{name: "users", ran: &ran},
		nil,
		stubSeeder{name: "jobs", err: boom, ran: &ran},
		stubSeeder{name: "swipes", ran: &ran},
	}}

	err := r.Run(context.Background(), columnsDB{})
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), "seed jobs") {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ran) != 2 {
		t.Fatalf("expected 2 seeders to run, got %v", ran)
	}
}

func TestRunner_NilDB(t *testing.T) {
	if err := (Runner{}).Run(context.Background(), nil); !errors.Is(err, database.ErrNilDB) {
		t.Fatalf("expected ErrNilDB, got %v", err)
	}
}

func TestDefaults_Order(t *testing.T) {
	names := make([]string, 0)
	for _, s := range Defaults() {
		names = append(names, s.Name())
	}
	if strings.Join(names, ",") != "users,jobs,swipes" {
		t.Fatalf("unexpected seeder order: %v", names)
	}
}
