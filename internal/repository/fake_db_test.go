package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"jobswipe/internal/database"
)

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan dest mismatch: %d != %d", len(dest), len(r.vals))
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i]).Elem()
		if r.vals[i] == nil {
			dv.Set(reflect.Zero(dv.Type()))
			continue
		}
		sv := reflect.ValueOf(r.vals[i])
		if !sv.Type().AssignableTo(dv.Type()) {
			return fmt.Errorf("scan type mismatch at %d: %s -> %s", i, sv.Type(), dv.Type())
		}
		dv.Set(sv)
	}
	return nil
}

type fakeRows struct {
	rows []fakeRow
	i    int
	err  error
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return r.err }
func (r *fakeRows) Next() bool {
	if r.i >= len(r.rows) {
		return false
	}
	r.i++
	return true
}
func (r *fakeRows) Scan(dest ...any) error { return r.rows[r.i-1].Scan(dest...) }

type recordedCall struct {
	query string
	args  []any
}

// fakeDB records every statement and answers from queued results.
type fakeDB struct {
	mu sync.Mutex

	calls     []recordedCall
	rowQueue  []fakeRow
	rowsQueue []*fakeRows
	execRes   int64
	execErr   error
	queryErr  error

	committed  bool
	rolledBack bool
}

func (f *fakeDB) record(query string, args []any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedCall{query: query, args: args})
}

func (f *fakeDB) lastCall() recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return recordedCall{}
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) SQLDB() *sql.DB             { return nil }

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.record(query, args)
	return f.execRes, f.execErr
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	f.record(query, args)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.rowsQueue) == 0 {
		return &fakeRows{}, nil
	}
	r := f.rowsQueue[0]
	f.rowsQueue = f.rowsQueue[1:]
	return r, nil
}

func (f *fakeDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	f.record(query, args)
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.rowQueue) == 0 {
		return fakeRow{err: errors.New("no row queued")}
	}
	r := f.rowQueue[0]
	f.rowQueue = f.rowQueue[1:]
	return r
}

func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	return fakeTx{db: f}, nil
}

type fakeTx struct {
	db *fakeDB
}

func (t fakeTx) Exec(ctx context.Context, q string, args ...any) (int64, error) {
	return t.db.Exec(ctx, q, args...)
}
func (t fakeTx) Query(ctx context.Context, q string, args ...any) (database.Rows, error) {
	return t.db.Query(ctx, q, args...)
}
func (t fakeTx) QueryRow(ctx context.Context, q string, args ...any) database.Row {
	return t.db.QueryRow(ctx, q, args...)
}
func (t fakeTx) Commit(context.Context) error {
	t.db.committed = true
	return nil
}
func (t fakeTx) Rollback(context.Context) error {
	if !t.db.committed {
		t.db.rolledBack = true
	}
	return nil
}

func squash(q string) string {
	return strings.Join(strings.Fields(q), " ")
}
