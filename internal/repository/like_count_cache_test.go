package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"jobswipe/internal/domain/job"
	"jobswipe/internal/domain/swipe"
	"jobswipe/internal/domain/user"

	"github.com/google/uuid"
)

type memCache struct {
	data    map[string][]byte
	getErr  error
	deleted []string
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	m.deleted = append(m.deleted, key)
	return nil
}

type countingQuery struct {
	likes map[uuid.UUID]int64
	calls int
	err   error
}

func (q *countingQuery) FindUser(context.Context, uuid.UUID) (user.User, error) {
	return user.User{}, nil
}
func (q *countingQuery) ListSwipesByUser(context.Context, uuid.UUID) ([]swipe.Swipe, error) {
	return nil, nil
}
func (q *countingQuery) ListJobsExcluding(context.Context, []uuid.UUID) ([]job.Job, error) {
	return nil, nil
}
func (q *countingQuery) CountLikesForJob(_ context.Context, id uuid.UUID) (int64, error) {
	q.calls++
	if q.err != nil {
		return 0, q.err
	}
	return q.likes[id], nil
}

func TestCachedRecommendationQuery_ServesFromCache(t *testing.T) {
	jobID := uuid.New()
	base := &countingQuery{likes: map[uuid.UUID]int64{jobID: 4}}
	q := NewCachedRecommendationQuery(base, newMemCache(), time.Minute, nil)

	for i := 0; i < 3; i++ {
		n, err := q.CountLikesForJob(context.Background(), jobID)
		if err != nil || n != 4 {
			t.Fatalf("call %d: got %d, %v", i, n, err)
		}
	}
	if base.calls != 1 {
		t.Fatalf("expected 1 storage call, got %d", base.calls)
	}
}

func TestCachedRecommendationQuery_InvalidateJob(t *testing.T) {
	jobID := uuid.New()
	base := &countingQuery{likes: map[uuid.UUID]int64{jobID: 1}}
	cache := newMemCache()
	q := NewCachedRecommendationQuery(base, cache, time.Minute, nil)

	_, _ = q.CountLikesForJob(context.Background(), jobID)
	base.likes[jobID] = 2
	if err := q.InvalidateJob(context.Background(), jobID); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	n, _ := q.CountLikesForJob(context.Background(), jobID)
	if n != 2 {
		t.Fatalf("expected fresh count 2, got %d", n)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != LikeCountCacheKey(jobID) {
		t.Fatalf("unexpected deletes: %v", cache.deleted)
	}
}

func TestCachedRecommendationQuery_CacheErrorFallsThrough(t *testing.T) {
	jobID := uuid.New()
	base := &countingQuery{likes: map[uuid.UUID]int64{jobID: 9}}
	cache := newMemCache()
	cache.getErr = errors.New("connection refused")
	q := NewCachedRecommendationQuery(base, cache, time.Minute, nil)

	n, err := q.CountLikesForJob(context.Background(), jobID)
	if err != nil || n != 9 {
		t.Fatalf("got %d, %v", n, err)
	}
}

func TestCachedRecommendationQuery_StorageErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	q := NewCachedRecommendationQuery(&countingQuery{err: boom}, newMemCache(), time.Minute, nil)
	if _, err := q.CountLikesForJob(context.Background(), uuid.New()); !errors.Is(err, boom) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestCachedRecommendationQuery_DisabledWithoutTTL(t *testing.T) {
	jobID := uuid.New()
	base := &countingQuery{likes: map[uuid.UUID]int64{jobID: 1}}
	q := NewCachedRecommendationQuery(base, newMemCache(), 0, nil)

	_, _ = q.CountLikesForJob(context.Background(), jobID)
	_, _ = q.CountLikesForJob(context.Background(), jobID)
	if base.calls != 2 {
		t.Fatalf("cache should be bypassed, got %d storage calls", base.calls)
	}
}
