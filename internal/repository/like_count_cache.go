package repository

import (
	"context"
	"time"

	"jobswipe/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JSONCache is the subset of the Redis cache used for like counts.
type JSONCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const (
	likeCountKeyPrefix = "likes:job:"
	// LikeCountCacheKeyPattern matches every cached like count.
	LikeCountCacheKeyPattern = likeCountKeyPrefix + "*"
)

func LikeCountCacheKey(jobID uuid.UUID) string {
	return likeCountKeyPrefix + jobID.String()
}

// CachedRecommendationQuery serves like counts from the cache when possible.
// Cache failures fall through to the underlying query; they never fail a
// recommendation.
type CachedRecommendationQuery struct {
	RecommendationQuery

	cache  JSONCache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedRecommendationQuery(base RecommendationQuery, cache JSONCache, ttl time.Duration, logger *zap.Logger) *CachedRecommendationQuery {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedRecommendationQuery{RecommendationQuery: base, cache: cache, ttl: ttl, logger: logger}
}

func (q *CachedRecommendationQuery) CountLikesForJob(ctx context.Context, jobID uuid.UUID) (int64, error) {
	if q.cache == nil || q.ttl <= 0 {
		return q.RecommendationQuery.CountLikesForJob(ctx, jobID)
	}

	key := LikeCountCacheKey(jobID)
	var cached int64
	hit, err := q.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		q.logger.Debug("like count cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		metrics.LikeCountCacheHit()
		return cached, nil
	}
	metrics.LikeCountCacheMiss()

	n, err := q.RecommendationQuery.CountLikesForJob(ctx, jobID)
	if err != nil {
		return 0, err
	}
	if err := q.cache.SetJSON(ctx, key, n, q.ttl); err != nil {
		q.logger.Debug("like count cache write failed", zap.String("key", key), zap.Error(err))
	}
	return n, nil
}

// InvalidateJob drops the cached like count after a swipe on jobID changes.
func (q *CachedRecommendationQuery) InvalidateJob(ctx context.Context, jobID uuid.UUID) error {
	if q.cache == nil {
		return nil
	}
	return q.cache.Delete(ctx, LikeCountCacheKey(jobID))
}
