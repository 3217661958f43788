package usecase

import (
	"context"
	"errors"
	"time"

	"jobswipe/internal/config"
	"jobswipe/internal/domain/job"
	"jobswipe/internal/domain/matching"
	"jobswipe/internal/domain/swipe"
	"jobswipe/internal/domain/user"
	"jobswipe/internal/logger"
	"jobswipe/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RecommendationSource is the read-only storage surface the recommender
// depends on. FindUser must return user.ErrNotFound for unknown IDs.
type RecommendationSource interface {
	FindUser(ctx context.Context, id uuid.UUID) (user.User, error)
	ListSwipesByUser(ctx context.Context, userID uuid.UUID) ([]swipe.Swipe, error)
	ListJobsExcluding(ctx context.Context, jobIDs []uuid.UUID) ([]job.Job, error)
	CountLikesForJob(ctx context.Context, jobID uuid.UUID) (int64, error)
}

type JobRecommendationUsecase interface {
	Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]matching.Recommendation, error)
}

type JobRecommendation struct {
	source      RecommendationSource
	concurrency int
	maxLimit    int
	logger      *zap.Logger
}

func NewJobRecommendationUsecase(source RecommendationSource, cfg config.RecommendationConfig, lg *zap.Logger) *JobRecommendation {
	if lg == nil {
		lg = zap.NewNop()
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = config.DefaultRecommendationConfig().Concurrency
	}
	return &JobRecommendation{
		source:      source,
		concurrency: concurrency,
		maxLimit:    cfg.MaxLimit,
		logger:      lg,
	}
}

// Recommend returns up to limit jobs the user has not swiped on, best first.
// Ties on the combined score are broken by job ID so the same inputs always
// produce the same list.
func (u *JobRecommendation) Recommend(ctx context.Context, userID uuid.UUID, limit int) (recs []matching.Recommendation, err error) {
	if limit <= 0 {
		return []matching.Recommendation{}, nil
	}
	if u.maxLimit > 0 && limit > u.maxLimit {
		limit = u.maxLimit
	}

	start := time.Now()
	candidates := 0
	defer func() {
		metrics.ObserveRecommendation(recommendationOutcome(err), time.Since(start), candidates)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	usr, err := u.source.FindUser(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageError(err)
	}

	history, err := u.source.ListSwipesByUser(ctx, userID)
	if err != nil {
		return nil, storageError(err)
	}
	swiped := make([]uuid.UUID, 0, len(history))
	for _, s := range history {
		swiped = append(swiped, s.JobID)
	}
	excluded := matching.NewExclusionSet(swiped...)

	jobs, err := u.source.ListJobsExcluding(ctx, excluded.IDs())
	if err != nil {
		return nil, storageError(err)
	}

	// The source is trusted to exclude, but a swiped job must never leak.
	pool := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if excluded.Contains(j.ID) {
			continue
		}
		pool = append(pool, j)
	}
	candidates = len(pool)
	if len(pool) == 0 {
		return []matching.Recommendation{}, nil
	}

	profile := matching.NewProfile(usr.Skills, usr.Preferences.JobTypes, string(usr.Preferences.LocationType))
	scored := make([]matching.ScoredCandidate, len(pool))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for i := range pool {
		j := pool[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			likes, err := u.source.CountLikesForJob(gctx, j.ID)
			if err != nil {
				return err
			}
			content := matching.ContentScore(profile, matching.JobFeatures{
				SkillsRequired: j.SkillsRequired,
				JobType:        j.JobType,
				IsRemote:       j.IsRemote,
			})
			scored[i] = matching.NewScoredCandidate(j.ID, content, matching.PopularityScore(likes))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.FromContextOr(ctx, u.logger).Warn("recommendation scoring failed",
			zap.String("user_id", userID.String()),
			zap.Int("candidates", len(pool)),
			zap.Error(err),
		)
		return nil, storageError(err)
	}

	recs = matching.Rank(scored, limit)
	logger.FromContextOr(ctx, u.logger).Debug("recommendations computed",
		zap.String("user_id", userID.String()),
		zap.Int("excluded", len(excluded)),
		zap.Int("candidates", len(pool)),
		zap.Int("returned", len(recs)),
		zap.Duration("took", time.Since(start)),
	)
	return recs, nil
}

func recommendationOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUserNotFound):
		return "not_found"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
