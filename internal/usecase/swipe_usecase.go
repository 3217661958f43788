package usecase

import (
	"context"
	"errors"
	"fmt"

	"jobswipe/internal/domain/swipe"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxSwipeBatch = 500

// LikeCountInvalidator drops cached popularity data for a job.
type LikeCountInvalidator interface {
	InvalidateJob(ctx context.Context, jobID uuid.UUID) error
}

type SwipeInput struct {
	UserID uuid.UUID
	JobID  uuid.UUID
	Action string
}

type SwipeUsecase interface {
	Record(ctx context.Context, in SwipeInput) (swipe.Swipe, bool, error)
	RecordBatch(ctx context.Context, in []SwipeInput) (swipe.BatchResult, error)
	UpdateAction(ctx context.Context, id uuid.UUID, action string) (swipe.Swipe, error)
}

type Swipe struct {
	swipes      swipe.Repository
	invalidator LikeCountInvalidator
	logger      *zap.Logger
}

func NewSwipeUsecase(swipes swipe.Repository, invalidator LikeCountInvalidator, logger *zap.Logger) *Swipe {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Swipe{swipes: swipes, invalidator: invalidator, logger: logger}
}

// Record stores a swipe. Swiping the same job again replaces the earlier
// action; the bool reports whether a new swipe was created.
func (u *Swipe) Record(ctx context.Context, in SwipeInput) (swipe.Swipe, bool, error) {
	s, err := toSwipe(in)
	if err != nil {
		return swipe.Swipe{}, false, err
	}

	stored, inserted, err := u.swipes.Upsert(ctx, s)
	if err != nil {
		return swipe.Swipe{}, false, mapSwipeError(err)
	}
	u.invalidate(ctx, stored.JobID)
	return stored, inserted, nil
}

// RecordBatch stores all swipes atomically. Later items win when the batch
// holds the same (user, job) pair more than once.
func (u *Swipe) RecordBatch(ctx context.Context, in []SwipeInput) (swipe.BatchResult, error) {
	if len(in) == 0 {
		return swipe.BatchResult{}, invalidInput("batch is empty")
	}
	if len(in) > maxSwipeBatch {
		return swipe.BatchResult{}, invalidInput(fmt.Sprintf("batch exceeds %d swipes", maxSwipeBatch))
	}

	items := make([]swipe.Swipe, 0, len(in))
	for i, it := range in {
		s, err := toSwipe(it)
		if err != nil {
			return swipe.BatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, s)
	}

	res, err := u.swipes.UpsertBatch(ctx, items)
	if err != nil {
		return swipe.BatchResult{}, mapSwipeError(err)
	}

	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, s := range items {
		if _, ok := seen[s.JobID]; ok {
			continue
		}
		seen[s.JobID] = struct{}{}
		u.invalidate(ctx, s.JobID)
	}
	return res, nil
}

func (u *Swipe) UpdateAction(ctx context.Context, id uuid.UUID, action string) (swipe.Swipe, error) {
	a, ok := swipe.ParseAction(action)
	if !ok {
		return swipe.Swipe{}, invalidInput("action must be like or dislike")
	}
	updated, err := u.swipes.UpdateAction(ctx, id, a)
	if err != nil {
		return swipe.Swipe{}, mapSwipeError(err)
	}
	u.invalidate(ctx, updated.JobID)
	return updated, nil
}

func (u *Swipe) invalidate(ctx context.Context, jobID uuid.UUID) {
	if u.invalidator == nil {
		return
	}
	if err := u.invalidator.InvalidateJob(ctx, jobID); err != nil {
		u.logger.Warn("like count invalidation failed", zap.String("job_id", jobID.String()), zap.Error(err))
	}
}

func toSwipe(in SwipeInput) (swipe.Swipe, error) {
	if in.UserID == uuid.Nil || in.JobID == uuid.Nil {
		return swipe.Swipe{}, invalidInput("user_id and job_id are required")
	}
	a, ok := swipe.ParseAction(in.Action)
	if !ok {
		return swipe.Swipe{}, invalidInput("action must be like or dislike")
	}
	return swipe.Swipe{UserID: in.UserID, JobID: in.JobID, Action: a}, nil
}

func mapSwipeError(err error) error {
	switch {
	case errors.Is(err, swipe.ErrNotFound):
		return ErrSwipeNotFound
	case errors.Is(err, swipe.ErrUnknownReference):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return storageError(err)
	}
}
