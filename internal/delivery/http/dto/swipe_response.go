package dto

import (
	"time"

	"jobswipe/internal/domain/swipe"

	"github.com/google/uuid"
)

type SwipeRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	JobID  uuid.UUID `json:"job_id" validate:"required"`
	Action string    `json:"action" validate:"required"`
}

type UpdateSwipeRequest struct {
	Action string `json:"action" validate:"required"`
}

type SwipeResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	JobID     uuid.UUID `json:"job_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SwipeBatchResponse struct {
	InsertedCount int `json:"inserted_count"`
	UpdatedCount  int `json:"updated_count"`
}

func NewSwipeResponse(s swipe.Swipe) SwipeResponse {
	return SwipeResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		JobID:     s.JobID,
		Action:    string(s.Action),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func NewSwipeResponses(items []swipe.Swipe) []SwipeResponse {
	out := make([]SwipeResponse, 0, len(items))
	for _, s := range items {
		out = append(out, NewSwipeResponse(s))
	}
	return out
}
