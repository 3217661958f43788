package swipe

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("swipe not found")
	// ErrUnknownReference means the user or the job of a swipe does not exist.
	ErrUnknownReference = errors.New("swipe references unknown user or job")
)

type Action string

const (
	ActionLike    Action = "like"
	ActionDislike Action = "dislike"
)

func ParseAction(s string) (Action, bool) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case ActionLike, ActionDislike:
		return a, true
	}
	return "", false
}

// Swipe is unique per (UserID, JobID); a second swipe on the same job replaces the action.
type Swipe struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	JobID     uuid.UUID
	Action    Action
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BatchResult struct {
	Inserted int
	Updated  int
}

type Repository interface {
	// Upsert reports whether a new row was inserted (false: existing action replaced).
	Upsert(ctx context.Context, s Swipe) (Swipe, bool, error)
	UpsertBatch(ctx context.Context, items []Swipe) (BatchResult, error)
	UpdateAction(ctx context.Context, id uuid.UUID, action Action) (Swipe, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Swipe, error)
}
