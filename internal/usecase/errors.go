package usecase

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrJobNotFound   = errors.New("job not found")
	ErrSwipeNotFound = errors.New("swipe not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmailTaken    = errors.New("email already registered")

	// ErrStorageUnavailable wraps any failure of the backing store. Callers
	// may retry.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// storageError wraps err as ErrStorageUnavailable. Context errors are
// returned untouched so callers can tell cancellation from failure.
func storageError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

func invalidInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
