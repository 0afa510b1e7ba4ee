package entity

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the assessment and review engine.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrScoreOutOfRange  = errors.New("raw score out of range")
	ErrInconsistentData = errors.New("inconsistent data")
	ErrConcurrentWrite  = errors.New("concurrent write conflict")
	ErrAlreadyExists    = errors.New("already exists")
)

// Not-found errors for the individual aggregates; all of them match ErrNotFound.
var (
	ErrTestNotFound        = fmt.Errorf("test %w", ErrNotFound)
	ErrPartNotFound        = fmt.Errorf("part %w", ErrNotFound)
	ErrGroupNotFound       = fmt.Errorf("group %w", ErrNotFound)
	ErrQuestionNotFound    = fmt.Errorf("question %w", ErrNotFound)
	ErrAnswerNotFound      = fmt.Errorf("answer %w", ErrNotFound)
	ErrAttemptNotFound     = fmt.Errorf("attempt %w", ErrNotFound)
	ErrCardNotFound        = fmt.Errorf("card %w", ErrNotFound)
	ErrReviewStateNotFound = fmt.Errorf("review state %w", ErrNotFound)
)

// RangeError reports a raw correct count outside [0, MaxRawCount].
type RangeError struct {
	Section Section
	Raw     int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s raw count %d outside [0,%d]", e.Section, e.Raw, MaxRawCount)
}

func (e *RangeError) Unwrap() error { return ErrScoreOutOfRange }

// InconsistentDataError reports structurally corrupt data coming from the content store.
type InconsistentDataError struct {
	Entity string
	ID     int64
	Reason string
}

func (e *InconsistentDataError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("inconsistent %s %d: %s", e.Entity, e.ID, e.Reason)
	}
	return fmt.Sprintf("inconsistent %s: %s", e.Entity, e.Reason)
}

func (e *InconsistentDataError) Unwrap() error { return ErrInconsistentData }

// InvalidArgumentf builds an error matching ErrInvalidArgument.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
