package repository

import (
	"context"
	"time"

	"github.com/eslsoft/toeicprep/internal/entity"
)

// CardRepository stores vocabulary flashcards.
type CardRepository interface {
	Create(ctx context.Context, card *entity.Card) (*entity.Card, error)
	Get(ctx context.Context, id int64) (*entity.Card, error)
}

// ReviewStateRepository stores one spaced-repetition state per learner and card.
type ReviewStateRepository interface {
	Get(ctx context.Context, userID, cardID int64) (*entity.ReviewState, error)
	// Save upserts the state and appends the review log entry in one transaction.
	// Concurrent saves of the same pair are not serialized; the last one wins.
	Save(ctx context.Context, state entity.ReviewState, log entity.ReviewLog) (*entity.ReviewState, error)
	// ListDue returns non-mastered states due at now, earliest first.
	ListDue(ctx context.Context, userID int64, now time.Time, limit int) ([]entity.ReviewState, error)
	Delete(ctx context.Context, userID, cardID int64) error
	// ActiveDates returns the times of the learner's review log entries.
	ActiveDates(ctx context.Context, userID int64) ([]time.Time, error)
}
