package repository

import (
	"context"
	"time"

	"github.com/eslsoft/toeicprep/internal/entity"
)

// ListAttemptQuery holds parameters for listing a learner's attempts.
type ListAttemptQuery struct {
	Pagination
	FilterOrder

	UserID int64
}

// AttemptRepository persists graded exam attempts. Attempts are append-only.
type AttemptRepository interface {
	// Create writes the attempt and all of its answer records in one transaction.
	Create(ctx context.Context, attempt *entity.Attempt) (*entity.Attempt, error)
	Get(ctx context.Context, userID, id int64) (*entity.Attempt, error)
	// List returns attempts without their answer records, plus the total match count.
	List(ctx context.Context, query *ListAttemptQuery) ([]*entity.Attempt, int64, error)
	ActiveDates(ctx context.Context, userID int64) ([]time.Time, error)
}

// PracticeRepository persists part-level practice sessions.
type PracticeRepository interface {
	Create(ctx context.Context, session *entity.PracticeSession) (*entity.PracticeSession, error)
	ActiveDates(ctx context.Context, userID int64) ([]time.Time, error)
}
