package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/eslsoft/toeicprep/internal/entity"
	"github.com/eslsoft/toeicprep/internal/repository"
	"github.com/eslsoft/toeicprep/internal/scoring"
)

// ExamUsecase grades mock exams and exposes a learner's attempt history.
type ExamUsecase interface {
	Grade(ctx context.Context, testID, userID int64, submissions []entity.AnswerSubmission) (*entity.Attempt, error)
	GetAttempt(ctx context.Context, userID, attemptID int64) (*entity.Attempt, error)
	ListAttempts(ctx context.Context, query *repository.ListAttemptQuery) ([]*entity.Attempt, int64, error)
}

// NewExamUsecase wires the content store, attempt store and score converter.
func NewExamUsecase(content repository.ContentRepository, attempts repository.AttemptRepository, converter *scoring.Converter) ExamUsecase {
	return &examUsecase{
		content:   content,
		attempts:  attempts,
		converter: converter,
		clock:     time.Now,
	}
}

type examUsecase struct {
	content   repository.ContentRepository
	attempts  repository.AttemptRepository
	converter *scoring.Converter
	clock     func() time.Time
}

func (u *examUsecase) Grade(ctx context.Context, testID, userID int64, submissions []entity.AnswerSubmission) (*entity.Attempt, error) {
	if testID <= 0 {
		return nil, entity.ErrTestNotFound
	}
	if userID <= 0 {
		return nil, entity.InvalidArgumentf("user id must be positive")
	}

	keys, err := u.content.ListQuestionKeys(ctx, testID)
	if err != nil {
		return nil, err
	}

	records, raw := gradeSubmissions(keys, submissions)
	scaled, err := u.converter.ConvertRaw(raw)
	if err != nil {
		return nil, fmt.Errorf("convert score: %w", err)
	}

	return u.attempts.Create(ctx, &entity.Attempt{
		UserID:      userID,
		TestID:      testID,
		Raw:         raw,
		Scaled:      scaled,
		Answers:     records,
		CompletedAt: u.clock().UTC(),
	})
}

func (u *examUsecase) GetAttempt(ctx context.Context, userID, attemptID int64) (*entity.Attempt, error) {
	if attemptID <= 0 {
		return nil, entity.ErrAttemptNotFound
	}
	return u.attempts.Get(ctx, userID, attemptID)
}

func (u *examUsecase) ListAttempts(ctx context.Context, query *repository.ListAttemptQuery) ([]*entity.Attempt, int64, error) {
	if query == nil {
		return nil, 0, entity.InvalidArgumentf("list query required")
	}
	query.Normalize()
	return u.attempts.List(ctx, query)
}
