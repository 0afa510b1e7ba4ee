package usecase

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/toeicprep/internal/entity"
	"github.com/eslsoft/toeicprep/internal/repository"
)

// PracticeUsecase grades part-level drills. Drills are unscored and only feed streaks.
type PracticeUsecase interface {
	RecordPractice(ctx context.Context, userID, testID int64, partNumber int, submissions []entity.AnswerSubmission) (*entity.PracticeSession, error)
}

// NewPracticeUsecase wires the content and practice stores.
func NewPracticeUsecase(content repository.ContentRepository, sessions repository.PracticeRepository) PracticeUsecase {
	return &practiceUsecase{content: content, sessions: sessions, clock: time.Now}
}

type practiceUsecase struct {
	content  repository.ContentRepository
	sessions repository.PracticeRepository
	clock    func() time.Time
}

func (u *practiceUsecase) RecordPractice(ctx context.Context, userID, testID int64, partNumber int, submissions []entity.AnswerSubmission) (*entity.PracticeSession, error) {
	if userID <= 0 {
		return nil, entity.InvalidArgumentf("user id must be positive")
	}
	if testID <= 0 {
		return nil, entity.ErrTestNotFound
	}

	parts, err := u.content.ListParts(ctx, testID)
	if err != nil {
		return nil, err
	}
	if !lo.ContainsBy(parts, func(p entity.Part) bool { return p.Number == partNumber }) {
		return nil, entity.ErrPartNotFound
	}

	keys, err := u.content.ListQuestionKeys(ctx, testID)
	if err != nil {
		return nil, err
	}
	keys = lo.Filter(keys, func(k entity.QuestionKey, _ int) bool { return k.PartNumber == partNumber })

	records, raw := gradeSubmissions(keys, submissions)
	return u.sessions.Create(ctx, &entity.PracticeSession{
		UserID:      userID,
		TestID:      testID,
		PartNumber:  partNumber,
		Correct:     raw.ListeningCorrect + raw.ReadingCorrect,
		Total:       len(keys),
		Answers:     records,
		CompletedAt: u.clock().UTC(),
	})
}
