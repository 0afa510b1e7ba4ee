package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eslsoft/toeicprep/internal/entity"
	"github.com/eslsoft/toeicprep/internal/repository"
	"github.com/eslsoft/toeicprep/internal/scoring"
)

var gradedAt = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newExamFixture() (ExamUsecase, *fakeContentRepo, *fakeAttemptRepo) {
	content := newFakeContentRepo()
	attempts := newFakeAttemptRepo()
	uc := NewExamUsecase(content, attempts, scoring.NewConverter(nil))
	impl := uc.(*examUsecase)
	impl.clock = func() time.Time { return gradedAt }
	return uc, content, attempts
}

func TestGradeScoresBySection(t *testing.T) {
	uc, content, attempts := newExamFixture()
	testID, ids := seedTest(content, "Mock 1", map[int][]entity.Option{
		1: {entity.OptionA, entity.OptionB},
		4: {entity.OptionC},
		5: {entity.OptionD, entity.OptionA},
	})

	submissions := []entity.AnswerSubmission{
		{QuestionID: ids[1][0], SelectedOption: "a"},
		{QuestionID: ids[1][1], SelectedOption: "C"},
		{QuestionID: ids[4][0], SelectedOption: " c "},
		{QuestionID: ids[5][0], SelectedOption: "D"},
		{QuestionID: ids[5][1], SelectedOption: ""},
	}
	attempt, err := uc.Grade(context.Background(), testID, 7, submissions)
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}

	if attempt.ID == 0 {
		t.Fatalf("expected persisted attempt id")
	}
	if attempt.Raw.ListeningCorrect != 2 || attempt.Raw.ReadingCorrect != 1 {
		t.Fatalf("unexpected raw score: %+v", attempt.Raw)
	}
	want, _ := scoring.NewConverter(nil).Convert(2, 1)
	if attempt.Scaled != want {
		t.Fatalf("expected scaled %+v, got %+v", want, attempt.Scaled)
	}
	if attempt.Scaled.Total != attempt.Scaled.Listening+attempt.Scaled.Reading {
		t.Fatalf("total is not the sum of sections: %+v", attempt.Scaled)
	}
	if !attempt.CompletedAt.Equal(gradedAt) {
		t.Fatalf("expected completed at %s, got %s", gradedAt, attempt.CompletedAt)
	}
	if len(attempt.Answers) != 5 {
		t.Fatalf("expected 5 answer records, got %d", len(attempt.Answers))
	}
	if attempt.Answers[0].SelectedOption != entity.OptionA || !attempt.Answers[0].IsCorrect {
		t.Fatalf("expected lower-case answer to be stored upper-case and correct, got %+v", attempt.Answers[0])
	}
	if attempt.Answers[4].IsCorrect {
		t.Fatalf("empty selection must be incorrect")
	}

	stored, err := attempts.Get(context.Background(), 7, attempt.ID)
	if err != nil {
		t.Fatalf("attempt not persisted: %v", err)
	}
	if len(stored.Answers) != 5 {
		t.Fatalf("expected answers persisted with attempt, got %d", len(stored.Answers))
	}
}

func TestGradeDiscardsForeignAndDuplicateSubmissions(t *testing.T) {
	uc, content, _ := newExamFixture()
	testID, ids := seedTest(content, "Mock 1", map[int][]entity.Option{1: {entity.OptionB}})
	_, otherIDs := seedTest(content, "Mock 2", map[int][]entity.Option{1: {entity.OptionB}})

	attempt, err := uc.Grade(context.Background(), testID, 7, []entity.AnswerSubmission{
		{QuestionID: otherIDs[1][0], SelectedOption: "B"},
		{QuestionID: 99999, SelectedOption: "B"},
		{QuestionID: ids[1][0], SelectedOption: "A"},
		{QuestionID: ids[1][0], SelectedOption: "B"},
	})
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if len(attempt.Answers) != 1 {
		t.Fatalf("expected a single graded answer, got %+v", attempt.Answers)
	}
	if attempt.Answers[0].IsCorrect || attempt.Raw.ListeningCorrect != 0 {
		t.Fatalf("expected the first submission to win, got %+v", attempt)
	}
}

func TestGradeIsDeterministicAndAppendOnly(t *testing.T) {
	uc, content, attempts := newExamFixture()
	testID, ids := seedTest(content, "Mock 1", map[int][]entity.Option{2: {entity.OptionA}, 6: {entity.OptionB}})
	subs := []entity.AnswerSubmission{
		{QuestionID: ids[2][0], SelectedOption: "A"},
		{QuestionID: ids[6][0], SelectedOption: "C"},
	}

	first, err := uc.Grade(context.Background(), testID, 3, subs)
	if err != nil {
		t.Fatalf("first Grade returned error: %v", err)
	}
	second, err := uc.Grade(context.Background(), testID, 3, subs)
	if err != nil {
		t.Fatalf("second Grade returned error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected independent attempts, both have id %d", first.ID)
	}
	for i := range first.Answers {
		if first.Answers[i].IsCorrect != second.Answers[i].IsCorrect {
			t.Fatalf("answer %d graded differently", i)
		}
	}
	list, total, err := uc.ListAttempts(context.Background(), &repository.ListAttemptQuery{UserID: 3})
	if err != nil {
		t.Fatalf("ListAttempts returned error: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Fatalf("expected two stored attempts, got %d/%d", len(list), total)
	}
	if _, err := attempts.Get(context.Background(), 3, first.ID); err != nil {
		t.Fatalf("first attempt vanished: %v", err)
	}
}

func TestGradeUnknownTest(t *testing.T) {
	uc, _, _ := newExamFixture()
	_, err := uc.Grade(context.Background(), 42, 1, nil)
	if !errors.Is(err, entity.ErrTestNotFound) || !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected ErrTestNotFound, got %v", err)
	}
}

func TestGradePropagatesPersistenceFailure(t *testing.T) {
	uc, content, attempts := newExamFixture()
	testID, _ := seedTest(content, "Mock 1", map[int][]entity.Option{1: {entity.OptionA}})
	boom := errors.New("disk full")
	attempts.createFn = func(*entity.Attempt) error { return boom }

	if _, err := uc.Grade(context.Background(), testID, 1, nil); !errors.Is(err, boom) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if len(attempts.items) != 0 {
		t.Fatalf("expected nothing stored")
	}
}

func TestGradeRejectsInvalidUser(t *testing.T) {
	uc, content, _ := newExamFixture()
	testID, _ := seedTest(content, "Mock 1", map[int][]entity.Option{1: {entity.OptionA}})
	if _, err := uc.Grade(context.Background(), testID, 0, nil); !errors.Is(err, entity.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestGetAttemptChecksOwner(t *testing.T) {
	uc, content, _ := newExamFixture()
	testID, _ := seedTest(content, "Mock 1", map[int][]entity.Option{1: {entity.OptionA}})
	attempt, err := uc.Grade(context.Background(), testID, 5, nil)
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if _, err := uc.GetAttempt(context.Background(), 6, attempt.ID); !errors.Is(err, entity.ErrAttemptNotFound) {
		t.Fatalf("expected ErrAttemptNotFound for another learner, got %v", err)
	}
	got, err := uc.GetAttempt(context.Background(), 5, attempt.ID)
	if err != nil {
		t.Fatalf("GetAttempt returned error: %v", err)
	}
	if got.TestID != testID {
		t.Fatalf("expected test %d, got %d", testID, got.TestID)
	}
}

func TestListAttemptsNormalizesPagination(t *testing.T) {
	uc, _, _ := newExamFixture()
	query := &repository.ListAttemptQuery{UserID: 1}
	if _, _, err := uc.ListAttempts(context.Background(), query); err != nil {
		t.Fatalf("ListAttempts returned error: %v", err)
	}
	if query.PageNo != 1 || query.PageSize != repository.DefaultPageSize {
		t.Fatalf("expected default pagination, got %+v", query.Pagination)
	}
	if _, _, err := uc.ListAttempts(context.Background(), nil); !errors.Is(err, entity.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for nil query, got %v", err)
	}
}
