package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/toeicprep/internal/entity"
	"github.com/eslsoft/toeicprep/internal/repository"
)

func newAttempt(userID, testID int64, total int, at time.Time) *entity.Attempt {
	return &entity.Attempt{
		UserID: userID,
		TestID: testID,
		Raw:    entity.RawScore{ListeningCorrect: 1, ReadingCorrect: 0},
		Scaled: entity.ScaledScore{Listening: total, Reading: 0, Total: total},
		Answers: []entity.AnswerRecord{
			{QuestionID: 11, SelectedOption: entity.OptionA, IsCorrect: true},
			{QuestionID: 12, SelectedOption: "", IsCorrect: false},
		},
		CompletedAt: at,
	}
}

func TestAttemptRepositoryCreateAndGet(t *testing.T) {
	drv := newTestDriver(t)
	ctx := context.Background()
	test, err := NewContentRepository(drv).CreateTest(ctx, "Mock")
	if err != nil {
		t.Fatalf("create test: %v", err)
	}
	repo := NewAttemptRepository(drv)

	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.FixedZone("UTC+2", 2*3600))
	created, err := repo.Create(ctx, newAttempt(7, test.ID, 300, at))
	if err != nil {
		t.Fatalf("create attempt: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected id to be assigned")
	}

	got, err := repo.Get(ctx, 7, created.ID)
	if err != nil {
		t.Fatalf("get attempt: %v", err)
	}
	if !got.CompletedAt.Equal(at) || got.CompletedAt.Location() != time.UTC {
		t.Fatalf("expected completed_at %v in UTC, got %v", at, got.CompletedAt)
	}
	if got.Scaled.Total != 300 || got.Raw.ListeningCorrect != 1 {
		t.Fatalf("unexpected scores: %+v %+v", got.Raw, got.Scaled)
	}
	if len(got.Answers) != 2 || !got.Answers[0].IsCorrect || got.Answers[1].IsCorrect || got.Answers[0].SelectedOption != entity.OptionA {
		t.Fatalf("unexpected answers: %+v", got.Answers)
	}

	if _, err := repo.Get(ctx, 8, created.ID); !errors.Is(err, entity.ErrAttemptNotFound) {
		t.Fatalf("expected ErrAttemptNotFound for other user, got %v", err)
	}
}

func TestAttemptRepositoryCreateIsAtomic(t *testing.T) {
	drv := newTestDriver(t)
	ctx := context.Background()
	repo := NewAttemptRepository(drv)

	// Unknown test violates the foreign key; neither the attempt nor its answers persist.
	if _, err := repo.Create(ctx, newAttempt(7, 999, 300, time.Now())); !errors.Is(err, entity.ErrTestNotFound) {
		t.Fatalf("expected ErrTestNotFound, got %v", err)
	}
	_, total, err := repo.List(ctx, &repository.ListAttemptQuery{
		Pagination: repository.Pagination{PageNo: 1, PageSize: 10},
		UserID:     7,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected nothing persisted, got %d attempts", total)
	}
}

func TestAttemptRepositoryListFilterAndOrder(t *testing.T) {
	drv := newTestDriver(t)
	ctx := context.Background()
	content := NewContentRepository(drv)
	t1, _ := content.CreateTest(ctx, "A")
	t2, _ := content.CreateTest(ctx, "B")
	repo := NewAttemptRepository(drv)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	seed := []struct {
		testID    int64
		total     int
		listening int
		day       int
	}{
		{t1.ID, 400, 300, 0},
		{t1.ID, 650, 250, 1},
		{t2.ID, 700, 400, 2},
		{t1.ID, 800, 350, 3},
	}
	for _, s := range seed {
		attempt := newAttempt(7, s.testID, s.total, base.AddDate(0, 0, s.day))
		attempt.Scaled.Listening, attempt.Scaled.Reading = s.listening, s.total-s.listening
		if _, err := repo.Create(ctx, attempt); err != nil {
			t.Fatalf("create attempt: %v", err)
		}
	}
	if _, err := repo.Create(ctx, newAttempt(8, t1.ID, 900, base)); err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	list := func(filter, orderBy string, size int32) ([]*entity.Attempt, int64) {
		t.Helper()
		items, total, err := repo.List(ctx, &repository.ListAttemptQuery{
			Pagination:  repository.Pagination{PageNo: 1, PageSize: size},
			FilterOrder: repository.FilterOrder{Filter: filter, OrderBy: orderBy},
			UserID:      7,
		})
		if err != nil {
			t.Fatalf("list %q: %v", filter, err)
		}
		return items, total
	}

	items, total := list("", "", 10)
	if total != 4 || len(items) != 4 {
		t.Fatalf("expected 4 attempts, got %d/%d", len(items), total)
	}
	if items[0].Scaled.Total != 800 || items[3].Scaled.Total != 400 {
		t.Fatalf("expected newest first, got %d..%d", items[0].Scaled.Total, items[3].Scaled.Total)
	}
	if items[0].Answers != nil {
		t.Fatalf("list must not load answers")
	}

	items, total = list(fmt.Sprintf("test_id == %d && total >= 600", t1.ID), "total asc", 10)
	if total != 2 || items[0].Scaled.Total != 650 || items[1].Scaled.Total != 800 {
		t.Fatalf("unexpected filtered result: %d %+v", total, items)
	}

	items, total = list("completed_at >= timestamp('2024-01-02T00:00:00Z') && completed_at <= timestamp('2024-01-03T23:59:59Z')", "", 10)
	if total != 2 || items[0].Scaled.Total != 700 || items[1].Scaled.Total != 650 {
		t.Fatalf("unexpected date-filtered result: %d %+v", total, items)
	}

	items, total = list("listening >= 300 && reading <= 300", "listening desc", 10)
	if total != 2 || items[0].Scaled.Total != 700 || items[1].Scaled.Total != 400 {
		t.Fatalf("unexpected section-filtered result: %d %+v", total, items)
	}
	if items[0].Scaled.Listening != 400 || items[0].Scaled.Reading != 300 {
		t.Fatalf("expected section scores to round-trip, got %+v", items[0].Scaled)
	}

	items, _ = list("", "reading asc", 10)
	got := lo.Map(items, func(a *entity.Attempt, _ int) int { return a.Scaled.Total })
	if !slices.Equal(got, []int{400, 700, 650, 800}) {
		t.Fatalf("expected reading ascending, got %v", got)
	}

	items, total = list("", "", 3)
	if total != 4 || len(items) != 3 {
		t.Fatalf("expected a page of 3 out of 4, got %d/%d", len(items), total)
	}

	_, _, err := repo.List(ctx, &repository.ListAttemptQuery{
		Pagination:  repository.Pagination{PageNo: 1, PageSize: 10},
		FilterOrder: repository.FilterOrder{Filter: "score > 1"},
		UserID:      7,
	})
	if !errors.Is(err, entity.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestActiveDatesAreDistinctUTCDays(t *testing.T) {
	drv := newTestDriver(t)
	ctx := context.Background()
	test, _ := NewContentRepository(drv).CreateTest(ctx, "A")
	attempts := NewAttemptRepository(drv)
	practice := NewPracticeRepository(drv)

	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	for _, at := range []time.Time{day.Add(time.Hour), day.Add(20 * time.Hour), day.AddDate(0, 0, 1)} {
		if _, err := attempts.Create(ctx, newAttempt(7, test.ID, 100, at)); err != nil {
			t.Fatalf("create attempt: %v", err)
		}
	}
	dates, err := attempts.ActiveDates(ctx, 7)
	if err != nil {
		t.Fatalf("attempt dates: %v", err)
	}
	if len(dates) != 2 {
		t.Fatalf("expected 2 distinct days, got %v", dates)
	}
	for _, d := range dates {
		if !d.Equal(entity.DayOf(d)) {
			t.Fatalf("expected day precision, got %v", d)
		}
	}

	session := &entity.PracticeSession{
		UserID:      7,
		TestID:      test.ID,
		PartNumber:  5,
		Correct:     1,
		Total:       2,
		Answers:     []entity.AnswerRecord{{QuestionID: 1, SelectedOption: entity.OptionB, IsCorrect: true}},
		CompletedAt: day.AddDate(0, 0, 5),
	}
	created, err := practice.Create(ctx, session)
	if err != nil {
		t.Fatalf("create practice: %v", err)
	}
	if created.ID == 0 || created.Total != 2 {
		t.Fatalf("unexpected practice session: %+v", created)
	}
	pdates, err := practice.ActiveDates(ctx, 7)
	if err != nil {
		t.Fatalf("practice dates: %v", err)
	}
	if len(pdates) != 1 || !pdates[0].Equal(day.AddDate(0, 0, 5)) {
		t.Fatalf("unexpected practice dates: %v", pdates)
	}
	if none, err := practice.ActiveDates(ctx, 8); err != nil || len(none) != 0 {
		t.Fatalf("expected no dates for another user, got %v %v", none, err)
	}
}
