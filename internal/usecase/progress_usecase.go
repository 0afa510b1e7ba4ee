package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/eslsoft/toeicprep/internal/entity"
	"github.com/eslsoft/toeicprep/internal/repository"
	"github.com/eslsoft/toeicprep/internal/streak"
)

// ProgressUsecase derives dashboard statistics from the activity logs.
type ProgressUsecase interface {
	ComputeStreaks(ctx context.Context, userID int64) (*entity.StreakSummary, error)
}

// NewProgressUsecase wires the three activity sources.
func NewProgressUsecase(attempts repository.AttemptRepository, practice repository.PracticeRepository, reviews repository.ReviewStateRepository) ProgressUsecase {
	return &progressUsecase{
		sources: []activitySource{
			{name: "attempts", dates: attempts.ActiveDates},
			{name: "practice", dates: practice.ActiveDates},
			{name: "reviews", dates: reviews.ActiveDates},
		},
		clock: time.Now,
	}
}

type activitySource struct {
	name  string
	dates func(ctx context.Context, userID int64) ([]time.Time, error)
}

type progressUsecase struct {
	sources []activitySource
	clock   func() time.Time
}

func (u *progressUsecase) ComputeStreaks(ctx context.Context, userID int64) (*entity.StreakSummary, error) {
	if userID <= 0 {
		return nil, entity.InvalidArgumentf("user id must be positive")
	}
	var dates []time.Time
	for _, src := range u.sources {
		d, err := src.dates(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("%s activity: %w", src.name, err)
		}
		dates = append(dates, d...)
	}
	summary := streak.Compute(dates, u.clock())
	return &summary, nil
}
