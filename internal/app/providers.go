package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/toeicprep/internal/entity"
	"github.com/eslsoft/toeicprep/internal/infrastructure/cache"
	"github.com/eslsoft/toeicprep/internal/infrastructure/config"
	"github.com/eslsoft/toeicprep/internal/repository"
	"github.com/eslsoft/toeicprep/internal/scoring"
	"github.com/eslsoft/toeicprep/internal/srs"
	"github.com/eslsoft/toeicprep/internal/usecase"
)

func provideReviewPolicy(cfg *config.Config) (srs.Policy, error) {
	policy := srs.DefaultPolicy()
	if len(cfg.Review.IntervalDays) > 0 {
		policy.Intervals = srs.IntervalsFromDays(cfg.Review.IntervalDays)
	}
	if cfg.Review.ReviewThreshold > 0 {
		policy.ReviewThreshold = cfg.Review.ReviewThreshold
	}
	if cfg.Review.MasteredThreshold > 0 {
		policy.MasteredThreshold = cfg.Review.MasteredThreshold
	}
	if cfg.Review.RelearnDelay > 0 {
		policy.RelearnDelay = cfg.Review.RelearnDelay
	}
	if err := policy.Validate(); err != nil {
		return srs.Policy{}, err
	}
	return policy, nil
}

func provideScoreConverter(cfg *config.Config, repo repository.ScoreTableRepository) (*scoring.Converter, error) {
	return usecase.LoadScoreConverter(context.Background(), cfg.Scoring.Source, repo)
}

func provideBlueprintOptions(cfg *config.Config) usecase.BlueprintOptions {
	return usecase.BlueprintOptions{CacheTTL: cfg.Blueprint.CacheTTL}
}

// provideBlueprintCache starts the periodic sweep of expired trees; the cleanup stops it.
func provideBlueprintCache(cfg *config.Config, logger logrus.FieldLogger) (repository.BlueprintCache, func(), error) {
	store := cache.NewMemory[int64, *entity.Test]()
	if cfg.Blueprint.CacheSweepInterval <= 0 {
		return store, func() {}, nil
	}
	sweeper, err := cache.NewSweeper("blueprint", store, cfg.Blueprint.CacheSweepInterval, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("blueprint cache: %w", err)
	}
	sweeper.Start()
	return store, sweeper.Stop, nil
}
