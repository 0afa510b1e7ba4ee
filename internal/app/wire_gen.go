// Injector for the providers declared in wire.go, in the layout the wire tool emits.
// Run go generate in this package after changing wire.go to rewrite it.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"github.com/eslsoft/toeicprep/internal/adapter/connectrpc"
	"github.com/eslsoft/toeicprep/internal/adapter/repository"
	"github.com/eslsoft/toeicprep/internal/infrastructure/config"
	"github.com/eslsoft/toeicprep/internal/infrastructure/database"
	"github.com/eslsoft/toeicprep/internal/infrastructure/server"
	"github.com/eslsoft/toeicprep/internal/usecase"
)

// Injectors from wire.go:

// Initialize builds the application container from cfg using Wire.
func Initialize(cfg *config.Config) (*Container, func(), error) {
	logger, err := server.NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	driver, cleanup, err := database.Open(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	contentRepository := repository.NewContentRepository(driver)
	attemptRepository := repository.NewAttemptRepository(driver)
	scoreTableRepository := repository.NewScoreTableRepository(driver)
	converter, err := provideScoreConverter(cfg, scoreTableRepository)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	examUsecase := usecase.NewExamUsecase(contentRepository, attemptRepository, converter)
	practiceRepository := repository.NewPracticeRepository(driver)
	practiceUsecase := usecase.NewPracticeUsecase(contentRepository, practiceRepository)
	examServiceServer := connectrpc.NewExamServiceServer(examUsecase, practiceUsecase)
	blueprintCache, cleanup2, err := provideBlueprintCache(cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	blueprintOptions := provideBlueprintOptions(cfg)
	blueprintUsecase := usecase.NewBlueprintUsecase(contentRepository, blueprintCache, blueprintOptions, logger)
	blueprintServiceServer := connectrpc.NewBlueprintServiceServer(blueprintUsecase)
	cardRepository := repository.NewCardRepository(driver)
	reviewStateRepository := repository.NewReviewStateRepository(driver)
	policy, err := provideReviewPolicy(cfg)
	if err != nil {
		cleanup2()
		cleanup()
		return nil, nil, err
	}
	reviewUsecase := usecase.NewReviewUsecase(cardRepository, reviewStateRepository, policy)
	reviewServiceServer := connectrpc.NewReviewServiceServer(reviewUsecase)
	progressUsecase := usecase.NewProgressUsecase(attemptRepository, practiceRepository, reviewStateRepository)
	progressServiceServer := connectrpc.NewProgressServiceServer(progressUsecase)
	services := &connectrpc.Services{
		Exam:      examServiceServer,
		Blueprint: blueprintServiceServer,
		Review:    reviewServiceServer,
		Progress:  progressServiceServer,
	}
	validator, err := connectrpc.NewValidator()
	if err != nil {
		cleanup2()
		cleanup()
		return nil, nil, err
	}
	serverServer := server.NewServer(cfg, logger, services, validator)
	container := &Container{
		Logger: logger,
		Server: serverServer,
	}
	return container, func() {
		cleanup2()
		cleanup()
	}, nil
}
