//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/toeicprep/internal/adapter/connectrpc"
	"github.com/eslsoft/toeicprep/internal/adapter/repository"
	"github.com/eslsoft/toeicprep/internal/infrastructure/config"
	"github.com/eslsoft/toeicprep/internal/infrastructure/database"
	"github.com/eslsoft/toeicprep/internal/infrastructure/server"
	"github.com/eslsoft/toeicprep/internal/usecase"
)

var databaseSet = wire.NewSet(
	database.Open,
)

var repositorySet = wire.NewSet(
	repository.NewContentRepository,
	repository.NewAttemptRepository,
	repository.NewPracticeRepository,
	repository.NewCardRepository,
	repository.NewReviewStateRepository,
	repository.NewScoreTableRepository,
)

var usecaseSet = wire.NewSet(
	provideScoreConverter,
	provideReviewPolicy,
	provideBlueprintOptions,
	provideBlueprintCache,
	usecase.NewExamUsecase,
	usecase.NewPracticeUsecase,
	usecase.NewBlueprintUsecase,
	usecase.NewReviewUsecase,
	usecase.NewProgressUsecase,
)

var serviceSet = wire.NewSet(
	connectrpc.NewExamServiceServer,
	connectrpc.NewBlueprintServiceServer,
	connectrpc.NewReviewServiceServer,
	connectrpc.NewProgressServiceServer,
	connectrpc.NewValidator,
	wire.Struct(new(connectrpc.Services), "*"),
)

var serverSet = wire.NewSet(
	server.NewLogger,
	wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
	server.NewServer,
)

// Initialize builds the application container from cfg using Wire.
func Initialize(cfg *config.Config) (*Container, func(), error) {
	wire.Build(
		databaseSet,
		repositorySet,
		usecaseSet,
		serviceSet,
		serverSet,
		wire.Struct(new(Container), "Logger", "Server"),
	)
	return nil, nil, nil
}
