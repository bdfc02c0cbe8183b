//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/config"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/server"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideModelStore,
		ProvideReportCache,

		// Repositories
		ProvideCandleStore,
		ProvideSignalPublisher,

		// Domain services
		ProvideFeatureExtractor,
		ProvideTrainingGenerator,
		ProvideModelService,

		// Use cases
		ProvideAnalyzer,
		ProvideTrainer,
		ProvideSymbolAnalytics,

		// HTTP surface and application server
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
