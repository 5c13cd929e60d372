//go:build wireinject
// +build wireinject

package di

import (
	"AstroChart/pkg/config"
	"AstroChart/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideCallMetrics,

		// Ephemeris provider boundary
		ProvideAdapter,
		ProvideProvider,

		// Caching
		ProvideCache,

		// Use cases
		ProvideChartBuilder,
		ProvideComposer,

		// HTTP surface
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
