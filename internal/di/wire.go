//go:build wireinject
// +build wireinject

package di

import (
	"github.com/dancaldera/investment-api/pkg/config"
	"github.com/dancaldera/investment-api/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation in wire_gen.go.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Signal engine
		ProvideLimiter,
		ProvideMarketData,
		ProvideSignalConfig,
		ProvideAnalyzer,

		// Notification pipeline
		ProvideNotifier,
		ProvideScheduler,

		// HTTP surface
		ProvideHandler,
		ProvideHTTPServer,

		ProvideApp,
	)
	return &server.App{}, nil
}
