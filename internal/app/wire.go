//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/hereditas-labs/herd-cli/internal/adapters"
	"github.com/hereditas-labs/herd-cli/internal/config"
	"github.com/hereditas-labs/herd-cli/internal/logging"
	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewResolveIdentity,
		usecase.NewOrchestrateDeployment,
		usecase.NewListNetworks,
		usecase.NewShowState,

		// App
		NewApp,
	)
	return nil, nil
}
