package app

import (
	"log/slog"

	"github.com/hereditas-labs/herd-cli/internal/config"
	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	OrchestrateDeployment *usecase.OrchestrateDeployment
	ListNetworks          *usecase.ListNetworks
	ShowState             *usecase.ShowState
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	orchestrateDeployment *usecase.OrchestrateDeployment,
	listNetworks *usecase.ListNetworks,
	showState *usecase.ShowState,
) (*App, error) {
	return &App{
		Config:                cfg,
		Log:                   log,
		OrchestrateDeployment: orchestrateDeployment,
		ListNetworks:          listNetworks,
		ShowState:             showState,
	}, nil
}
