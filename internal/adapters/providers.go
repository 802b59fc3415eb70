package adapters

import (
	"github.com/google/wire"

	"github.com/hereditas-labs/herd-cli/internal/adapters/fs"
	"github.com/hereditas-labs/herd-cli/internal/adapters/network"
	"github.com/hereditas-labs/herd-cli/internal/adapters/soroban"
	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewStateStoreAdapter,
	wire.Bind(new(usecase.StateRepository), new(*fs.StateStoreAdapter)),

	fs.NewWorkdirAdapter,
	wire.Bind(new(usecase.ContractsDir), new(*fs.WorkdirAdapter)),
)

// SorobanSet provides the stellar CLI toolchain implementation
var SorobanSet = wire.NewSet(
	soroban.NewCLIAdapter,
	wire.Bind(new(usecase.SorobanClient), new(*soroban.CLIAdapter)),
)

// NetworkSet provides the fixed network profile table
var NetworkSet = wire.NewSet(
	network.NewResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*network.Resolver)),
)

// AllAdapters combines every adapter provider set
var AllAdapters = wire.NewSet(
	FSSet,
	SorobanSet,
	NetworkSet,
)
