package usecase

import (
	"context"

	"github.com/hereditas-labs/herd-cli/internal/domain"
)

// SorobanClient is the external network toolchain consumed by the pipeline:
// one method per operation so a test double can stand in for the real CLI
// without spawning processes.
type SorobanClient interface {
	// ResolveAddress derives the public address of a named identity.
	ResolveAddress(ctx context.Context, identity string) (string, error)
	// FundAccount requests friendbot funding for the identity's account.
	FundAccount(ctx context.Context, identity string, network domain.NetworkName) error
	// Build compiles every contract package in the current directory.
	Build(ctx context.Context) error
	// Optimize size-optimizes one compiled artifact in place.
	Optimize(ctx context.Context, wasmPath string) error
	// Deploy submits an artifact and returns the network-assigned contract ID.
	Deploy(ctx context.Context, wasmPath string, req domain.DeploymentRequest) (string, error)
	// Invoke calls a named function on a deployed contract with named args.
	Invoke(ctx context.Context, contractID, function string, args map[string]string, req domain.DeploymentRequest) (string, error)
}

// NetworkResolver maps a network name to its fixed profile.
type NetworkResolver interface {
	Resolve(name string) (domain.NetworkProfile, error)
	Supported() []domain.NetworkProfile
}

// StateRepository persists deployment results as an ordered KEY=VALUE file.
type StateRepository interface {
	// Load reads the current state in file order; a missing file is empty
	// state, not an error.
	Load(ctx context.Context) ([]domain.StateEntry, error)
	// Upsert replaces or appends each entry, preserving unrelated keys.
	Upsert(ctx context.Context, entries []domain.StateEntry) error
	// Path returns the location of the backing file.
	Path() string
}

// ContractsDir locates the contracts workspace and scopes the process working
// directory to it for the duration of the build stage.
type ContractsDir interface {
	// Path returns the absolute contracts workspace directory.
	Path() (string, error)
	// Enter changes into the workspace and returns a restore function that
	// must run on every exit path.
	Enter() (restore func() error, err error)
}

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Pipeline stages reported through the progress sink.
const (
	StageResolvingIdentity = "resolving identity"
	StageFunding           = "funding"
	StageBuilding          = "building"
	StageOptimizing        = "optimizing"
	StageDeploying         = "deploying"
	StageInitializing      = "initializing"
	StagePersisting        = "saving state"
)
