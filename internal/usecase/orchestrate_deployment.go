package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hereditas-labs/herd-cli/internal/domain"
)

// OrchestrateDeploymentParams contains parameters for a deployment run
type OrchestrateDeploymentParams struct {
	NetworkName   string
	AdminIdentity string
	DryRun        bool
}

// OrchestrateDeploymentResult contains the result of a deployment run
type OrchestrateDeploymentResult struct {
	Request   domain.DeploymentRequest
	Admin     domain.ResolvedIdentity
	Funding   FundingOutcome
	Contracts []domain.DeployedContract
	StatePath string
	DryRun    bool
}

// OrchestrateDeployment runs the full pipeline: resolve the network profile
// and admin identity, build and optimize both contract packages, deploy them
// in fixed order, initialize the inheritance contract, and persist the
// assigned IDs. Every stage failure is fatal; only funding is best-effort.
type OrchestrateDeployment struct {
	networks NetworkResolver
	identity *ResolveIdentity
	client   SorobanClient
	workdir  ContractsDir
	state    StateRepository
	progress ProgressSink
	log      *slog.Logger
}

// NewOrchestrateDeployment creates a new OrchestrateDeployment use case
func NewOrchestrateDeployment(
	networks NetworkResolver,
	identity *ResolveIdentity,
	client SorobanClient,
	workdir ContractsDir,
	state StateRepository,
	progress ProgressSink,
	log *slog.Logger,
) *OrchestrateDeployment {
	return &OrchestrateDeployment{
		networks: networks,
		identity: identity,
		client:   client,
		workdir:  workdir,
		state:    state,
		progress: progress,
		log:      log.With("component", "OrchestrateDeployment"),
	}
}

// Run executes the use case
func (uc *OrchestrateDeployment) Run(ctx context.Context, params OrchestrateDeploymentParams) (*OrchestrateDeploymentResult, error) {
	if strings.TrimSpace(params.AdminIdentity) == "" {
		return nil, &domain.ConfigurationError{Reason: "admin identity is required"}
	}

	profile, err := uc.networks.Resolve(params.NetworkName)
	if err != nil {
		return nil, err
	}

	request := domain.DeploymentRequest{
		Network:       profile,
		AdminIdentity: params.AdminIdentity,
	}
	result := &OrchestrateDeploymentResult{
		Request:   request,
		StatePath: uc.state.Path(),
		DryRun:    params.DryRun,
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageResolvingIdentity, Message: fmt.Sprintf("Resolving identity %q", params.AdminIdentity), Spinner: true})
	resolved, err := uc.identity.Run(ctx, ResolveIdentityParams{
		Identity: params.AdminIdentity,
		Network:  profile.Name,
	})
	if err != nil {
		return nil, err
	}
	result.Admin = resolved.Identity
	result.Funding = resolved.Funding

	contractsDir, err := uc.workdir.Path()
	if err != nil {
		return nil, err
	}

	if err := uc.buildArtifacts(ctx); err != nil {
		return nil, err
	}

	if params.DryRun {
		uc.progress.Info("Dry run: skipping deploy, initialize and persist stages")
		return result, nil
	}

	artifacts := domain.Artifacts()
	for _, artifact := range artifacts {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageDeploying, Message: fmt.Sprintf("Deploying %s contract", artifact.Name), Spinner: true})
		wasm := filepath.Join(contractsDir, artifact.OptimizedWasmPath())
		id, err := uc.client.Deploy(ctx, wasm, request)
		if err != nil {
			return nil, &domain.DeploymentError{Artifact: artifact.Name, Err: err}
		}
		id = strings.TrimSpace(id)
		uc.log.Debug("contract deployed", "contract", artifact.Name, "id", id)
		result.Contracts = append(result.Contracts, domain.DeployedContract{
			Artifact:   artifact,
			ContractID: id,
		})
	}

	// The inheritance contract deploys last, so it is the last entry.
	inheritance := result.Contracts[len(result.Contracts)-1]
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageInitializing, Message: "Initializing admin", Spinner: true})
	if _, err := uc.client.Invoke(ctx, inheritance.ContractID, "initialize_admin",
		map[string]string{"admin": result.Admin.Address}, request); err != nil {
		return nil, &domain.InitializationError{ContractID: inheritance.ContractID, Err: err}
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StagePersisting, Message: "Saving contract IDs"})
	entries := make([]domain.StateEntry, 0, len(result.Contracts))
	for _, deployed := range result.Contracts {
		entries = append(entries, domain.StateEntry{
			Key:   deployed.Artifact.StateKey,
			Value: deployed.ContractID,
		})
	}
	if err := uc.state.Upsert(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to persist contract IDs to %s: %w", uc.state.Path(), err)
	}

	return result, nil
}

// buildArtifacts runs the plain build pass and the per-package optimize pass
// inside the contracts workspace, restoring the working directory on every
// exit path.
func (uc *OrchestrateDeployment) buildArtifacts(ctx context.Context) (err error) {
	restore, err := uc.workdir.Enter()
	if err != nil {
		return err
	}
	defer func() {
		if restoreErr := restore(); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageBuilding, Message: "Building contracts", Spinner: true})
	if err := uc.client.Build(ctx); err != nil {
		return &domain.BuildError{Err: err}
	}

	for _, artifact := range domain.Artifacts() {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageOptimizing, Message: fmt.Sprintf("Optimizing %s", artifact.Package), Spinner: true})
		if err := uc.client.Optimize(ctx, artifact.WasmPath); err != nil {
			return &domain.BuildError{Package: artifact.Package, Err: err}
		}
	}

	return nil
}
