package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hereditas-labs/herd-cli/internal/domain"
	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

// MockSorobanClient is a mock implementation of SorobanClient
type MockSorobanClient struct {
	mock.Mock
}

func (m *MockSorobanClient) ResolveAddress(ctx context.Context, identity string) (string, error) {
	args := m.Called(ctx, identity)
	return args.String(0), args.Error(1)
}

func (m *MockSorobanClient) FundAccount(ctx context.Context, identity string, network domain.NetworkName) error {
	args := m.Called(ctx, identity, network)
	return args.Error(0)
}

func (m *MockSorobanClient) Build(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSorobanClient) Optimize(ctx context.Context, wasmPath string) error {
	args := m.Called(ctx, wasmPath)
	return args.Error(0)
}

func (m *MockSorobanClient) Deploy(ctx context.Context, wasmPath string, req domain.DeploymentRequest) (string, error) {
	args := m.Called(ctx, wasmPath, req)
	return args.String(0), args.Error(1)
}

func (m *MockSorobanClient) Invoke(ctx context.Context, contractID, function string, fnArgs map[string]string, req domain.DeploymentRequest) (string, error) {
	args := m.Called(ctx, contractID, function, fnArgs, req)
	return args.String(0), args.Error(1)
}

// stubResolver implements NetworkResolver with a fixed table
type stubResolver struct{}

func (stubResolver) Resolve(name string) (domain.NetworkProfile, error) {
	switch domain.NetworkName(name) {
	case domain.Testnet:
		return domain.NetworkProfile{Name: domain.Testnet, RPCURL: "https://soroban-testnet.stellar.org", Passphrase: "Test SDF Network ; September 2015"}, nil
	case domain.Mainnet:
		return domain.NetworkProfile{Name: domain.Mainnet, RPCURL: "https://soroban-rpc.mainnet.stellar.gateway.fm", Passphrase: "Public Global Stellar Network ; September 2015"}, nil
	default:
		return domain.NetworkProfile{}, &domain.ConfigurationError{Reason: fmt.Sprintf("unknown network %q", name)}
	}
}

func (stubResolver) Supported() []domain.NetworkProfile {
	return nil
}

// fakeWorkdir implements ContractsDir and records enter/restore pairing
type fakeWorkdir struct {
	dir      string
	entered  int
	restored int
	pathErr  error
}

func (f *fakeWorkdir) Path() (string, error) {
	if f.pathErr != nil {
		return "", f.pathErr
	}
	return f.dir, nil
}

func (f *fakeWorkdir) Enter() (func() error, error) {
	if f.pathErr != nil {
		return nil, f.pathErr
	}
	f.entered++
	return func() error {
		f.restored++
		return nil
	}, nil
}

// fakeStateRepo implements StateRepository in memory
type fakeStateRepo struct {
	entries []domain.StateEntry
	upserts int
	loadErr error
}

func (f *fakeStateRepo) Load(ctx context.Context) ([]domain.StateEntry, error) {
	return f.entries, f.loadErr
}

func (f *fakeStateRepo) Upsert(ctx context.Context, entries []domain.StateEntry) error {
	f.upserts++
	for _, entry := range entries {
		replaced := false
		for i, existing := range f.entries {
			if existing.Key == entry.Key {
				f.entries[i] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			f.entries = append(f.entries, entry)
		}
	}
	return nil
}

func (f *fakeStateRepo) Path() string { return "/tmp/.env" }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrchestrator(client *MockSorobanClient, workdir *fakeWorkdir, state *fakeStateRepo) *usecase.OrchestrateDeployment {
	log := testLogger()
	return usecase.NewOrchestrateDeployment(
		stubResolver{},
		usecase.NewResolveIdentity(client, log),
		client,
		workdir,
		state,
		usecase.NopProgress{},
		log,
	)
}

func methodOrder(client *MockSorobanClient) []string {
	var order []string
	for _, call := range client.Calls {
		order = append(order, call.Method)
	}
	return order
}

func TestOrchestrateDeployment(t *testing.T) {
	ctx := context.Background()

	t.Run("full run on testnet", func(t *testing.T) {
		client := new(MockSorobanClient)
		workdir := &fakeWorkdir{dir: "/work/contracts"}
		state := &fakeStateRepo{
			entries: []domain.StateEntry{
				{Key: "BACKEND_PORT", Value: "8080"},
				{Key: "EXAMPLE_CONTRACT_ID", Value: "CAOLD"},
			},
		}

		client.On("ResolveAddress", ctx, "alice").Return("GADMIN123\n", nil)
		client.On("FundAccount", ctx, "alice", domain.Testnet).Return(nil)
		client.On("Build", ctx).Return(nil)
		client.On("Optimize", ctx, mock.Anything).Return(nil)
		client.On("Deploy", ctx, "/work/contracts/target/wasm32-unknown-unknown/release/hello_world.optimized.wasm", mock.Anything).Return("CAEXAMPLE1\n", nil)
		client.On("Deploy", ctx, "/work/contracts/target/wasm32-unknown-unknown/release/inheritance_contract.optimized.wasm", mock.Anything).Return("CAINHERIT1", nil)
		client.On("Invoke", ctx, "CAINHERIT1", "initialize_admin", map[string]string{"admin": "GADMIN123"}, mock.Anything).Return("", nil)

		uc := newOrchestrator(client, workdir, state)
		result, err := uc.Run(ctx, usecase.OrchestrateDeploymentParams{
			NetworkName:   "testnet",
			AdminIdentity: "alice",
		})

		require.NoError(t, err)
		assert.Equal(t, "GADMIN123", result.Admin.Address)
		assert.True(t, result.Funding.Attempted)
		require.Len(t, result.Contracts, 2)
		assert.Equal(t, "CAEXAMPLE1", result.Contracts[0].ContractID)
		assert.Equal(t, "CAINHERIT1", result.Contracts[1].ContractID)

		// example deploys before inheritance, initialize comes last
		assert.Equal(t, []string{
			"ResolveAddress", "FundAccount", "Build", "Optimize", "Optimize",
			"Deploy", "Deploy", "Invoke",
		}, methodOrder(client))

		// stale value replaced, unrelated key preserved
		assert.Equal(t, []domain.StateEntry{
			{Key: "BACKEND_PORT", Value: "8080"},
			{Key: "EXAMPLE_CONTRACT_ID", Value: "CAEXAMPLE1"},
			{Key: "INHERITANCE_CONTRACT_ID", Value: "CAINHERIT1"},
		}, state.entries)

		assert.Equal(t, workdir.entered, workdir.restored)
	})

	t.Run("funding is never attempted on mainnet", func(t *testing.T) {
		client := new(MockSorobanClient)
		workdir := &fakeWorkdir{dir: "/work/contracts"}
		state := &fakeStateRepo{}

		client.On("ResolveAddress", ctx, "ops").Return("GOPS", nil)
		client.On("Build", ctx).Return(nil)
		client.On("Optimize", ctx, mock.Anything).Return(nil)
		client.On("Deploy", ctx, mock.Anything, mock.Anything).Return("CAID", nil)
		client.On("Invoke", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", nil)

		uc := newOrchestrator(client, workdir, state)
		result, err := uc.Run(ctx, usecase.OrchestrateDeploymentParams{
			NetworkName:   "mainnet",
			AdminIdentity: "ops",
		})

		require.NoError(t, err)
		assert.False(t, result.Funding.Attempted)
		client.AssertNotCalled(t, "FundAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("funding failure does not abort a testnet run", func(t *testing.T) {
		client := new(MockSorobanClient)
		workdir := &fakeWorkdir{dir: "/work/contracts"}
		state := &fakeStateRepo{}

		client.On("ResolveAddress", ctx, "alice").Return("GADMIN", nil)
		client.On("FundAccount", ctx, "alice", domain.Testnet).Return(errors.New("already funded"))
		client.On("Build", ctx).Return(nil)
		client.On("Optimize", ctx, mock.Anything).Return(nil)
		client.On("Deploy", ctx, mock.Anything, mock.Anything).Return("CAID", nil)
		client.On("Invoke", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", nil)

		uc := newOrchestrator(client, workdir, state)
		result, err := uc.Run(ctx, usecase.OrchestrateDeploymentParams{
			NetworkName:   "testnet",
			AdminIdentity: "alice",
		})

		require.NoError(t, err)
		assert.True(t, result.Funding.Attempted)
		assert.EqualError(t, result.Funding.Err, "already funded")
		assert.Equal(t, 1, state.upserts)
	})

	t.Run("unknown network fails before any client call", func(t *testing.T) {
		client := new(MockSorobanClient)
		uc := newOrchestrator(client, &fakeWorkdir{dir: "/work/contracts"}, &fakeStateRepo{})

		_, err := uc.Run(ctx, usecase.OrchestrateDeploymentParams{
			NetworkName:   "futurenet",
			AdminIdentity: "alice",
		})

		var configErr *domain.ConfigurationError
		require.ErrorAs(t, err, &configErr)
		client.AssertNotCalled(t, "ResolveAddress", mock.Anything, mock.Anything)
	})

	t.Run("missing admin identity fails before any client call", func(t *testing.T) {
		client := new(MockSorobanClient)
		uc := newOrchestrator(client, &fakeWorkdir{dir: "/work/contracts"}, &fakeStateRepo{})

		_, err := uc.Run(ctx, usecase.OrchestrateDeploymentParams{
			NetworkName: "testnet",
		})

		var configErr *domain.ConfigurationError
		require.ErrorAs(t, err, &configErr)
		client.AssertNotCalled(t, "ResolveAddress", mock.Anything, mock.Anything)
	})

	t.Run("build failure aborts before any network submission", func(t *testing.T) {
		client := new(MockSorobanClient)
		workdir := &fakeWorkdir{dir: "/work/contracts"}
		state := &fakeStateRepo{}

		client.On("ResolveAddress", ctx, "alice").Return("GADMIN", nil)
		client.On("FundAccount", ctx, "alice", domain.Testnet).Return(nil)
		client.On("Build", ctx).Return(errors.New("cargo: compilation failed"))

		uc := newOrchestrator(client, workdir, state)
		_, err := uc.Run(ctx, usecase.OrchestrateDeploymentParams{
			NetworkName:   "testnet",
			AdminIdentity: "alice",
		})

		var buildErr *domain.BuildError
		require.ErrorAs(t, err, &buildErr)
		client.AssertNotCalled(t, "Deploy", mock.Anything, mock.Anything, mock.Anything)
		client.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		assert.Zero(t, state.upserts)
		assert.Equal(t, workdir.entered, workdir.restored)
	})

	t.Run("optimize failure names the package", func(t *testing.T) {
		client := new(MockSorobanClient)
		workdir := &fakeWorkdir{dir: "/work/contracts"}

		client.On("ResolveAddress", ctx, "alice").Return("GADMIN", nil)
		client.On("FundAccount", ctx, "alice", domain.Testnet).Return(nil)
		client.On("Build", ctx).Return(nil)
		client.On("Optimize", ctx, "target/wasm32-unknown-unknown/release/hello_world.wasm").Return(errors.New("bad wasm"))

		uc := newOrchestrator(client, workdir, &fakeStateRepo{})
		_, err := uc.Run(ctx, usecase.OrchestrateDeploymentParams{
			NetworkName:   "testnet",
			AdminIdentity: "alice",
		})

		var buildErr *domain.BuildError
		require.ErrorAs(t, err, &buildErr)
		assert.Equal(t, "hello-world", buildErr.Package)
		assert.Equal(t, workdir.entered, workdir.restored)
	})

	t.Run("first deployment failure skips the second deploy and initialize", func(t *testing.T) {
		client := new(MockSorobanClient)
		workdir := &fakeWorkdir{dir: "/work/contracts"}
		state := &fakeStateRepo{}

		client.On("ResolveAddress", ctx, "alice").Return("GADMIN", nil)
		client.On("FundAccount", ctx, "alice", domain.Testnet).Return(nil)
		client.On("Build", ctx).Return(nil)
		client.On("Optimize", ctx, mock.Anything).Return(nil)
		client.On("Deploy", ctx, mock.Anything, mock.Anything).Return("", errors.New("tx rejected")).Once()

		uc := newOrchestrator(client, workdir, state)
		_, err := uc.Run(ctx, usecase.OrchestrateDeploymentParams{
			NetworkName:   "testnet",
			AdminIdentity: "alice",
		})

		var deployErr *domain.DeploymentError
		require.ErrorAs(t, err, &deployErr)
		assert.Equal(t, "example", deployErr.Artifact)
		client.AssertNumberOfCalls(t, "Deploy", 1)
		client.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		assert.Zero(t, state.upserts)
	})

	t.Run("initialization failure aborts before persistence", func(t *testing.T) {
		client := new(MockSorobanClient)
		workdir := &fakeWorkdir{dir: "/work/contracts"}
		state := &fakeStateRepo{}

		client.On("ResolveAddress", ctx, "alice").Return("GADMIN", nil)
		client.On("FundAccount", ctx, "alice", domain.Testnet).Return(nil)
		client.On("Build", ctx).Return(nil)
		client.On("Optimize", ctx, mock.Anything).Return(nil)
		client.On("Deploy", ctx, mock.Anything, mock.Anything).Return("CAID", nil)
		client.On("Invoke", ctx, "CAID", "initialize_admin", mock.Anything, mock.Anything).
			Return("", errors.New("AdminAlreadySet"))

		uc := newOrchestrator(client, workdir, state)
		_, err := uc.Run(ctx, usecase.OrchestrateDeploymentParams{
			NetworkName:   "testnet",
			AdminIdentity: "alice",
		})

		var initErr *domain.InitializationError
		require.ErrorAs(t, err, &initErr)
		assert.Zero(t, state.upserts)
	})

	t.Run("dry run stops after the build stage", func(t *testing.T) {
		client := new(MockSorobanClient)
		workdir := &fakeWorkdir{dir: "/work/contracts"}
		state := &fakeStateRepo{}

		client.On("ResolveAddress", ctx, "alice").Return("GADMIN", nil)
		client.On("FundAccount", ctx, "alice", domain.Testnet).Return(nil)
		client.On("Build", ctx).Return(nil)
		client.On("Optimize", ctx, mock.Anything).Return(nil)

		uc := newOrchestrator(client, workdir, state)
		result, err := uc.Run(ctx, usecase.OrchestrateDeploymentParams{
			NetworkName:   "testnet",
			AdminIdentity: "alice",
			DryRun:        true,
		})

		require.NoError(t, err)
		assert.True(t, result.DryRun)
		assert.Empty(t, result.Contracts)
		client.AssertNotCalled(t, "Deploy", mock.Anything, mock.Anything, mock.Anything)
		assert.Zero(t, state.upserts)
	})

	t.Run("missing contracts directory is a configuration error", func(t *testing.T) {
		client := new(MockSorobanClient)
		workdir := &fakeWorkdir{pathErr: &domain.ConfigurationError{Reason: "contracts directory not found"}}

		client.On("ResolveAddress", ctx, "alice").Return("GADMIN", nil)
		client.On("FundAccount", ctx, "alice", domain.Testnet).Return(nil)

		uc := newOrchestrator(client, workdir, &fakeStateRepo{})
		_, err := uc.Run(ctx, usecase.OrchestrateDeploymentParams{
			NetworkName:   "testnet",
			AdminIdentity: "alice",
		})

		var configErr *domain.ConfigurationError
		require.ErrorAs(t, err, &configErr)
		client.AssertNotCalled(t, "Build", mock.Anything)
	})
}
