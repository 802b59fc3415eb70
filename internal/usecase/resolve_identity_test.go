package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hereditas-labs/herd-cli/internal/domain"
	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

func TestResolveIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("trims incidental formatting from the address", func(t *testing.T) {
		client := new(MockSorobanClient)
		client.On("ResolveAddress", ctx, "alice").Return("  GABC123\n", nil)

		uc := usecase.NewResolveIdentity(client, testLogger())
		result, err := uc.Run(ctx, usecase.ResolveIdentityParams{Identity: "alice", Network: domain.Mainnet})

		require.NoError(t, err)
		assert.Equal(t, "GABC123", result.Identity.Address)
		assert.Equal(t, "alice", result.Identity.Identity)
		assert.False(t, result.Funding.Attempted)
	})

	t.Run("unknown identity", func(t *testing.T) {
		client := new(MockSorobanClient)
		client.On("ResolveAddress", ctx, "ghost").Return("", errors.New("no such identity"))

		uc := usecase.NewResolveIdentity(client, testLogger())
		_, err := uc.Run(ctx, usecase.ResolveIdentityParams{Identity: "ghost", Network: domain.Testnet})

		var resErr *domain.IdentityResolutionError
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, "ghost", resErr.Identity)
		assert.Contains(t, err.Error(), "stellar keys generate ghost")
	})

	t.Run("empty address is a resolution error", func(t *testing.T) {
		client := new(MockSorobanClient)
		client.On("ResolveAddress", ctx, "alice").Return("\n", nil)

		uc := usecase.NewResolveIdentity(client, testLogger())
		_, err := uc.Run(ctx, usecase.ResolveIdentityParams{Identity: "alice", Network: domain.Testnet})

		var resErr *domain.IdentityResolutionError
		require.ErrorAs(t, err, &resErr)
	})

	t.Run("funding eligibility per network", func(t *testing.T) {
		tests := []struct {
			network  domain.NetworkName
			attempts bool
		}{
			{domain.Testnet, true},
			{domain.Futurenet, true},
			{domain.Mainnet, false},
		}

		for _, tt := range tests {
			t.Run(string(tt.network), func(t *testing.T) {
				client := new(MockSorobanClient)
				client.On("ResolveAddress", ctx, "alice").Return("GABC", nil)
				if tt.attempts {
					client.On("FundAccount", ctx, "alice", tt.network).Return(nil)
				}

				uc := usecase.NewResolveIdentity(client, testLogger())
				result, err := uc.Run(ctx, usecase.ResolveIdentityParams{Identity: "alice", Network: tt.network})

				require.NoError(t, err)
				assert.Equal(t, tt.attempts, result.Funding.Attempted)
				if !tt.attempts {
					client.AssertNotCalled(t, "FundAccount", mock.Anything, mock.Anything, mock.Anything)
				}
			})
		}
	})
}
