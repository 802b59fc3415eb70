package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/hereditas-labs/herd-cli/internal/domain"
)

// ResolveIdentityParams contains parameters for identity resolution
type ResolveIdentityParams struct {
	Identity string
	Network  domain.NetworkName
}

// FundingOutcome records the best-effort funding attempt. It is a value, not
// an error return: funding failures are logged and discarded because funding
// is an idempotent convenience, never a correctness requirement.
type FundingOutcome struct {
	Attempted bool
	Err       error
}

// ResolveIdentityResult contains the result of identity resolution
type ResolveIdentityResult struct {
	Identity domain.ResolvedIdentity
	Funding  FundingOutcome
}

// ResolveIdentity is a use case that derives the admin address for a named
// identity and, on fundable networks, tops up its account.
type ResolveIdentity struct {
	client SorobanClient
	log    *slog.Logger
}

// NewResolveIdentity creates a new ResolveIdentity use case
func NewResolveIdentity(client SorobanClient, log *slog.Logger) *ResolveIdentity {
	return &ResolveIdentity{
		client: client,
		log:    log.With("component", "ResolveIdentity"),
	}
}

// Run executes the use case
func (uc *ResolveIdentity) Run(ctx context.Context, params ResolveIdentityParams) (*ResolveIdentityResult, error) {
	raw, err := uc.client.ResolveAddress(ctx, params.Identity)
	if err != nil {
		return nil, &domain.IdentityResolutionError{Identity: params.Identity, Err: err}
	}

	// CLI output carries incidental whitespace
	address := strings.TrimSpace(raw)
	if address == "" {
		return nil, &domain.IdentityResolutionError{Identity: params.Identity, Err: errEmptyAddress}
	}

	result := &ResolveIdentityResult{
		Identity: domain.ResolvedIdentity{Identity: params.Identity, Address: address},
	}

	if params.Network.FundingEligible() {
		result.Funding.Attempted = true
		if err := uc.client.FundAccount(ctx, params.Identity, params.Network); err != nil {
			// Already funded, rate limited, network hiccup: all fine.
			result.Funding.Err = err
			uc.log.Warn("funding attempt failed, continuing", "identity", params.Identity, "error", err)
		} else {
			uc.log.Debug("funding requested", "identity", params.Identity, "network", params.Network)
		}
	}

	return result, nil
}

var errEmptyAddress = errors.New("toolchain returned an empty address")
