package usecase

import (
	"context"

	"github.com/hereditas-labs/herd-cli/internal/domain"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Currently no parameters, but we keep the struct for future extensibility
}

// NetworkStatus describes one deployable network profile.
type NetworkStatus struct {
	Profile         domain.NetworkProfile
	FundingEligible bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// ListNetworks is a use case for listing the supported network profiles
type ListNetworks struct {
	resolver NetworkResolver
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	profiles := uc.resolver.Supported()

	networks := make([]NetworkStatus, 0, len(profiles))
	for _, profile := range profiles {
		networks = append(networks, NetworkStatus{
			Profile:         profile,
			FundingEligible: profile.Name.FundingEligible(),
		})
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
