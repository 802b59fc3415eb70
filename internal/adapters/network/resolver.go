package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"github.com/hereditas-labs/herd-cli/internal/domain"
	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

// Resolver maps network names to their fixed profiles. No network I/O:
// unsupported names are a configuration error, not a default.
type Resolver struct {
	profiles map[domain.NetworkName]domain.NetworkProfile
}

// NewResolver creates a resolver holding the supported profile table.
func NewResolver() *Resolver {
	r := &Resolver{
		profiles: make(map[domain.NetworkName]domain.NetworkProfile),
	}

	// Exactly one profile per supported name. Futurenet deliberately has no
	// entry here: it exists only for the funding-eligibility check.
	for _, profile := range []domain.NetworkProfile{
		{
			Name:       domain.Testnet,
			RPCURL:     "https://soroban-testnet.stellar.org",
			Passphrase: "Test SDF Network ; September 2015",
		},
		{
			Name:       domain.Mainnet,
			RPCURL:     "https://soroban-rpc.mainnet.stellar.gateway.fm",
			Passphrase: "Public Global Stellar Network ; September 2015",
		},
	} {
		r.profiles[profile.Name] = profile
	}

	return r
}

// Resolve returns the profile for a network name.
func (r *Resolver) Resolve(name string) (domain.NetworkProfile, error) {
	profile, ok := r.profiles[domain.NetworkName(name)]
	if !ok {
		supported := lo.Map(r.Supported(), func(p domain.NetworkProfile, _ int) string {
			return string(p.Name)
		})
		reason := fmt.Sprintf("unknown network %q (supported: %s)", name, strings.Join(supported, ", "))
		if matches := fuzzy.Find(name, supported); len(matches) > 0 {
			reason += fmt.Sprintf(", did you mean %q?", matches[0].Str)
		}
		return domain.NetworkProfile{}, &domain.ConfigurationError{Reason: reason}
	}
	return profile, nil
}

// Supported returns the deployable profiles in stable name order.
func (r *Resolver) Supported() []domain.NetworkProfile {
	profiles := lo.Values(r.profiles)
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Name < profiles[j].Name
	})
	return profiles
}

var _ usecase.NetworkResolver = (*Resolver)(nil)
