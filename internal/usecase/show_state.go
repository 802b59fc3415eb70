package usecase

import (
	"context"

	"github.com/hereditas-labs/herd-cli/internal/domain"
)

// ShowStateParams contains parameters for showing persisted state
type ShowStateParams struct {
	// Keys filters the output to the given keys; empty means everything.
	Keys []string
}

// ShowStateResult contains the persisted deployment state
type ShowStateResult struct {
	Path    string
	Entries []domain.StateEntry
}

// ShowState is a use case that reads the persisted contract IDs so companion
// tooling and operators can see what a previous run deployed.
type ShowState struct {
	state StateRepository
}

// NewShowState creates a new ShowState use case
func NewShowState(state StateRepository) *ShowState {
	return &ShowState{
		state: state,
	}
}

// Run executes the use case
func (uc *ShowState) Run(ctx context.Context, params ShowStateParams) (*ShowStateResult, error) {
	entries, err := uc.state.Load(ctx)
	if err != nil {
		return nil, err
	}

	if len(params.Keys) > 0 {
		wanted := make(map[string]bool, len(params.Keys))
		for _, key := range params.Keys {
			wanted[key] = true
		}
		filtered := entries[:0]
		for _, entry := range entries {
			if wanted[entry.Key] {
				filtered = append(filtered, entry)
			}
		}
		entries = filtered
	}

	return &ShowStateResult{
		Path:    uc.state.Path(),
		Entries: entries,
	}, nil
}
