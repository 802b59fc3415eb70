package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

// StateRenderer renders persisted deployment state
type StateRenderer struct {
	out io.Writer
}

// NewStateRenderer creates a new state renderer
func NewStateRenderer(out io.Writer) *StateRenderer {
	return &StateRenderer{out: out}
}

// Render renders the persisted state entries
func (r *StateRenderer) Render(result *usecase.ShowStateResult) error {
	if len(result.Entries) == 0 {
		fmt.Fprintf(r.out, "No deployments recorded in %s\n", result.Path)
		return nil
	}

	fmt.Fprintf(r.out, "Deployment state (%s):\n\n", result.Path)
	for _, entry := range result.Entries {
		fmt.Fprintf(r.out, "  %s = %s\n", color.CyanString(entry.Key), entry.Value)
	}

	return nil
}

var _ Renderer[*usecase.ShowStateResult] = (*StateRenderer)(nil)
