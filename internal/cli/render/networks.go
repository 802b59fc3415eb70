package render

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// Render renders the supported network profile table
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Network", "RPC URL", "Passphrase", "Fundable"})

	for _, network := range result.Networks {
		fundable := ""
		if network.FundingEligible {
			fundable = "✓"
		}
		t.AppendRow(table.Row{
			network.Profile.Name,
			network.Profile.RPCURL,
			network.Profile.Passphrase,
			fundable,
		})
	}

	t.Render()
	return nil
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
