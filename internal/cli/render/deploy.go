package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

// DeployRenderer renders deployment results
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// Render renders the outcome of a deployment run
func (r *DeployRenderer) Render(result *usecase.OrchestrateDeploymentResult) error {
	fmt.Fprintln(r.out)

	if result.DryRun {
		color.New(color.FgYellow, color.Bold).Fprintln(r.out, "Dry run completed: contracts built and optimized, nothing deployed")
	} else {
		color.New(color.FgGreen, color.Bold).Fprintln(r.out, "✓ Deployment completed")
	}

	fmt.Fprintf(r.out, "  Network: %s (%s)\n", result.Request.Network.Name, result.Request.Network.RPCURL)
	fmt.Fprintf(r.out, "  Admin:   %s (%s)\n", result.Admin.Identity, result.Admin.Address)
	if result.Funding.Attempted {
		if result.Funding.Err != nil {
			fmt.Fprintf(r.out, "  Funding: attempted, not needed or unavailable (%v)\n", result.Funding.Err)
		} else {
			fmt.Fprintln(r.out, "  Funding: requested")
		}
	}

	if len(result.Contracts) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Contract", "Package", "Contract ID"})
		for _, deployed := range result.Contracts {
			t.AppendRow(table.Row{deployed.Artifact.Name, deployed.Artifact.Package, deployed.ContractID})
		}
		fmt.Fprintln(r.out)
		t.Render()
		fmt.Fprintf(r.out, "\nContract IDs saved to %s\n", result.StatePath)
	}

	return nil
}

var _ Renderer[*usecase.OrchestrateDeploymentResult] = (*DeployRenderer)(nil)
