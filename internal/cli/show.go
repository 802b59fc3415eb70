package cli

import (
	"github.com/spf13/cobra"

	"github.com/hereditas-labs/herd-cli/internal/cli/render"
	"github.com/hereditas-labs/herd-cli/internal/domain"
	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show contract IDs from previous deployments",
		Long: `Show the contract IDs persisted by previous runs. By default only the
deployment keys are shown; --all includes every entry of the state file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ShowStateParams{}
			if !all {
				params.Keys = deploymentKeys()
			}

			result, err := app.ShowState.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewStateRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show every entry of the state file, not just deployment keys")

	return cmd
}

// deploymentKeys returns the state keys this tool owns.
func deploymentKeys() []string {
	artifacts := domain.Artifacts()
	keys := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		keys = append(keys, artifact.StateKey)
	}
	return keys
}
