package cli

import (
	"github.com/spf13/cobra"

	"github.com/hereditas-labs/herd-cli/internal/cli/render"
	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List the supported network profiles",
		Long: `List the fixed network profile table: RPC endpoint, passphrase and
whether accounts on the network are friendbot-fundable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{})
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}
