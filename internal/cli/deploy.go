package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/hereditas-labs/herd-cli/internal/cli/render"
	"github.com/hereditas-labs/herd-cli/internal/domain"
	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var (
		admin  string
		dryRun bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Build, deploy and initialize the contract suite",
		Long: `Deploy the example and inheritance contracts to the selected network.

The pipeline is strictly sequential and fail-fast:
1. Resolve the network profile and the admin identity's address
2. Request friendbot funding on test networks (best effort)
3. Build and size-optimize both contract packages
4. Deploy the example contract, then the inheritance contract
5. Call initialize_admin on the inheritance contract
6. Record both contract IDs in the local state file

Examples:
  # Deploy to testnet
  herd deploy --admin alice

  # Deploy to mainnet without the confirmation prompt
  herd deploy --network mainnet --admin ops --yes

  # Build only, skip all network calls
  herd deploy --admin alice --dry-run`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if domain.NetworkName(app.Config.Network) == domain.Mainnet && !dryRun && !yes {
				if app.Config.NonInteractive {
					return fmt.Errorf("deploying to mainnet requires --yes in non-interactive mode")
				}
				if err := confirmMainnet(); err != nil {
					return err
				}
			}

			if admin == "" {
				admin = app.Config.AdminIdentity
			}

			params := usecase.OrchestrateDeploymentParams{
				NetworkName:   app.Config.Network,
				AdminIdentity: admin,
				DryRun:        dryRun || app.Config.DryRun,
			}
			result, err := app.OrchestrateDeployment.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewDeployRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVarP(&admin, "admin", "a", "", "Admin identity the contracts are deployed and initialized with (required unless HERD_ADMIN is set)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Build and optimize only, make no network calls")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the mainnet confirmation prompt")

	return cmd
}

func confirmMainnet() error {
	color.New(color.FgYellow, color.Bold).Println("⚠ You are about to deploy to mainnet.")
	prompt := promptui.Prompt{
		Label:     "Continue",
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		return fmt.Errorf("deployment cancelled")
	}
	return nil
}
