package cli

import (
	"github.com/spf13/cobra"

	"github.com/mintdrop-org/mintdrop-cli/internal/cli/render"
	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "check [address]",
		Short: "Report token balances for qualified recipients",
		Long: `Read-only pass over the drop contract: report the current token balance and
the would-mint classification for every qualified recipient, or for a single
address given as argument. No transaction is ever sent.`,
		Example: `  # Check all qualified recipients
  mintdrop check

  # Check one address
  mintdrop check 0x8ba1f109551bD432803012645Ac136ddd64DBA72

  # Pick one recipient interactively
  mintdrop check --pick`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.CheckHoldersParams{Pick: pick}
			if len(args) == 1 {
				params.Address = args[0]
			}

			result, err := app.CheckHolders.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewCheckRenderer(cmd.OutOrStdout())
			return renderer.RenderChecks(result)
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "Interactively pick one recipient to check")

	return cmd
}
