package cli

import (
	"github.com/spf13/cobra"

	"github.com/mintdrop-org/mintdrop-cli/internal/cli/render"
)

// NewRecipientsCmd creates the recipients command
func NewRecipientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recipients",
		Aliases: []string{"ls"},
		Short:   "List qualified recipients from the CSV",
		Long: `Show the qualification filter's view of the recipients file: every row that
qualifies (score at or above the threshold, valid address) in file order with
checksummed addresses, plus counts of the rows that were dropped.`,
		Example: `  # List qualified recipients
  mintdrop recipients

  # List recipients from another file
  mintdrop recipients --csv season2.csv`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListRecipients.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewRecipientsRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().String("csv", "", "Recipients CSV file (overrides mintdrop.toml)")

	return cmd
}
