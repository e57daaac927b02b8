package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/mintdrop-org/mintdrop-cli/internal/cli/render"
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/models"
	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

// NewRunCmd creates the run command
func NewRunCmd() *cobra.Command {
	var (
		pick bool
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Mint one token to every qualified recipient",
		Long: `Run the drop: read the recipients CSV, qualify rows by score, and mint one
token per qualified address that does not already hold one.

Recipients are processed strictly in file order. The sender nonce is tracked
locally and only advanced when a transaction actually consumed its slot, so
a failed broadcast never burns a nonce. Between transactions the run pauses
for the configured delay.

Every outcome is posted to the configured Telegram chat, and a YAML report
is stored under .mintdrop/runs/ when the run processed at least one address.`,
		Example: `  # Run the drop with the configured CSV
  mintdrop run

  # Run against a different CSV
  mintdrop run --csv season2.csv

  # Choose a subset of qualified recipients first
  mintdrop run --pick

  # Skip the confirmation prompt
  mintdrop run --yes`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			interactive := !app.Config.NonInteractive

			var recipients []models.Recipient
			if interactive {
				// Load up front so the operator can confirm before any
				// broadcast. A load failure falls through to the driver,
				// which reports it like an empty qualification result.
				if listResult, lerr := app.ListRecipients.Run(cmd.Context()); lerr == nil {
					recipients = listResult.Load.Recipients
					if len(recipients) > 0 {
						if pick {
							recipients, err = SelectRecipients(recipients, "Select recipients to mint to")
							if err != nil {
								return err
							}
						}
						if !yes {
							label := fmt.Sprintf("Mint to %d address(es) via %s", len(recipients), app.Config.Drop.Contract)
							if !confirmPrompt(label) {
								return fmt.Errorf("drop cancelled")
							}
						}
					}
				}
			} else if pick {
				return fmt.Errorf("--pick requires interactive mode")
			}

			result, err := app.RunDrop.Run(cmd.Context(), usecase.RunDropParams{Recipients: recipients})
			if err != nil {
				return err
			}

			renderer := render.NewRunRenderer(cmd.OutOrStdout())
			if err := renderer.RenderRun(result); err != nil {
				return err
			}

			// Non-zero exit on orchestrator-level failure
			return result.Err
		},
	}

	cmd.Flags().String("csv", "", "Recipients CSV file (overrides mintdrop.toml)")
	cmd.Flags().BoolVar(&pick, "pick", false, "Interactively choose a subset of qualified recipients")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// confirmPrompt asks the user a yes/no question and returns their choice.
func confirmPrompt(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	return err == nil
}
