package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mintdrop-org/mintdrop-cli/internal/adapters/progress"
	"github.com/mintdrop-org/mintdrop-cli/internal/app"
	"github.com/mintdrop-org/mintdrop-cli/internal/config"
	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mintdrop",
		Short: "Batch ERC-721 drop runner",
		Long: `Mintdrop mints one token to every qualified address from a scored CSV,
strictly sequentially, skipping addresses that already hold a token and
posting progress to Telegram.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Find project root; the drop can also be configured entirely
			// through the environment, so a missing mintdrop.toml is fine.
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				projectRoot = "."
			}

			// Set up viper
			v := config.SetupViper(projectRoot, cmd)

			// Bind global flags that have been set
			bindGlobalFlags(v, cmd)

			// Progress goes to a spinner unless prompts are disabled
			var sink usecase.ProgressSink = progress.NewSpinnerSink()
			if v.GetBool("non_interactive") {
				sink = progress.NewNopSink()
			}

			// Initialize app with DI
			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort the command after this duration (0 = no timeout)")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "drop",
		Title: "Drop Commands",
	})

	runCmd := NewRunCmd()
	runCmd.GroupID = "drop"
	rootCmd.AddCommand(runCmd)

	checkCmd := NewCheckCmd()
	checkCmd.GroupID = "drop"
	rootCmd.AddCommand(checkCmd)

	recipientsCmd := NewRecipientsCmd()
	recipientsCmd.GroupID = "drop"
	rootCmd.AddCommand(recipientsCmd)

	// Version command
	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that exist and have been changed
	if f := cmd.Flag("debug"); f != nil && f.Changed {
		v.Set("debug", f.Value.String())
	}
	if f := cmd.Flag("non-interactive"); f != nil && f.Changed {
		v.Set("non_interactive", f.Value.String())
	}
	if f := cmd.Flag("timeout"); f != nil && f.Changed {
		v.Set("timeout", f.Value.String())
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
