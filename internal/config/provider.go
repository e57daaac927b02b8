package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			// Not an error: the whole drop can be configured through the
			// environment. Fall back to the working directory.
			projectRoot, err = os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to resolve project root: %w", err)
			}
		}
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, ".mintdrop"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
	}

	dropfile, err := loadDropfile(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load drop config: %w", err)
	}
	cfg.Drop = dropfile.Drop
	cfg.Network = dropfile.Network
	cfg.Sender = dropfile.Sender
	cfg.Telegram = dropfile.Telegram

	// Flag overrides
	if csv := v.GetString("csv"); csv != "" {
		cfg.Drop.RecipientsFile = csv
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find mintdrop.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		dropfile := filepath.Join(dir, "mintdrop.toml")
		if _, err := os.Stat(dropfile); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding mintdrop.toml
			return "", fmt.Errorf("not in a mintdrop project (mintdrop.toml not found)")
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".mintdrop"))

	// Set up environment variables
	v.SetEnvPrefix("MINTDROP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "0")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		err := v.BindPFlag(f.Name, f)
		if err != nil {
			panic(err)
		}
	})

	return v
}
