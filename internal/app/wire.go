//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/mintdrop-org/mintdrop-cli/internal/adapters"
	"github.com/mintdrop-org/mintdrop-cli/internal/config"
	"github.com/mintdrop-org/mintdrop-cli/internal/logging"
	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewMinter,
		usecase.NewRunDrop,
		usecase.NewCheckHolders,
		usecase.NewListRecipients,

		// App
		NewApp,
	)
	return nil, nil
}
