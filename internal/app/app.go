package app

import (
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	RunDrop        *usecase.RunDrop
	CheckHolders   *usecase.CheckHolders
	ListRecipients *usecase.ListRecipients
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	runDrop *usecase.RunDrop,
	checkHolders *usecase.CheckHolders,
	listRecipients *usecase.ListRecipients,
) (*App, error) {
	return &App{
		Config:         cfg,
		RunDrop:        runDrop,
		CheckHolders:   checkHolders,
		ListRecipients: listRecipients,
	}, nil
}
