package adapters

import (
	"github.com/google/wire"

	"github.com/mintdrop-org/mintdrop-cli/internal/adapters/chain"
	"github.com/mintdrop-org/mintdrop-cli/internal/adapters/fs"
	"github.com/mintdrop-org/mintdrop-cli/internal/adapters/interactive"
	"github.com/mintdrop-org/mintdrop-cli/internal/adapters/telegram"
	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

// ChainSet provides the Ethereum-backed implementations
var ChainSet = wire.NewSet(
	chain.NewClient,
	wire.Bind(new(usecase.ChainClient), new(*chain.Client)),
)

// TelegramSet provides the notification implementations
var TelegramSet = wire.NewSet(
	telegram.NewNotifierAdapter,
	wire.Bind(new(usecase.Notifier), new(*telegram.NotifierAdapter)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewCSVRecipientSource,
	wire.Bind(new(usecase.RecipientSource), new(*fs.CSVRecipientSource)),

	fs.NewRunReportWriter,
	wire.Bind(new(usecase.RunReportWriter), new(*fs.RunReportWriter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.RecipientSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ChainSet,
	TelegramSet,
	FSSet,
	InteractiveSet,
)
