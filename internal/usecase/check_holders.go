package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain"
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/models"
)

// CheckHoldersParams contains parameters for the holder check
type CheckHoldersParams struct {
	// Address checks a single ad-hoc address instead of the recipients file
	Address string

	// Pick interactively selects one recipient from the qualified list
	Pick bool
}

// HolderCheck is the read-only classification for one address
type HolderCheck struct {
	Recipient models.Recipient
	Balance   uint64
	Err       string
}

// WouldMint reports whether a drop run would mint to this address.
func (h HolderCheck) WouldMint() bool {
	return h.Err == "" && h.Balance == 0
}

// CheckHoldersResult contains the result of the holder check
type CheckHoldersResult struct {
	Checks []HolderCheck

	// AdHoc is set when the checked address did not come from the
	// recipients file, so no score is attached.
	AdHoc bool
}

// CheckHolders is the read-only use case reporting current token balances
// for drop recipients. It never broadcasts a transaction.
type CheckHolders struct {
	config   *config.RuntimeConfig
	chain    ChainClient
	source   RecipientSource
	selector RecipientSelector
	sink     ProgressSink
}

// NewCheckHolders creates a new CheckHolders use case
func NewCheckHolders(
	cfg *config.RuntimeConfig,
	chain ChainClient,
	source RecipientSource,
	selector RecipientSelector,
	sink ProgressSink,
) *CheckHolders {
	return &CheckHolders{
		config:   cfg,
		chain:    chain,
		source:   source,
		selector: selector,
		sink:     sink,
	}
}

// Run connects to the chain and reads balanceOf for the selected addresses.
func (uc *CheckHolders) Run(ctx context.Context, params CheckHoldersParams) (*CheckHoldersResult, error) {
	if err := uc.chain.Connect(ctx); err != nil {
		return nil, err
	}

	recipients, adHoc, err := uc.resolveTargets(ctx, params)
	if err != nil {
		return nil, err
	}

	result := &CheckHoldersResult{AdHoc: adHoc}
	total := len(recipients)
	for i, recipient := range recipients {
		uc.sink.OnProgress(ctx, ProgressEvent{
			Stage:   "checking",
			Current: i + 1,
			Total:   total,
			Message: fmt.Sprintf("Checking %d/%d: %s", i+1, total, recipient.Address),
			Spinner: true,
		})

		check := HolderCheck{Recipient: recipient}
		balance, err := uc.chain.TokenBalance(ctx, recipient.Address)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			check.Err = err.Error()
		} else {
			check.Balance = balance.Uint64()
		}
		result.Checks = append(result.Checks, check)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: total,
		Total:   total,
		Message: "Balances checked",
	})

	return result, nil
}

// resolveTargets decides which addresses to check.
func (uc *CheckHolders) resolveTargets(ctx context.Context, params CheckHoldersParams) ([]models.Recipient, bool, error) {
	if params.Address != "" {
		if !common.IsHexAddress(params.Address) {
			return nil, false, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, params.Address)
		}
		addr := common.HexToAddress(params.Address).Hex()
		return []models.Recipient{{Address: addr}}, true, nil
	}

	load, err := uc.source.LoadQualified(ctx)
	if err != nil {
		return nil, false, err
	}

	if params.Pick {
		picked, err := uc.selector.SelectRecipient(ctx, load.Recipients, "Select recipient to check")
		if err != nil {
			return nil, false, err
		}
		return []models.Recipient{*picked}, false, nil
	}

	return load.Recipients, false, nil
}
