package usecase

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/models"
)

// receiptTimeout bounds the wait for a single transaction receipt.
const receiptTimeout = 2 * time.Minute

var oneToken = big.NewInt(1)

// MintBatchParams contains parameters for minting a batch
type MintBatchParams struct {
	Recipients []models.Recipient
}

// Minter is the use case that mints one token per recipient, strictly
// sequentially, tracking the sender nonce locally.
type Minter struct {
	config   *config.RuntimeConfig
	chain    ChainClient
	notifier Notifier
	sink     ProgressSink
}

// NewMinter creates a new Minter use case
func NewMinter(cfg *config.RuntimeConfig, chain ChainClient, notifier Notifier, sink ProgressSink) *Minter {
	if sink == nil {
		sink = NopProgress{}
	}
	return &Minter{
		config:   cfg,
		chain:    chain,
		notifier: notifier,
		sink:     sink,
	}
}

// Run processes the batch in order. Per recipient: read the token balance,
// skip holders, otherwise mint with the locally tracked nonce and wait for
// the receipt. The nonce advances only when a transaction consumed its slot
// (confirmed success or confirmed revert), never on errors.
//
// When ctx is cancelled mid-batch the partial summary is returned together
// with the ctx error.
func (uc *Minter) Run(ctx context.Context, params MintBatchParams) (*models.RunSummary, error) {
	if err := uc.chain.Connect(ctx); err != nil {
		return nil, err
	}

	uc.notifier.Notify(ctx, "🚀 Starting NFT minting process...")

	nonce, err := uc.chain.PendingNonce(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get starting nonce: %w", err)
	}

	uc.sink.Info(fmt.Sprintf("Minting from address: %s", uc.chain.Sender()))
	uc.sink.Info(fmt.Sprintf("Starting nonce: %d", nonce))

	summary := &models.RunSummary{
		Contract:   uc.chain.Contract(),
		ChainID:    uc.chain.ChainID(),
		Sender:     uc.chain.Sender(),
		StartNonce: nonce,
		StartedAt:  time.Now(),
	}

	total := len(params.Recipients)
	for i, recipient := range params.Recipients {
		uc.sink.OnProgress(ctx, ProgressEvent{
			Stage:   "minting",
			Current: i + 1,
			Total:   total,
			Message: fmt.Sprintf("Processing %d/%d: %s", i+1, total, recipient.Address),
			Spinner: true,
		})

		outcome, consumed, err := uc.processRecipient(ctx, recipient, nonce)
		if err != nil {
			// Cancellation aborts the run without judging the in-flight
			// recipient; the transaction may still land.
			uc.finish(summary, nonce)
			return summary, err
		}
		if consumed {
			nonce++
		}

		summary.Outcomes = append(summary.Outcomes, outcome)
		summary.Processed++
		switch {
		case outcome.Success():
			summary.Succeeded++
		case outcome.Failed():
			summary.Failed++
		}

		uc.notify(ctx, outcome, summary, total)

		if i < total-1 {
			if err := uc.delay(ctx); err != nil {
				uc.finish(summary, nonce)
				return summary, err
			}
		}
	}

	uc.finish(summary, nonce)
	return summary, nil
}

// processRecipient runs the per-address procedure and classifies the result.
// consumed reports whether the nonce slot was used on chain. A non-nil error
// is returned only when the run context is done.
func (uc *Minter) processRecipient(ctx context.Context, recipient models.Recipient, nonce uint64) (models.MintOutcome, bool, error) {
	outcome := models.MintOutcome{Address: recipient.Address}

	balance, err := uc.chain.TokenBalance(ctx, recipient.Address)
	if err != nil {
		if ctx.Err() != nil {
			return outcome, false, ctx.Err()
		}
		uc.sink.Error(fmt.Sprintf("❌ Error during minting: %v", err))
		outcome.Kind = models.OutcomeFailed
		outcome.Reason = fmt.Sprintf("balance check failed: %v", err)
		return outcome, false, nil
	}

	if balance.Sign() > 0 {
		uc.sink.Info(fmt.Sprintf("⏭️ Skipping address %s - already has token", recipient.Address))
		if balance.Cmp(oneToken) == 0 {
			outcome.Kind = models.OutcomeAlreadyHeld
		} else {
			outcome.Kind = models.OutcomeAlreadyHeldMultiple
		}
		return outcome, false, nil
	}

	gasPrice, err := uc.chain.SuggestGasPrice(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return outcome, false, ctx.Err()
		}
		uc.sink.Error(fmt.Sprintf("❌ Error during minting: %v", err))
		outcome.Kind = models.OutcomeFailed
		outcome.Reason = fmt.Sprintf("gas price fetch failed: %v", err)
		return outcome, false, nil
	}

	txHash, err := uc.chain.SendMint(ctx, recipient.Address, nonce, gasPrice)
	if err != nil {
		if ctx.Err() != nil {
			return outcome, false, ctx.Err()
		}
		uc.sink.Error(fmt.Sprintf("❌ Error during minting: %v", err))
		outcome.Kind = models.OutcomeFailed
		outcome.Reason = fmt.Sprintf("broadcast failed: %v", err)
		return outcome, false, nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, receiptTimeout)
	receipt, err := uc.chain.WaitMined(waitCtx, txHash)
	cancel()
	if err != nil {
		if ctx.Err() != nil {
			return outcome, false, ctx.Err()
		}
		uc.sink.Error(fmt.Sprintf("❌ Error during minting: %v", err))
		outcome.Kind = models.OutcomeFailed
		outcome.Reason = fmt.Sprintf("receipt wait failed for %s: %v", txHash, err)
		return outcome, false, nil
	}

	if receipt.Reverted() {
		uc.sink.Error("❌ Transaction failed!")
		outcome.Kind = models.OutcomeFailed
		outcome.Reason = "transaction reverted"
		return outcome, true, nil
	}

	uc.sink.Info("✅ Mint successful!")
	outcome.Kind = models.OutcomeMinted
	outcome.TxHash = receipt.TxHash
	return outcome, true, nil
}

// notify sends the per-recipient status message. Tallies in the message
// reflect the outcome just recorded.
func (uc *Minter) notify(ctx context.Context, outcome models.MintOutcome, summary *models.RunSummary, total int) {
	var text string
	switch outcome.Kind {
	case models.OutcomeMinted:
		text = fmt.Sprintf("✅ Mint Successful!\nAddress: %s\nTX Hash: %s\nProgress: %d/%d successful\nFailed: %d",
			outcome.Address, outcome.TxHash, summary.Succeeded, total, summary.Failed)
	case models.OutcomeAlreadyHeld, models.OutcomeAlreadyHeldMultiple:
		text = fmt.Sprintf("⏭️ Skipping mint - Already has token\nAddress: %s\nProgress: %d/%d successful\nFailed: %d",
			outcome.Address, summary.Succeeded, total, summary.Failed)
	case models.OutcomeFailed:
		if outcome.Reason == "transaction reverted" {
			text = fmt.Sprintf("❌ Mint Failed!\nAddress: %s\nProgress: %d/%d successful\nFailed: %d",
				outcome.Address, summary.Succeeded, total, summary.Failed)
		} else {
			text = fmt.Sprintf("❌ Mint Error!\nAddress: %s\nError: %s\nProgress: %d/%d successful\nFailed: %d",
				outcome.Address, outcome.Reason, summary.Succeeded, total, summary.Failed)
		}
	}
	uc.notifier.Notify(ctx, text)
}

// delay pauses between consecutive recipients.
func (uc *Minter) delay(ctx context.Context) error {
	d := uc.config.Drop.TxDelay
	if d <= 0 {
		return nil
	}
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "waiting",
		Message: fmt.Sprintf("Waiting %s before next transaction...", d),
		Spinner: true,
	})
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (uc *Minter) finish(summary *models.RunSummary, nonce uint64) {
	summary.EndNonce = nonce
	summary.FinishedAt = time.Now()
}
