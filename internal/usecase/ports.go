package usecase

import (
	"context"
	"math/big"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/models"
)

// ChainClient is the boundary to the Ethereum node and the minting account.
// Implementations must not touch the network before Connect.
type ChainClient interface {
	// Connect validates the chain configuration, dials the RPC endpoint,
	// verifies the chain ID and prepares the signing account.
	Connect(ctx context.Context) error

	// ChainID returns the connected chain's ID.
	ChainID() uint64

	// Sender returns the checksummed address of the minting account.
	Sender() string

	// Contract returns the checksummed address of the drop contract.
	Contract() string

	// PendingNonce returns the sender's nonce including pending transactions.
	PendingNonce(ctx context.Context) (uint64, error)

	// SuggestGasPrice returns the node's current gas price estimate.
	SuggestGasPrice(ctx context.Context) (*big.Int, error)

	// TokenBalance returns balanceOf(owner) on the drop contract.
	TokenBalance(ctx context.Context, owner string) (*big.Int, error)

	// SendMint signs and broadcasts safeMint(recipient) with the given nonce
	// and gas price, returning the transaction hash.
	SendMint(ctx context.Context, recipient string, nonce uint64, gasPrice *big.Int) (string, error)

	// WaitMined polls for the transaction receipt until found or ctx expires.
	WaitMined(ctx context.Context, txHash string) (*models.MintReceipt, error)
}

// Notifier delivers best-effort status messages to the operator channel.
// Sends must never fail the caller; implementations log delivery problems.
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// RecipientSource loads and qualifies drop recipients
type RecipientSource interface {
	LoadQualified(ctx context.Context) (*RecipientLoadResult, error)
}

// RecipientLoadResult is the qualification filter's view of the source file
type RecipientLoadResult struct {
	// Recipients are the qualified rows in source order, duplicates kept
	Recipients []models.Recipient

	// Source is the path that was read
	Source string

	// TotalRows counts the data rows inspected (header excluded)
	TotalRows int

	// SkippedScore counts rows dropped for a low or unparseable score
	SkippedScore int

	// SkippedAddress counts rows dropped for an invalid address
	SkippedAddress int
}

// RunReportWriter persists a run summary artifact
type RunReportWriter interface {
	// Write stores the summary and returns the artifact path.
	Write(ctx context.Context, summary *models.RunSummary) (string, error)
}

// RecipientSelector handles interactive recipient selection
type RecipientSelector interface {
	SelectRecipient(ctx context.Context, recipients []models.Recipient, prompt string) (*models.Recipient, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
