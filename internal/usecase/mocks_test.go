package usecase_test

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/models"
	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

// Checksummed fixture addresses.
const (
	senderAddr   = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
	contractAddr = "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB"
	recipientA   = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	recipientB   = "0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb"
)

// MockChainClient is a mock implementation of ChainClient
type MockChainClient struct {
	mock.Mock
}

func (m *MockChainClient) Connect(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockChainClient) ChainID() uint64 {
	args := m.Called()
	return args.Get(0).(uint64)
}

func (m *MockChainClient) Sender() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockChainClient) Contract() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockChainClient) PendingNonce(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockChainClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainClient) TokenBalance(ctx context.Context, owner string) (*big.Int, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainClient) SendMint(ctx context.Context, recipient string, nonce uint64, gasPrice *big.Int) (string, error) {
	args := m.Called(ctx, recipient, nonce, gasPrice)
	return args.String(0), args.Error(1)
}

func (m *MockChainClient) WaitMined(ctx context.Context, txHash string) (*models.MintReceipt, error) {
	args := m.Called(ctx, txHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MintReceipt), args.Error(1)
}

// MockRecipientSource is a mock implementation of RecipientSource
type MockRecipientSource struct {
	mock.Mock
}

func (m *MockRecipientSource) LoadQualified(ctx context.Context) (*usecase.RecipientLoadResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.RecipientLoadResult), args.Error(1)
}

// MockReportWriter is a mock implementation of RunReportWriter
type MockReportWriter struct {
	mock.Mock
}

func (m *MockReportWriter) Write(ctx context.Context, summary *models.RunSummary) (string, error) {
	args := m.Called(ctx, summary)
	return args.String(0), args.Error(1)
}

// MockRecipientSelector is a mock implementation of RecipientSelector
type MockRecipientSelector struct {
	mock.Mock
}

func (m *MockRecipientSelector) SelectRecipient(ctx context.Context, recipients []models.Recipient, prompt string) (*models.Recipient, error) {
	args := m.Called(ctx, recipients, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipient), args.Error(1)
}

// recorderNotifier captures every message in order
type recorderNotifier struct {
	messages []string
}

func (r *recorderNotifier) Notify(ctx context.Context, text string) {
	r.messages = append(r.messages, text)
}

// recorderSink captures progress events and log lines
type recorderSink struct {
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (r *recorderSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.events = append(r.events, event)
}

func (r *recorderSink) Info(message string) {
	r.infos = append(r.infos, message)
}

func (r *recorderSink) Error(message string) {
	r.errors = append(r.errors, message)
}

// stageCount counts events in the given stage.
func (r *recorderSink) stageCount(stage string) int {
	n := 0
	for _, e := range r.events {
		if e.Stage == stage {
			n++
		}
	}
	return n
}

// testConfig returns a runtime config with no delay between recipients.
func testConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		ProjectRoot: ".",
		Drop: &config.DropConfig{
			Contract:       contractAddr,
			RecipientsFile: "addresses.csv",
			MinScore:       35,
			GasLimit:       300000,
		},
	}
}

// connectedChain returns a chain mock with the identity calls every run makes.
func connectedChain(startNonce uint64) *MockChainClient {
	chain := new(MockChainClient)
	chain.On("Connect", mock.Anything).Return(nil)
	chain.On("ChainID").Return(uint64(84532))
	chain.On("Sender").Return(senderAddr)
	chain.On("Contract").Return(contractAddr)
	chain.On("PendingNonce", mock.Anything).Return(startNonce, nil)
	return chain
}
