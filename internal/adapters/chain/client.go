package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain"
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
	"github.com/mintdrop-org/mintdrop-cli/internal/domain/models"
	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
)

// receiptPollInterval is the pause between receipt lookups in WaitMined.
const receiptPollInterval = 2 * time.Second

// Client implements the ChainClient interface using ethclient
type Client struct {
	config *config.RuntimeConfig
	log    *slog.Logger
	token  *DropToken

	client   *ethclient.Client
	chainID  *big.Int
	key      *ecdsa.PrivateKey
	sender   common.Address
	contract common.Address
}

// NewClient creates a new chain client. No network traffic happens until
// Connect.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) (*Client, error) {
	token, err := NewDropToken()
	if err != nil {
		return nil, err
	}
	return &Client{
		config: cfg,
		log:    log,
		token:  token,
	}, nil
}

// Connect validates the chain configuration, dials the RPC endpoint and
// prepares the signing account. Calling it again on a connected client is a
// no-op.
func (c *Client) Connect(ctx context.Context) error {
	if c.client != nil {
		return nil
	}

	if c.config.Network == nil || c.config.Network.RPCURL == "" {
		return domain.ErrMissingRPC
	}
	if c.config.Sender == nil || c.config.Sender.PrivateKey == "" {
		return domain.ErrMissingPrivateKey
	}
	if c.config.Drop == nil || c.config.Drop.Contract == "" {
		return domain.ErrMissingContract
	}
	if !common.IsHexAddress(c.config.Drop.Contract) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAddress, c.config.Drop.Contract)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(c.config.Sender.PrivateKey, "0x"))
	if err != nil {
		return fmt.Errorf("invalid sender private key: %w", err)
	}

	client, err := ethclient.DialContext(ctx, c.config.Network.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return fmt.Errorf("failed to get chain ID: %w", err)
	}
	if want := c.config.Network.ChainID; want != 0 && chainID.Uint64() != want {
		client.Close()
		return fmt.Errorf("%w: expected %d, got %d", domain.ErrChainIDMismatch, want, chainID.Uint64())
	}

	c.client = client
	c.chainID = chainID
	c.key = key
	c.sender = crypto.PubkeyToAddress(key.PublicKey)
	c.contract = common.HexToAddress(c.config.Drop.Contract)

	c.log.Debug("connected to chain",
		"chainID", chainID.Uint64(),
		"sender", c.sender.Hex(),
		"contract", c.contract.Hex())

	return nil
}

// ChainID returns the connected chain's ID.
func (c *Client) ChainID() uint64 {
	if c.chainID == nil {
		return 0
	}
	return c.chainID.Uint64()
}

// Sender returns the checksummed minting account address.
func (c *Client) Sender() string {
	return c.sender.Hex()
}

// Contract returns the checksummed drop contract address.
func (c *Client) Contract() string {
	return c.contract.Hex()
}

// PendingNonce returns the sender's nonce including pending transactions.
func (c *Client) PendingNonce(ctx context.Context) (uint64, error) {
	if c.client == nil {
		return 0, domain.ErrNotConnected
	}
	nonce, err := c.client.PendingNonceAt(ctx, c.sender)
	if err != nil {
		return 0, fmt.Errorf("failed to get pending nonce: %w", err)
	}
	return nonce, nil
}

// SuggestGasPrice returns the node's current gas price estimate.
func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if c.client == nil {
		return nil, domain.ErrNotConnected
	}
	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}
	return gasPrice, nil
}

// TokenBalance calls balanceOf(owner) on the drop contract.
func (c *Client) TokenBalance(ctx context.Context, owner string) (*big.Int, error) {
	if c.client == nil {
		return nil, domain.ErrNotConnected
	}

	data, err := c.token.PackBalanceOf(common.HexToAddress(owner))
	if err != nil {
		return nil, err
	}

	output, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &c.contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("balanceOf call failed: %w", err)
	}

	return c.token.UnpackBalanceOf(output)
}

// SendMint signs and broadcasts safeMint(recipient) with the given nonce and
// gas price.
func (c *Client) SendMint(ctx context.Context, recipient string, nonce uint64, gasPrice *big.Int) (string, error) {
	if c.client == nil {
		return "", domain.ErrNotConnected
	}

	data, err := c.token.PackSafeMint(common.HexToAddress(recipient))
	if err != nil {
		return "", err
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &c.contract,
		Value:    big.NewInt(0),
		Gas:      c.config.Drop.GasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	hash := signed.Hash().Hex()
	c.log.Debug("transaction sent", "hash", hash, "nonce", nonce, "to", recipient)
	return hash, nil
}

// WaitMined polls for the transaction receipt until it is found or ctx
// expires.
func (c *Client) WaitMined(ctx context.Context, txHash string) (*models.MintReceipt, error) {
	if c.client == nil {
		return nil, domain.ErrNotConnected
	}

	hash := common.HexToHash(txHash)
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return &models.MintReceipt{
				TxHash:      txHash,
				Status:      receipt.Status,
				BlockNumber: receipt.BlockNumber.Uint64(),
				GasUsed:     receipt.GasUsed,
			}, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("failed to get transaction receipt: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Close releases the RPC connection.
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
}

// Ensure the adapter implements the interface
var _ usecase.ChainClient = (*Client)(nil)
