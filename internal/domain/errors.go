package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNotConnected is returned when the chain client is used before Connect
	ErrNotConnected = errors.New("not connected to chain")

	// ErrMissingRPC is returned when no RPC endpoint is configured
	ErrMissingRPC = errors.New("rpc url not configured")

	// ErrMissingPrivateKey is returned when no sender key is configured
	ErrMissingPrivateKey = errors.New("sender private key not configured")

	// ErrMissingContract is returned when no drop contract is configured
	ErrMissingContract = errors.New("drop contract address not configured")

	// ErrNoRecipients is returned when no recipients file is configured
	ErrNoRecipients = errors.New("recipients file not configured")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrChainIDMismatch is returned when the node reports an unexpected chain
	ErrChainIDMismatch = errors.New("chain ID mismatch")
)
