package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// Resolved configurations
	Network  *Network
	Drop     *DropConfig
	Sender   *SenderConfig
	Telegram *TelegramConfig
}

// Network represents the target chain configuration
type Network struct {
	// ChainID pins the expected chain; 0 accepts whatever the node reports
	ChainID uint64 `json:"chainId"`
	RPCURL  string `json:"rpcUrl"`
}

// DropConfig holds the resolved drop parameters
type DropConfig struct {
	// Contract is the ERC-721 contract exposing safeMint(address)
	Contract string

	// RecipientsFile is the CSV of address,score rows (project-relative or absolute)
	RecipientsFile string

	// MinScore is the qualification threshold (inclusive)
	MinScore float64

	// GasLimit is the fixed gas limit for each mint transaction
	GasLimit uint64

	// TxDelay is the pause between consecutive recipients
	TxDelay time.Duration
}

// SenderConfig holds the minting account
type SenderConfig struct {
	// PrivateKey is the hex-encoded signing key, 0x prefix optional
	PrivateKey string
}

// TelegramConfig holds the notification channel credentials
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

// Configured reports whether both credentials are present.
func (t *TelegramConfig) Configured() bool {
	return t != nil && t.BotToken != "" && t.ChatID != ""
}
