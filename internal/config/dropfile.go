package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
)

// Defaults applied when mintdrop.toml leaves a field unset.
const (
	DefaultRecipientsFile = "addresses.csv"
	DefaultMinScore       = 35.0
	DefaultGasLimit       = 300000
	DefaultTxDelay        = 5 * time.Second
)

// DropfileTOML represents the raw mintdrop.toml structure
type DropfileTOML struct {
	Drop     DropSection     `toml:"drop"`
	Network  NetworkSection  `toml:"network"`
	Sender   SenderSection   `toml:"sender"`
	Telegram TelegramSection `toml:"telegram"`
}

// DropSection is the [drop] table
type DropSection struct {
	Contract   string   `toml:"contract"`
	Recipients string   `toml:"recipients"`
	MinScore   *float64 `toml:"min_score"`
	GasLimit   *uint64  `toml:"gas_limit"`
	TxDelay    string   `toml:"tx_delay"`
}

// NetworkSection is the [network] table
type NetworkSection struct {
	RPCURL  string `toml:"rpc_url"`
	ChainID uint64 `toml:"chain_id"`
}

// SenderSection is the [sender] table
type SenderSection struct {
	PrivateKey string `toml:"private_key"`
}

// TelegramSection is the [telegram] table
type TelegramSection struct {
	BotToken string `toml:"bot_token"`
	ChatID   string `toml:"chat_id"`
}

// DropfileConfig holds the resolved sections of mintdrop.toml
type DropfileConfig struct {
	Drop     *config.DropConfig
	Network  *config.Network
	Sender   *config.SenderConfig
	Telegram *config.TelegramConfig
}

// loadDropfile loads .env files, parses mintdrop.toml, expands ${VAR}
// references and fills gaps from the environment. The file may be absent;
// everything then comes from env variables and defaults.
func loadDropfile(projectRoot string) (*DropfileConfig, error) {
	// Load .env files first for variable expansion
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	var raw DropfileTOML
	dropfilePath := filepath.Join(projectRoot, "mintdrop.toml")
	if _, err := os.Stat(dropfilePath); err == nil {
		if _, err := toml.DecodeFile(dropfilePath, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse mintdrop.toml: %w", err)
		}
	}

	cfg := &DropfileConfig{
		Drop: &config.DropConfig{
			Contract:       fallbackEnv(os.ExpandEnv(raw.Drop.Contract), "CONTRACT_ADDRESS"),
			RecipientsFile: os.ExpandEnv(raw.Drop.Recipients),
			MinScore:       DefaultMinScore,
			GasLimit:       DefaultGasLimit,
			TxDelay:        DefaultTxDelay,
		},
		Network: &config.Network{
			RPCURL:  fallbackEnv(os.ExpandEnv(raw.Network.RPCURL), "RPC_URL"),
			ChainID: raw.Network.ChainID,
		},
		Sender: &config.SenderConfig{
			PrivateKey: fallbackEnv(os.ExpandEnv(raw.Sender.PrivateKey), "PRIVATE_KEY"),
		},
		Telegram: &config.TelegramConfig{
			BotToken: fallbackEnv(os.ExpandEnv(raw.Telegram.BotToken), "TELEGRAM_BOT_TOKEN"),
			ChatID:   fallbackEnv(os.ExpandEnv(raw.Telegram.ChatID), "TELEGRAM_CHAT_ID"),
		},
	}

	if cfg.Drop.RecipientsFile == "" {
		cfg.Drop.RecipientsFile = DefaultRecipientsFile
	}
	if raw.Drop.MinScore != nil {
		cfg.Drop.MinScore = *raw.Drop.MinScore
	}
	if raw.Drop.GasLimit != nil {
		cfg.Drop.GasLimit = *raw.Drop.GasLimit
	}
	if raw.Drop.TxDelay != "" {
		delay, err := time.ParseDuration(raw.Drop.TxDelay)
		if err != nil {
			return nil, fmt.Errorf("invalid tx_delay in mintdrop.toml: %w", err)
		}
		cfg.Drop.TxDelay = delay
	}

	return cfg, nil
}

// fallbackEnv returns value, or the named environment variable when value is
// empty. The file wins over the environment.
func fallbackEnv(value, envKey string) string {
	if value != "" {
		return value
	}
	return os.Getenv(envKey)
}
