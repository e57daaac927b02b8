package telegram

import (
	"context"
	"log/slog"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
	"github.com/mintdrop-org/mintdrop-cli/internal/usecase"
	"github.com/mintdrop-org/mintdrop-cli/pkg/telegram"
)

// NotifierAdapter implements the Notifier interface over the Telegram Bot
// API. Without credentials it degrades to a silent no-op.
type NotifierAdapter struct {
	client *telegram.Client
	chatID string
	log    *slog.Logger
}

// NewNotifierAdapter creates a new notifier adapter
func NewNotifierAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *NotifierAdapter {
	if !cfg.Telegram.Configured() {
		log.Debug("telegram credentials not configured, notifications disabled")
		return &NotifierAdapter{log: log}
	}
	return &NotifierAdapter{
		client: telegram.NewClient(cfg.Telegram.BotToken),
		chatID: cfg.Telegram.ChatID,
		log:    log,
	}
}

// Notify sends one message. Delivery failures are logged, never returned;
// notifications must not interrupt a run.
func (n *NotifierAdapter) Notify(ctx context.Context, text string) {
	if n.client == nil {
		return
	}
	if err := n.client.SendMessage(ctx, n.chatID, text); err != nil {
		n.log.Warn("failed to send telegram message", "error", err)
	}
}

// Ensure the adapter implements the interface
var _ usecase.Notifier = (*NotifierAdapter)(nil)
