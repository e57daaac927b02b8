package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mintdrop-org/mintdrop-cli/internal/domain/config"
	"github.com/mintdrop-org/mintdrop-cli/pkg/telegram"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifierAdapter_Notify(t *testing.T) {
	ctx := context.Background()

	t.Run("missing credentials disable delivery", func(t *testing.T) {
		adapter := NewNotifierAdapter(&config.RuntimeConfig{
			Telegram: &config.TelegramConfig{BotToken: "token"},
		}, testLogger())

		// Must be a silent no-op
		adapter.Notify(ctx, "hello")
	})

	t.Run("nil telegram config disables delivery", func(t *testing.T) {
		adapter := NewNotifierAdapter(&config.RuntimeConfig{}, testLogger())
		adapter.Notify(ctx, "hello")
	})

	t.Run("delivers to the configured chat", func(t *testing.T) {
		var got telegram.SendMessageRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.Write([]byte(`{"ok":true}`))
		}))
		defer server.Close()

		adapter := &NotifierAdapter{
			client: telegram.NewClientWithBase("token", server.URL),
			chatID: "-100200300",
			log:    testLogger(),
		}

		adapter.Notify(ctx, "✅ Mint Successful!")

		assert.Equal(t, "-100200300", got.ChatID)
		assert.Equal(t, "✅ Mint Successful!", got.Text)
	})

	t.Run("delivery failures are logged, not returned", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		var buf bytes.Buffer
		adapter := &NotifierAdapter{
			client: telegram.NewClientWithBase("token", server.URL),
			chatID: "42",
			log:    slog.New(slog.NewTextHandler(&buf, nil)),
		}

		// Must not panic or bubble the failure up
		adapter.Notify(ctx, "hello")

		assert.Contains(t, buf.String(), "failed to send telegram message")
	})
}
