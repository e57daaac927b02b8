package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the Telegram Bot API for one bot token
type Client struct {
	apiBase    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client against the public Bot API.
func NewClient(token string) *Client {
	return NewClientWithBase(token, DefaultAPIBase)
}

// NewClientWithBase creates a client against a custom Bot API server.
func NewClientWithBase(token, apiBase string) *Client {
	return &Client{
		apiBase: apiBase,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendMessage posts a sendMessage call with HTML parse mode.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiBase, c.token)

	payload, err := json.Marshal(SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	var api APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !api.OK {
		return fmt.Errorf("telegram API error %d: %s", api.ErrorCode, api.Description)
	}

	return nil
}
