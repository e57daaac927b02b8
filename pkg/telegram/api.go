package telegram

// DefaultAPIBase is the public Telegram Bot API endpoint.
const DefaultAPIBase = "https://api.telegram.org"

// ParseModeHTML enables HTML formatting in message text.
const ParseModeHTML = "HTML"

// SendMessageRequest is the sendMessage request payload
type SendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// APIResponse is the Bot API response envelope
type APIResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}
