// Package notify delivers poller notifications to an external sink.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TelegramRelay posts plain-text messages to a Telegram relay endpoint.
// The relay multiplexes bots and chats, addressed by a "botId:chatId" route.
type TelegramRelay struct {
	endpoint   string
	botID      string
	chatID     string
	httpClient *http.Client
}

// NewTelegramRelay builds a relay sink for the given endpoint and route.
func NewTelegramRelay(endpoint, route string) (*TelegramRelay, error) {
	botID, chatID, ok := strings.Cut(route, ":")
	if !ok || botID == "" || chatID == "" {
		return nil, fmt.Errorf("invalid relay route %q, want botId:chatId", route)
	}
	return &TelegramRelay{
		endpoint: endpoint,
		botID:    botID,
		chatID:   chatID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// NotifyLiveStream announces a newly detected broadcast.
func (r *TelegramRelay) NotifyLiveStream(ctx context.Context, livestreamURL, title string) error {
	return r.send(ctx, title+"\n"+livestreamURL)
}

// NotifyError reports a failed check.
func (r *TelegramRelay) NotifyError(ctx context.Context, message string) error {
	return r.send(ctx, "unexpected error occurred:\n```\n"+message+"\n```")
}

type relayPayload struct {
	BotID   string `json:"botId"`
	ChatID  string `json:"chatId"`
	Message string `json:"message"`
}

func (r *TelegramRelay) send(ctx context.Context, message string) error {
	body, err := json.Marshal(relayPayload{
		BotID:   r.botID,
		ChatID:  r.chatID,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("relay returned %d: %s", res.StatusCode, string(snippet))
	}
	return nil
}

// Noop is the sink used when no relay is configured: every notification is
// silently skipped. Not an error by contract.
type Noop struct{}

func (Noop) NotifyLiveStream(context.Context, string, string) error { return nil }
func (Noop) NotifyError(context.Context, string) error              { return nil }
