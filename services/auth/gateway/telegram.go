package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	"github.com/ghostlabs/ghostbank/internal/pkg/logger"
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/internal/pkg/transport"
	"github.com/ghostlabs/ghostbank/internal/utils"
)

const codeMessageTemplate = "🔐 *GhostBank Auth*\n\nYour access code: `%s`\n\n_Valid for 5 minutes._"

// TelegramGateway speaks the pull-based bot API through the relay
// fallback chain
type TelegramGateway struct {
	cfg        models.TelegramConfig
	client     *transport.FallbackClient
	strategies []transport.Strategy
}

// NewTelegramGateway creates a bot gateway from configuration
func NewTelegramGateway(cfg models.TelegramConfig, client *transport.FallbackClient) *TelegramGateway {
	return &TelegramGateway{
		cfg:        cfg,
		client:     client,
		strategies: transport.ParseStrategies(cfg.Relays),
	}
}

// call invokes one bot API method with query parameters. Some relays
// wrap the upstream payload in a "contents" envelope, which is unwrapped
// before decoding.
func (g *TelegramGateway) call(ctx context.Context, method string, params map[string]string) (*models.TelegramResponse, error) {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	// Cache buster: relays aggressively cache identical GET URLs
	values.Set("_t", fmt.Sprintf("%d", time.Now().UnixMilli()))

	targetURL := fmt.Sprintf("%s/bot%s/%s?%s", g.cfg.APIBaseURL, g.cfg.BotToken, method, values.Encode())

	resp, err := g.client.Send(ctx, http.MethodGet, targetURL,
		map[string]string{"Accept": "application/json"}, nil, g.strategies)
	if err != nil {
		return nil, err
	}

	body := resp.Body
	var envelope struct {
		Contents string `json:"contents"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Contents != "" {
		body = []byte(envelope.Contents)
	}

	var apiResp models.TelegramResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode bot API response: %w", err)
	}

	return &apiResp, nil
}

// ClearPendingUpdates drops the webhook so queued messages from a prior
// session cannot satisfy a new discovery attempt. Best-effort.
func (g *TelegramGateway) ClearPendingUpdates(ctx context.Context) {
	_, err := g.call(ctx, "deleteWebhook", map[string]string{
		"drop_pending_updates": "false",
	})
	if err != nil {
		logger.Warn("failed to clear pending bot updates", logger.Err(err))
	}
}

// GetIdentity returns the bot account via getMe
func (g *TelegramGateway) GetIdentity(ctx context.Context) (*models.BotIdentity, error) {
	resp, err := g.call(ctx, "getMe", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrServiceUnavailable, err)
	}
	if !resp.OK {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrServiceUnavailable, resp.Description)
	}

	var info models.TelegramBotInfo
	if err := json.Unmarshal(resp.Result, &info); err != nil {
		return nil, fmt.Errorf("%w: malformed getMe result", apperrors.ErrServiceUnavailable)
	}

	return &models.BotIdentity{
		ID:          info.ID,
		DisplayName: info.FirstName,
		Handle:      info.Username,
	}, nil
}

// LocateChatByHandle fetches the most recent update window and returns
// the chat id of the newest message whose sender matches the handle
func (g *TelegramGateway) LocateChatByHandle(ctx context.Context, handle string) (int64, error) {
	resp, err := g.call(ctx, "getUpdates", map[string]string{
		"offset":          "-100",
		"limit":           "100",
		"allowed_updates": `["message"]`,
	})
	if err != nil {
		return 0, err
	}
	if !resp.OK {
		return 0, fmt.Errorf("getUpdates failed: %s", resp.Description)
	}

	var updates []models.TelegramUpdate
	if err := json.Unmarshal(resp.Result, &updates); err != nil {
		return 0, fmt.Errorf("malformed getUpdates result: %w", err)
	}

	target := utils.BareHandle(handle)
	// Most recent first
	for i := len(updates) - 1; i >= 0; i-- {
		msg := updates[i].Message
		if msg == nil || msg.From == nil || msg.Chat == nil {
			continue
		}
		if utils.BareHandle(msg.From.Username) == target {
			return msg.Chat.ID, nil
		}
	}

	return 0, apperrors.ErrNotFound
}

// DeliverCode sends the one-time code to the located chat. A single
// attempt: retrying a send risks delivering the message twice.
func (g *TelegramGateway) DeliverCode(ctx context.Context, chatID int64, code string) (bool, error) {
	resp, err := g.call(ctx, "sendMessage", map[string]string{
		"chat_id":    fmt.Sprintf("%d", chatID),
		"text":       fmt.Sprintf(codeMessageTemplate, code),
		"parse_mode": "Markdown",
	})
	if err != nil {
		return false, err
	}

	return resp.OK, nil
}
