package auth

import (
	"context"

	"github.com/ghostlabs/ghostbank/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/ghostlabs/ghostbank/services/auth BotGW

// BotGW is the chat bot verification boundary
type BotGW interface {
	// ClearPendingUpdates drops queued inbound messages so a stale
	// message from a prior session cannot satisfy a new discovery
	// attempt. Best-effort: failures are tolerated.
	ClearPendingUpdates(ctx context.Context)

	// GetIdentity returns the bot account, or ErrServiceUnavailable
	GetIdentity(ctx context.Context) (*models.BotIdentity, error)

	// LocateChatByHandle scans the most recent inbound updates for a
	// sender matching the handle and returns the chat id. A miss
	// returns ErrNotFound, which drives re-polling and is not a failure.
	LocateChatByHandle(ctx context.Context, handle string) (int64, error)

	// DeliverCode sends the one-time code to a chat and reports whether
	// the send succeeded. It does not retry internally.
	DeliverCode(ctx context.Context, chatID int64, code string) (bool, error)
}
