package auth

import (
	"context"

	"github.com/ghostlabs/ghostbank/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ghostlabs/ghostbank/services/auth AuthUC

// AuthUC drives login attempts through the handle entry, chat discovery,
// code entry and authenticated stages
type AuthUC interface {
	// BotIdentity returns the verification bot account
	BotIdentity(ctx context.Context) (*models.BotIdentity, error)

	// StartLogin begins (or restarts) a login attempt for a handle and
	// starts the chat discovery poll
	StartLogin(ctx context.Context, handle string) (*models.AuthStatus, error)

	// LoginStatus reports the current stage of a login attempt
	LoginStatus(handle string) (*models.AuthStatus, error)

	// VerifyCode checks a submitted one-time code and authenticates on match
	VerifyCode(ctx context.Context, handle, code string) (*models.AuthResponse, error)

	// Cancel aborts a login attempt and stops its discovery poll
	Cancel(handle string) error

	// RestoreSession resolves the last authenticated handle, if any
	RestoreSession(ctx context.Context) (*models.User, error)

	// Logout clears the stored session handle
	Logout(ctx context.Context) error

	// Shutdown cancels every running discovery poll
	Shutdown()
}
