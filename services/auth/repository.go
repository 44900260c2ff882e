package auth

import (
	"context"

	"github.com/ghostlabs/ghostbank/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ghostlabs/ghostbank/services/auth AuthRepo,SessionRepo

// AuthRepo resolves accounts at the persistence boundary
type AuthRepo interface {
	// GetUserByHandle returns the account for a handle, or ErrNotFound
	GetUserByHandle(ctx context.Context, handle string) (*models.User, error)

	// CreateUser creates a new account with a zero balance
	CreateUser(ctx context.Context, user *models.User) error
}

// SessionRepo stores the last authenticated handle for silent
// session restoration at process start
type SessionRepo interface {
	SaveLastHandle(ctx context.Context, handle string) error

	// LoadLastHandle returns the stored handle, or ErrNotFound
	LoadLastHandle(ctx context.Context) (string, error)

	ClearLastHandle(ctx context.Context) error
}
