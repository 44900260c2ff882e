package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ghostlabs/ghostbank/internal/pkg/database"
	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	"github.com/go-redis/redis/v8"
)

const (
	sessionKey = "ghostbank:session:last_handle"
	sessionTTL = 30 * 24 * time.Hour
)

// SessionRepo stores the last authenticated handle in Redis
type SessionRepo struct {
	redis *database.RedisClient
}

// NewSessionRepo creates a new session repository instance
func NewSessionRepo(redisClient *database.RedisClient) *SessionRepo {
	return &SessionRepo{redis: redisClient}
}

// SaveLastHandle stores the handle with a rolling expiry
func (r *SessionRepo) SaveLastHandle(ctx context.Context, handle string) error {
	if err := r.redis.Set(ctx, sessionKey, handle, sessionTTL); err != nil {
		return fmt.Errorf("failed to save session handle: %w", err)
	}
	return nil
}

// LoadLastHandle returns the stored handle, or ErrNotFound
func (r *SessionRepo) LoadLastHandle(ctx context.Context) (string, error) {
	handle, err := r.redis.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to load session handle: %w", err)
	}
	return handle, nil
}

// ClearLastHandle removes the stored handle
func (r *SessionRepo) ClearLastHandle(ctx context.Context) error {
	if err := r.redis.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("failed to clear session handle: %w", err)
	}
	return nil
}
