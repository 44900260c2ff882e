package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetUserByHandle retrieves a user by chat handle
func (r *AuthRepo) GetUserByHandle(ctx context.Context, handle string) (*models.User, error) {
	query := `
		SELECT id, handle, balance, created_at, updated_at
		FROM users
		WHERE handle = $1
	`

	var user models.User
	err := r.retrier.Do(ctx, func(ctx context.Context) error {
		return r.db.GetContext(ctx, &user, query, handle)
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// CreateUser creates a new account with a zero balance
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	user.Balance = decimal.Zero
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, handle, balance, created_at, updated_at)
		VALUES (:id, :handle, :balance, :created_at, :updated_at)
	`

	err := r.retrier.Do(ctx, func(ctx context.Context) error {
		_, err := r.db.NamedExecContext(ctx, query, user)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}
