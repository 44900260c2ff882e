package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	"github.com/shopspring/decimal"
)

// GetBalance reads the current balance for a handle
func (r *WalletRepo) GetBalance(ctx context.Context, handle string) (decimal.Decimal, error) {
	query := `
		SELECT balance
		FROM users
		WHERE handle = $1
	`

	var balance decimal.Decimal
	err := r.retrier.Do(ctx, func(ctx context.Context) error {
		return r.db.GetContext(ctx, &balance, query, handle)
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to get balance: %w", err)
	}

	return balance, nil
}

// UpdateBalance writes a new balance for a handle
func (r *WalletRepo) UpdateBalance(ctx context.Context, handle string, balance decimal.Decimal) error {
	query := `
		UPDATE users
		SET balance = $1, updated_at = NOW()
		WHERE handle = $2
	`

	err := r.retrier.Do(ctx, func(ctx context.Context) error {
		result, err := r.db.ExecContext(ctx, query, balance, handle)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}

	return nil
}
