package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
)

// CreateTransaction records a new transaction row
func (r *WalletRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_handle, type, amount, status, description, pix_code, pix_qr_image, created_at)
		VALUES (:id, :user_handle, :type, :amount, :status, :description, :pix_code, :pix_qr_image, :created_at)
	`

	err := r.retrier.Do(ctx, func(ctx context.Context) error {
		_, err := r.db.NamedExecContext(ctx, query, tx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransaction loads a transaction by its identifier
func (r *WalletRepo) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	query := `
		SELECT id, user_handle, type, amount, status, description,
		       COALESCE(pix_code, '') AS pix_code,
		       COALESCE(pix_qr_image, '') AS pix_qr_image,
		       created_at
		FROM transactions
		WHERE id = $1
	`

	var tx models.Transaction
	err := r.retrier.Do(ctx, func(ctx context.Context) error {
		return r.db.GetContext(ctx, &tx, query, id)
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

// UpdateTransactionStatus moves a transaction to a new status
func (r *WalletRepo) UpdateTransactionStatus(ctx context.Context, id string, status models.TransactionStatus) error {
	query := `
		UPDATE transactions
		SET status = $1
		WHERE id = $2
	`

	err := r.retrier.Do(ctx, func(ctx context.Context) error {
		result, err := r.db.ExecContext(ctx, query, status, id)
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
		return fmt.Errorf("failed to update transaction status: %w", err)
	}

	return nil
}

// ListTransactionsByHandle returns a handle's transactions, most recent first
func (r *WalletRepo) ListTransactionsByHandle(ctx context.Context, handle string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_handle, type, amount, status, description,
		       COALESCE(pix_code, '') AS pix_code,
		       COALESCE(pix_qr_image, '') AS pix_qr_image,
		       created_at
		FROM transactions
		WHERE user_handle = $1
		ORDER BY created_at DESC
	`

	transactions := []models.Transaction{}
	err := r.retrier.Do(ctx, func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &transactions, query, handle)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}
