package usecase

import (
	"context"

	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/internal/utils"
	"github.com/shopspring/decimal"
)

// GetBalance returns the current balance for a handle
func (uc *WalletUC) GetBalance(ctx context.Context, handle string) (decimal.Decimal, error) {
	return uc.repo.GetBalance(ctx, utils.BareHandle(handle))
}

// ListTransactions returns the transaction history for a handle, most
// recent first
func (uc *WalletUC) ListTransactions(ctx context.Context, handle string) ([]models.Transaction, error) {
	return uc.repo.ListTransactionsByHandle(ctx, utils.BareHandle(handle))
}
