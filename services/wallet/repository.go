package wallet

import (
	"context"

	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ghostlabs/ghostbank/services/wallet WalletRepo

// WalletRepo manages wallet persistence
type WalletRepo interface {
	// GetBalance reads the current balance for a handle
	GetBalance(ctx context.Context, handle string) (decimal.Decimal, error)

	// UpdateBalance writes a new balance for a handle
	UpdateBalance(ctx context.Context, handle string, balance decimal.Decimal) error

	// CreateTransaction records a new transaction row
	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	// GetTransaction loads a transaction by its identifier
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)

	// UpdateTransactionStatus moves a transaction to a new status
	UpdateTransactionStatus(ctx context.Context, id string, status models.TransactionStatus) error

	// ListTransactionsByHandle returns a handle's transactions, most
	// recent first
	ListTransactionsByHandle(ctx context.Context, handle string) ([]models.Transaction, error)
}
