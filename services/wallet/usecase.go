package wallet

import (
	"context"

	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ghostlabs/ghostbank/services/wallet WalletUC

// WalletUC drives balance queries, the deposit flow and withdrawals
type WalletUC interface {
	// GetBalance returns the current balance for a handle
	GetBalance(ctx context.Context, handle string) (decimal.Decimal, error)

	// ListTransactions returns the transaction history for a handle,
	// most recent first
	ListTransactions(ctx context.Context, handle string) ([]models.Transaction, error)

	// StartDeposit creates a payment charge and starts the confirmation
	// poll. Only one deposit may be active per handle
	StartDeposit(ctx context.Context, handle string, req *models.DepositRequest) (*models.DepositState, error)

	// CurrentDeposit reports the state of the active deposit flow
	CurrentDeposit(handle string) (*models.DepositState, error)

	// ResumeDeposit re-attaches to a pending deposit after a reload
	ResumeDeposit(ctx context.Context, handle string, req *models.ResumeRequest) (*models.DepositState, error)

	// CancelDeposit abandons the active deposit flow. The charge itself
	// is not voided and may still confirm later via resume
	CancelDeposit(handle string) error

	// Withdraw debits the balance plus a service fee and records both
	// movements
	Withdraw(ctx context.Context, handle string, req *models.WithdrawRequest) (*models.WithdrawResult, error)

	// Shutdown stops every running confirmation poll
	Shutdown()
}
