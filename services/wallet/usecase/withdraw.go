package usecase

import (
	"context"
	"fmt"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	"github.com/ghostlabs/ghostbank/internal/pkg/logger"
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/internal/utils"
	"github.com/shopspring/decimal"
)

// Withdraw debits amount plus the service fee and appends a Withdraw row
// and a Fee row, both already Completed. The funds check happens before
// any write, so an insufficient balance leaves the ledger untouched.
func (uc *WalletUC) Withdraw(ctx context.Context, handle string, req *models.WithdrawRequest) (*models.WithdrawResult, error) {
	if req == nil || !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("withdrawal amount must be positive")
	}
	if req.PixKey == "" {
		return nil, apperrors.NewValidationError("destination Pix key is required")
	}
	handle = utils.BareHandle(handle)

	fee := req.Amount.Mul(decimal.NewFromFloat(uc.cfg.Payment.WithdrawFeePct))
	total := req.Amount.Add(fee)

	balance, err := uc.repo.GetBalance(ctx, handle)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(total) {
		return nil, apperrors.NewValidationError(
			"insufficient funds: balance %s, required %s including fee", balance, total)
	}

	newBalance := balance.Sub(total)
	if err := uc.repo.UpdateBalance(ctx, handle, newBalance); err != nil {
		return nil, err
	}

	now := uc.now()
	withdrawTx := &models.Transaction{
		ID:          fmt.Sprintf("wd_%d", now.UnixMilli()),
		UserHandle:  handle,
		Type:        models.TransactionWithdraw,
		Amount:      req.Amount,
		Status:      models.TransactionCompleted,
		Description: fmt.Sprintf("Pix withdrawal to %s key", req.KeyType),
		CreatedAt:   now,
	}
	if err := uc.repo.CreateTransaction(ctx, withdrawTx); err != nil {
		return nil, err
	}

	feeTx := &models.Transaction{
		ID:          fmt.Sprintf("fee_%d", now.UnixMilli()),
		UserHandle:  handle,
		Type:        models.TransactionFee,
		Amount:      fee,
		Status:      models.TransactionCompleted,
		Description: "Withdrawal service fee",
		CreatedAt:   now,
	}
	if err := uc.repo.CreateTransaction(ctx, feeTx); err != nil {
		return nil, err
	}

	logger.Info("withdrawal completed",
		logger.String("handle", handle),
		logger.String("amount", req.Amount.String()),
		logger.String("fee", fee.String()))

	return &models.WithdrawResult{
		Amount:     req.Amount,
		Fee:        fee,
		NewBalance: newBalance,
	}, nil
}
