package http

import (
	"errors"
	"net/http"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	"github.com/ghostlabs/ghostbank/internal/pkg/logger"
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/internal/utils"
	"github.com/ghostlabs/ghostbank/services/wallet"
	"github.com/labstack/echo/v4"
)

// WalletHandler handles HTTP requests for balances, deposits and
// withdrawals. Every route requires an authenticated handle.
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{walletUC: walletUC}
}

// RegisterRoutes registers the wallet endpoints behind the given
// authentication middleware
func (h *WalletHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	g := e.Group("/wallet", authMW)
	g.GET("/balance", h.GetBalance)
	g.GET("/transactions", h.ListTransactions)
	g.POST("/deposits", h.StartDeposit)
	g.GET("/deposits/current", h.CurrentDeposit)
	g.POST("/deposits/resume", h.ResumeDeposit)
	g.POST("/deposits/cancel", h.CancelDeposit)
	g.POST("/withdrawals", h.Withdraw)
}

func userHandle(c echo.Context) (string, bool) {
	handle, ok := c.Get("user_handle").(string)
	return handle, ok && handle != ""
}

// GetBalance returns the caller's current balance
func (h *WalletHandler) GetBalance(c echo.Context) error {
	handle, ok := userHandle(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated handle")
	}

	balance, err := h.walletUC.GetBalance(c.Request().Context(), handle)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, "Account not found")
		}
		logger.Error("failed to get balance", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get balance")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved", map[string]interface{}{
		"handle":  handle,
		"balance": balance,
	})
}

// ListTransactions returns the caller's transaction history
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	handle, ok := userHandle(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated handle")
	}

	transactions, err := h.walletUC.ListTransactions(c.Request().Context(), handle)
	if err != nil {
		logger.Error("failed to list transactions", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved", transactions)
}

// StartDeposit creates a charge and starts the confirmation flow
func (h *WalletHandler) StartDeposit(c echo.Context) error {
	handle, ok := userHandle(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated handle")
	}

	var req models.DepositRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	state, err := h.walletUC.StartDeposit(c.Request().Context(), handle, &req)
	if err != nil {
		return h.depositError(c, err, "Failed to start deposit")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Deposit started", state)
}

// CurrentDeposit reports the state of the active deposit flow
func (h *WalletHandler) CurrentDeposit(c echo.Context) error {
	handle, ok := userHandle(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated handle")
	}

	state, err := h.walletUC.CurrentDeposit(handle)
	if err != nil {
		return utils.NotFoundResponse(c, "No active deposit")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Deposit state retrieved", state)
}

// ResumeDeposit re-attaches to a pending deposit after a reload
func (h *WalletHandler) ResumeDeposit(c echo.Context) error {
	handle, ok := userHandle(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated handle")
	}

	var req models.ResumeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	state, err := h.walletUC.ResumeDeposit(c.Request().Context(), handle, &req)
	if err != nil {
		return h.depositError(c, err, "Failed to resume deposit")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Deposit resumed", state)
}

// CancelDeposit abandons the active deposit flow
func (h *WalletHandler) CancelDeposit(c echo.Context) error {
	handle, ok := userHandle(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated handle")
	}

	if err := h.walletUC.CancelDeposit(handle); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, "No active deposit")
		}
		logger.Error("failed to cancel deposit", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to cancel deposit")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Deposit cancelled", nil)
}

// Withdraw debits the balance plus the service fee
func (h *WalletHandler) Withdraw(c echo.Context) error {
	handle, ok := userHandle(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated handle")
	}

	var req models.WithdrawRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.walletUC.Withdraw(c.Request().Context(), handle, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, "Account not found")
		}
		logger.Error("failed to withdraw", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to withdraw")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Withdrawal completed", result)
}

func (h *WalletHandler) depositError(c echo.Context, err error, fallback string) error {
	if apperrors.IsValidation(err) {
		return utils.BadRequestResponse(c, err.Error())
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return utils.NotFoundResponse(c, "Transaction not found")
	}
	var connErr *apperrors.ConnectivityError
	if errors.As(err, &connErr) {
		return utils.ServiceUnavailableResponse(c, "Payment gateway unreachable")
	}
	logger.Error(fallback, logger.Err(err))
	return utils.InternalServerErrorResponse(c, fallback)
}
