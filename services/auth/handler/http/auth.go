package http

import (
	"errors"
	"net/http"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	"github.com/ghostlabs/ghostbank/internal/pkg/logger"
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/internal/utils"
	"github.com/ghostlabs/ghostbank/services/auth"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles HTTP requests for the login flow
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// RegisterRoutes registers the auth endpoints
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/auth")
	g.GET("/bot", h.BotIdentity)
	g.POST("/login", h.StartLogin)
	g.GET("/status", h.LoginStatus)
	g.POST("/verify", h.VerifyCode)
	g.POST("/cancel", h.Cancel)
	g.GET("/session", h.RestoreSession)
	g.POST("/logout", h.Logout)
}

// BotIdentity returns the verification bot account
func (h *AuthHandler) BotIdentity(c echo.Context) error {
	bot, err := h.authUC.BotIdentity(c.Request().Context())
	if err != nil {
		return utils.ServiceUnavailableResponse(c, "Verification service is unavailable")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bot identity retrieved", bot)
}

// StartLogin begins a login attempt for a handle
func (h *AuthHandler) StartLogin(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	status, err := h.authUC.StartLogin(c.Request().Context(), req.Handle)
	if err != nil {
		if apperrors.IsValidation(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		if errors.Is(err, apperrors.ErrServiceUnavailable) {
			return utils.ServiceUnavailableResponse(c, "Verification service is unavailable")
		}
		logger.Error("failed to start login", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to start login")
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Login started", status)
}

// LoginStatus reports the current stage of a login attempt
func (h *AuthHandler) LoginStatus(c echo.Context) error {
	handle := c.QueryParam("handle")
	if handle == "" {
		return utils.BadRequestResponse(c, "handle is required")
	}

	status, err := h.authUC.LoginStatus(handle)
	if err != nil {
		return utils.NotFoundResponse(c, "No login attempt for this handle")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login status retrieved", status)
}

// VerifyCode submits the received one-time code
func (h *AuthHandler) VerifyCode(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.VerifyCode(c.Request().Context(), req.Handle, req.Code)
	if err != nil {
		if apperrors.IsValidation(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("failed to verify code", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to verify code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Authenticated", resp)
}

// Cancel aborts a login attempt
func (h *AuthHandler) Cancel(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.authUC.Cancel(req.Handle); err != nil {
		logger.Error("failed to cancel login", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to cancel login")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login cancelled", nil)
}

// RestoreSession resolves the last authenticated handle, if any
func (h *AuthHandler) RestoreSession(c echo.Context) error {
	user, err := h.authUC.RestoreSession(c.Request().Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, "No stored session")
		}
		logger.Error("failed to restore session", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to restore session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session restored", user)
}

// Logout clears the stored session handle
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context()); err != nil {
		logger.Error("failed to logout", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to logout")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}
