package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	"github.com/ghostlabs/ghostbank/internal/pkg/logger"
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/internal/pkg/transport"
	"github.com/shopspring/decimal"
)

// pendingStatuses are gateway statuses that mean the charge exists and
// is still awaiting payment
var pendingStatuses = map[string]struct{}{
	"pending":    {},
	"waiting":    {},
	"processing": {},
	"created":    {},
	"active":     {},
	"open":       {},
}

// PixGateway creates and polls instant-payment charges through the
// relay fallback chain
type PixGateway struct {
	cfg        models.PaymentConfig
	client     *transport.FallbackClient
	strategies []transport.Strategy
}

// NewPixGateway creates a payment gateway from configuration
func NewPixGateway(cfg models.PaymentConfig, client *transport.FallbackClient) *PixGateway {
	return &PixGateway{
		cfg:        cfg,
		client:     client,
		strategies: transport.ParseStrategies(cfg.Relays),
	}
}

func (g *PixGateway) authHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"x-public-key": g.cfg.PublicKey,
		"x-secret-key": g.cfg.SecretKey,
	}
}

// mapError converts a non-2xx gateway response into a domain error
func mapError(resp *transport.Response) error {
	var gwErr models.PixGatewayError
	if err := json.Unmarshal(resp.Body, &gwErr); err == nil {
		if resp.StatusCode == http.StatusUnauthorized || gwErr.ErrorCode == "MISSING_HEADERS" {
			return fmt.Errorf("%w: %s", apperrors.ErrTokenInvalid, gwErr.Message)
		}
		if gwErr.Message != "" {
			return &apperrors.GatewayError{Message: gwErr.Message}
		}
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return apperrors.ErrTokenInvalid
	}
	return &apperrors.GatewayError{Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
}

// CreateCharge registers a new charge and returns its code and QR data.
// The identifier is generated here; the gateway's transactionId is the
// canonical identity from then on, with the identifier as fallback.
func (g *PixGateway) CreateCharge(ctx context.Context, amount decimal.Decimal, payer models.PixPayer) (*models.PixCharge, error) {
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationError("charge amount must be positive")
	}

	identifier := fmt.Sprintf("dep_%d", time.Now().UnixMilli())
	payload, err := json.Marshal(models.PixChargeRequest{
		Identifier: identifier,
		Amount:     amount,
		Client:     payer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode charge request: %w", err)
	}

	resp, err := g.client.Send(ctx, http.MethodPost, g.cfg.ChargeURL, g.authHeaders(), payload, g.strategies)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, mapError(resp)
	}

	var charge models.PixCharge
	if err := json.Unmarshal(resp.Body, &charge); err != nil {
		return nil, fmt.Errorf("failed to decode charge response: %w", err)
	}
	if charge.TransactionID == "" {
		charge.TransactionID = identifier
	}

	logger.Info("charge created",
		logger.String("transaction_id", charge.TransactionID),
		logger.String("relay", resp.Strategy))

	return &charge, nil
}

// QueryStatus checks whether a charge has been paid. Transport failures
// surface to the caller; the confirmation poll decides whether to keep
// trying.
func (g *PixGateway) QueryStatus(ctx context.Context, transactionID string) (models.PaymentStatus, error) {
	targetURL := fmt.Sprintf("%s/%s", strings.TrimRight(g.cfg.StatusURL, "/"), transactionID)

	resp, err := g.client.Send(ctx, http.MethodGet, targetURL, g.authHeaders(), nil, g.strategies)
	if err != nil {
		return models.PaymentUnknown, err
	}
	if !resp.IsSuccess() {
		return models.PaymentUnknown, mapError(resp)
	}

	var status struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body, &status); err != nil {
		return models.PaymentUnknown, fmt.Errorf("failed to decode status response: %w", err)
	}

	switch strings.ToLower(status.Status) {
	case "paid", "completed", "approved":
		return models.PaymentPaid, nil
	default:
		if _, ok := pendingStatuses[strings.ToLower(status.Status)]; ok {
			return models.PaymentPending, nil
		}
		return models.PaymentUnknown, nil
	}
}
