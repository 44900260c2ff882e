package wallet

import (
	"context"

	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/ghostlabs/ghostbank/services/wallet PaymentGW,EventsGW

// PaymentGW talks to the instant-payment provider
type PaymentGW interface {
	// CreateCharge registers a new charge and returns its code and QR data
	CreateCharge(ctx context.Context, amount decimal.Decimal, payer models.PixPayer) (*models.PixCharge, error)

	// QueryStatus checks whether a charge has been paid
	QueryStatus(ctx context.Context, transactionID string) (models.PaymentStatus, error)
}

// EventsGW publishes wallet lifecycle events
type EventsGW interface {
	// DepositCompleted announces a settled deposit
	DepositCompleted(event *models.DepositCompletedEvent) error
}
