package usecase

import (
	"sync"
	"time"

	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/services/wallet"
)

// WalletUC owns balances, the transaction ledger and at most one deposit
// flow per handle
type WalletUC struct {
	cfg       *models.Config
	paymentGW wallet.PaymentGW
	eventsGW  wallet.EventsGW
	repo      wallet.WalletRepo

	mu    sync.Mutex
	flows map[string]*depositFlow

	now func() time.Time
}

// NewWalletUC creates a new wallet usecase instance
func NewWalletUC(
	cfg *models.Config,
	paymentGW wallet.PaymentGW,
	eventsGW wallet.EventsGW,
	repo wallet.WalletRepo,
) *WalletUC {
	return &WalletUC{
		cfg:       cfg,
		paymentGW: paymentGW,
		eventsGW:  eventsGW,
		repo:      repo,
		flows:     make(map[string]*depositFlow),
		now:       time.Now,
	}
}

// Shutdown stops every running confirmation poll
func (uc *WalletUC) Shutdown() {
	uc.mu.Lock()
	flows := make([]*depositFlow, 0, len(uc.flows))
	for _, f := range uc.flows {
		flows = append(flows, f)
	}
	uc.flows = make(map[string]*depositFlow)
	uc.mu.Unlock()

	for _, f := range flows {
		f.countdown.Stop()
		f.confirm.Stop()
	}
}
