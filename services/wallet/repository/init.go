package repository

import (
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/internal/pkg/retry"
	"github.com/jmoiron/sqlx"
)

// WalletRepo is the balance and ledger persistence boundary. Statements
// run under the bounded store retry policy: transient transport failures
// only.
type WalletRepo struct {
	cfg     *models.Config
	db      *sqlx.DB
	retrier *retry.Retrier
}

// NewWalletRepo creates a new wallet repository instance
func NewWalletRepo(cfg *models.Config, db *sqlx.DB) *WalletRepo {
	return &WalletRepo{
		cfg:     cfg,
		db:      db,
		retrier: retry.New(retry.StoreConfig()),
	}
}
