package repository

import (
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/internal/pkg/retry"
	"github.com/jmoiron/sqlx"
)

// AuthRepo is the account persistence boundary. Statements run under
// the bounded store retry policy: transient transport failures only.
type AuthRepo struct {
	cfg     *models.Config
	db      *sqlx.DB
	retrier *retry.Retrier
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB) *AuthRepo {
	return &AuthRepo{
		cfg:     cfg,
		db:      db,
		retrier: retry.New(retry.StoreConfig()),
	}
}
