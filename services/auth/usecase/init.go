package usecase

import (
	"sync"

	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/services/auth"
)

// AuthUC owns one login flow per handle
type AuthUC struct {
	cfg         *models.Config
	botGW       auth.BotGW
	userRepo    auth.AuthRepo
	sessionRepo auth.SessionRepo

	mu    sync.Mutex
	flows map[string]*loginFlow
	bot   *models.BotIdentity
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	cfg *models.Config,
	botGW auth.BotGW,
	userRepo auth.AuthRepo,
	sessionRepo auth.SessionRepo,
) *AuthUC {
	return &AuthUC{
		cfg:         cfg,
		botGW:       botGW,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		flows:       make(map[string]*loginFlow),
	}
}
