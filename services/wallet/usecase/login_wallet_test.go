package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	jwtpkg "github.com/ghostlabs/ghostbank/internal/pkg/jwt"
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	authmocks "github.com/ghostlabs/ghostbank/services/auth/mocks"
	authusecase "github.com/ghostlabs/ghostbank/services/auth/usecase"
	"github.com/ghostlabs/ghostbank/services/wallet/mocks"
)

// The handle the login flow persists must be the handle wallet queries
// resolve after the token round-trip, whatever casing the user typed.
func TestVerifiedLoginHandleResolvesWalletAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := testConfig()
	cfg.JWT = models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "ghostbank-test"}
	cfg.Telegram = models.TelegramConfig{PollInterval: 1, OTPTTL: 300}

	// One store behind both sides, keyed exactly as login persists
	var storeMu sync.Mutex
	store := map[string]*models.User{}

	mockBot := authmocks.NewMockBotGW(ctrl)
	mockAuthRepo := authmocks.NewMockAuthRepo(ctrl)
	mockSession := authmocks.NewMockSessionRepo(ctrl)

	mockAuthRepo.EXPECT().GetUserByHandle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, handle string) (*models.User, error) {
			storeMu.Lock()
			defer storeMu.Unlock()
			if u, ok := store[handle]; ok {
				return u, nil
			}
			return nil, apperrors.ErrNotFound
		}).AnyTimes()
	mockAuthRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			u.ID = uuid.New()
			storeMu.Lock()
			store[u.Handle] = u
			storeMu.Unlock()
			return nil
		})
	mockSession.EXPECT().SaveLastHandle(gomock.Any(), gomock.Any()).Return(nil)

	var code string
	mockBot.EXPECT().GetIdentity(gomock.Any()).
		Return(&models.BotIdentity{ID: 42, Handle: "ghost_verify_bot"}, nil)
	mockBot.EXPECT().ClearPendingUpdates(gomock.Any())
	mockBot.EXPECT().LocateChatByHandle(gomock.Any(), "@Alice").Return(int64(100), nil)
	mockBot.EXPECT().
		DeliverCode(gomock.Any(), int64(100), gomock.Any()).
		DoAndReturn(func(ctx context.Context, chatID int64, c string) (bool, error) {
			code = c
			return true, nil
		})

	authUC := authusecase.NewAuthUC(cfg, mockBot, mockAuthRepo, mockSession)
	t.Cleanup(authUC.Shutdown)

	_, err := authUC.StartLogin(context.Background(), "Alice")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		status, err := authUC.LoginStatus("Alice")
		return err == nil && status.Stage == models.StageOtp
	}, 3*time.Second, 20*time.Millisecond)

	resp, err := authUC.VerifyCode(context.Background(), "Alice", code)
	require.NoError(t, err)

	// The wallet only ever sees the token claim, not the typed handle
	claims, err := jwtpkg.ValidateToken(resp.Token, cfg.JWT.Secret)
	require.NoError(t, err)
	claimHandle, _ := (*claims)["handle"].(string)
	require.NotEmpty(t, claimHandle)

	mockWalletRepo := mocks.NewMockWalletRepo(ctrl)
	mockWalletRepo.EXPECT().GetBalance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, handle string) (decimal.Decimal, error) {
			storeMu.Lock()
			defer storeMu.Unlock()
			if u, ok := store[handle]; ok {
				return u.Balance, nil
			}
			return decimal.Zero, apperrors.ErrNotFound
		})

	walletUC := NewWalletUC(cfg, mocks.NewMockPaymentGW(ctrl), mocks.NewMockEventsGW(ctrl), mockWalletRepo)
	t.Cleanup(walletUC.Shutdown)

	balance, err := walletUC.GetBalance(context.Background(), claimHandle)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}
