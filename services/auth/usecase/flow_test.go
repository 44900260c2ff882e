package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/services/auth/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "ghostbank-test",
		},
		Telegram: models.TelegramConfig{
			PollInterval: 1,
			OTPTTL:       300,
		},
	}
}

func testBot() *models.BotIdentity {
	return &models.BotIdentity{ID: 42, DisplayName: "Ghost Verifier", Handle: "ghost_verify_bot"}
}

func setupAuthUC(t *testing.T) (*AuthUC, *mocks.MockBotGW, *mocks.MockAuthRepo, *mocks.MockSessionRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockBot := mocks.NewMockBotGW(ctrl)
	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockSession := mocks.NewMockSessionRepo(ctrl)

	uc := NewAuthUC(testConfig(), mockBot, mockRepo, mockSession)
	t.Cleanup(uc.Shutdown)

	return uc, mockBot, mockRepo, mockSession
}

func waitForStage(t *testing.T, uc *AuthUC, handle string, stage models.AuthStage) {
	t.Helper()
	require.Eventually(t, func() bool {
		status, err := uc.LoginStatus(handle)
		return err == nil && status.Stage == stage
	}, 3*time.Second, 20*time.Millisecond, "flow never reached stage %s", stage)
}

// startToOtp drives a flow to the Otp stage and returns the delivered code
func startToOtp(t *testing.T, uc *AuthUC, mockBot *mocks.MockBotGW) string {
	t.Helper()

	var code string
	mockBot.EXPECT().GetIdentity(gomock.Any()).Return(testBot(), nil)
	mockBot.EXPECT().ClearPendingUpdates(gomock.Any())
	mockBot.EXPECT().LocateChatByHandle(gomock.Any(), "@alice").Return(int64(100), nil)
	mockBot.EXPECT().
		DeliverCode(gomock.Any(), int64(100), gomock.Any()).
		DoAndReturn(func(ctx context.Context, chatID int64, c string) (bool, error) {
			code = c
			return true, nil
		})

	status, err := uc.StartLogin(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, models.StageConnecting, status.Stage)
	assert.Equal(t, "ghost_verify_bot", status.BotHandle)

	waitForStage(t, uc, "@alice", models.StageOtp)
	require.Len(t, code, 6)
	return code
}

func TestStartLogin_DeliversCodeExactlyOnce(t *testing.T) {
	uc, mockBot, _, _ := setupAuthUC(t)

	// DeliverCode is expected once; a second call would fail the mock
	startToOtp(t, uc, mockBot)

	// The poll has stopped: give a stray tick a chance to fire
	time.Sleep(1200 * time.Millisecond)

	status, err := uc.LoginStatus("alice")
	require.NoError(t, err)
	assert.Equal(t, models.StageOtp, status.Stage)
	assert.Empty(t, status.Error)
}

func TestStartLogin_EmptyHandleRejected(t *testing.T) {
	uc, _, _, _ := setupAuthUC(t)

	_, err := uc.StartLogin(context.Background(), "  @ ")
	assert.True(t, apperrors.IsValidation(err))
}

func TestStartLogin_BotUnavailable(t *testing.T) {
	uc, mockBot, _, _ := setupAuthUC(t)

	mockBot.EXPECT().GetIdentity(gomock.Any()).Return(nil, apperrors.ErrServiceUnavailable)

	_, err := uc.StartLogin(context.Background(), "alice")
	assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
}

func TestProbe_ChatNotFoundKeepsPolling(t *testing.T) {
	uc, mockBot, _, _ := setupAuthUC(t)

	mockBot.EXPECT().GetIdentity(gomock.Any()).Return(testBot(), nil)
	mockBot.EXPECT().ClearPendingUpdates(gomock.Any())
	gomock.InOrder(
		mockBot.EXPECT().LocateChatByHandle(gomock.Any(), "@alice").Return(int64(0), apperrors.ErrNotFound),
		mockBot.EXPECT().LocateChatByHandle(gomock.Any(), "@alice").Return(int64(100), nil),
	)
	mockBot.EXPECT().DeliverCode(gomock.Any(), int64(100), gomock.Any()).Return(true, nil)

	_, err := uc.StartLogin(context.Background(), "alice")
	require.NoError(t, err)

	waitForStage(t, uc, "@alice", models.StageOtp)
}

func TestProbe_DeliveryFailureReturnsToUsername(t *testing.T) {
	uc, mockBot, _, _ := setupAuthUC(t)

	mockBot.EXPECT().GetIdentity(gomock.Any()).Return(testBot(), nil)
	mockBot.EXPECT().ClearPendingUpdates(gomock.Any())
	mockBot.EXPECT().LocateChatByHandle(gomock.Any(), "@alice").Return(int64(100), nil)
	mockBot.EXPECT().DeliverCode(gomock.Any(), int64(100), gomock.Any()).Return(false, errors.New("403 forbidden"))

	_, err := uc.StartLogin(context.Background(), "alice")
	require.NoError(t, err)

	waitForStage(t, uc, "@alice", models.StageUsername)

	status, err := uc.LoginStatus("alice")
	require.NoError(t, err)
	assert.Contains(t, status.Error, "could not deliver the code")
}

func TestVerifyCode_Success(t *testing.T) {
	uc, mockBot, mockRepo, mockSession := setupAuthUC(t)

	code := startToOtp(t, uc, mockBot)

	userID := uuid.New()
	mockRepo.EXPECT().GetUserByHandle(gomock.Any(), "alice").
		Return(&models.User{ID: userID, Handle: "alice"}, nil)
	mockSession.EXPECT().SaveLastHandle(gomock.Any(), "alice").Return(nil)

	resp, err := uc.VerifyCode(context.Background(), "alice", code)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, userID.String(), resp.UserID)
	assert.Equal(t, "alice", resp.Handle)

	status, err := uc.LoginStatus("alice")
	require.NoError(t, err)
	assert.Equal(t, models.StageAuthenticated, status.Stage)
}

func TestVerifyCode_CreatesAccountOnFirstLogin(t *testing.T) {
	uc, mockBot, mockRepo, mockSession := setupAuthUC(t)

	code := startToOtp(t, uc, mockBot)

	mockRepo.EXPECT().GetUserByHandle(gomock.Any(), "alice").Return(nil, apperrors.ErrNotFound)
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			assert.Equal(t, "alice", u.Handle)
			u.ID = uuid.New()
			return nil
		})
	mockSession.EXPECT().SaveLastHandle(gomock.Any(), "alice").Return(nil)

	resp, err := uc.VerifyCode(context.Background(), "alice", code)
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Handle)
}

func TestVerifyCode_WrongCodeStaysInOtp(t *testing.T) {
	uc, mockBot, _, _ := setupAuthUC(t)

	code := startToOtp(t, uc, mockBot)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	_, err := uc.VerifyCode(context.Background(), "alice", wrong)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "incorrect code")

	// Resubmission with the right code is still possible
	status, err := uc.LoginStatus("alice")
	require.NoError(t, err)
	assert.Equal(t, models.StageOtp, status.Stage)
}

func TestVerifyCode_ExpiredCodeResetsFlow(t *testing.T) {
	uc, mockBot, _, _ := setupAuthUC(t)

	code := startToOtp(t, uc, mockBot)

	uc.mu.Lock()
	f := uc.flows["@alice"]
	uc.mu.Unlock()
	f.mu.Lock()
	f.challenge.GeneratedAt = time.Now().Add(-10 * time.Minute)
	f.mu.Unlock()

	_, err := uc.VerifyCode(context.Background(), "alice", code)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "code expired")

	status, err := uc.LoginStatus("alice")
	require.NoError(t, err)
	assert.Equal(t, models.StageUsername, status.Stage)
}

func TestVerifyCode_NoAttemptInProgress(t *testing.T) {
	uc, _, _, _ := setupAuthUC(t)

	_, err := uc.VerifyCode(context.Background(), "alice", "123456")
	assert.True(t, apperrors.IsValidation(err))
}

func TestCancel_ResetsFlowAndStopsPoll(t *testing.T) {
	uc, mockBot, _, _ := setupAuthUC(t)

	startToOtp(t, uc, mockBot)

	require.NoError(t, uc.Cancel("alice"))

	status, err := uc.LoginStatus("alice")
	require.NoError(t, err)
	assert.Equal(t, models.StageUsername, status.Stage)
	assert.Empty(t, status.Error)
}

func TestRestoreSession(t *testing.T) {
	uc, _, mockRepo, mockSession := setupAuthUC(t)

	mockSession.EXPECT().LoadLastHandle(gomock.Any()).Return("alice", nil)
	mockRepo.EXPECT().GetUserByHandle(gomock.Any(), "alice").
		Return(&models.User{Handle: "alice"}, nil)

	user, err := uc.RestoreSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Handle)
}

func TestRestoreSession_NothingStored(t *testing.T) {
	uc, _, _, mockSession := setupAuthUC(t)

	mockSession.EXPECT().LoadLastHandle(gomock.Any()).Return("", apperrors.ErrNotFound)

	_, err := uc.RestoreSession(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLogout(t *testing.T) {
	uc, _, _, mockSession := setupAuthUC(t)

	mockSession.EXPECT().ClearLastHandle(gomock.Any()).Return(nil)

	assert.NoError(t, uc.Logout(context.Background()))
}

func TestBotIdentity_CachedAfterFirstLookup(t *testing.T) {
	uc, mockBot, _, _ := setupAuthUC(t)

	mockBot.EXPECT().GetIdentity(gomock.Any()).Return(testBot(), nil).Times(1)

	first, err := uc.BotIdentity(context.Background())
	require.NoError(t, err)
	second, err := uc.BotIdentity(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
}
