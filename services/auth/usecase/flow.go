package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	jwtpkg "github.com/ghostlabs/ghostbank/internal/pkg/jwt"
	"github.com/ghostlabs/ghostbank/internal/pkg/logger"
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/internal/pkg/scheduler"
	"github.com/ghostlabs/ghostbank/internal/utils"
)

// loginFlow is the state machine for one login attempt. Exactly one
// discovery poll task may run per flow; every transition out of
// Connecting cancels it.
type loginFlow struct {
	mu        sync.Mutex
	handle    string
	stage     models.AuthStage
	challenge *models.OtpChallenge
	lastErr   string
	poll      *scheduler.TaskRunner
}

func (f *loginFlow) status(botHandle string) *models.AuthStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &models.AuthStatus{
		Handle:    f.handle,
		Stage:     f.stage,
		BotHandle: botHandle,
		Error:     f.lastErr,
	}
}

// BotIdentity returns the verification bot account, caching it after
// the first successful lookup
func (u *AuthUC) BotIdentity(ctx context.Context) (*models.BotIdentity, error) {
	u.mu.Lock()
	cached := u.bot
	u.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	bot, err := u.botGW.GetIdentity(ctx)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	u.bot = bot
	u.mu.Unlock()
	return bot, nil
}

// StartLogin begins a login attempt: it verifies the bot is reachable,
// drops stale queued updates, then enters Connecting and starts the
// discovery poll
func (u *AuthUC) StartLogin(ctx context.Context, rawHandle string) (*models.AuthStatus, error) {
	handle := utils.NormalizeHandle(rawHandle)
	if handle == "" {
		return nil, apperrors.NewValidationError("handle is required")
	}

	bot, err := u.BotIdentity(ctx)
	if err != nil {
		return nil, err
	}

	// A stale message from a prior session must not satisfy this attempt
	u.botGW.ClearPendingUpdates(ctx)

	u.mu.Lock()
	if existing, ok := u.flows[handle]; ok {
		existing.poll.Stop()
	}
	f := &loginFlow{
		handle: handle,
		stage:  models.StageConnecting,
		poll:   scheduler.NewTaskRunner(),
	}
	u.flows[handle] = f
	u.mu.Unlock()

	interval := time.Duration(u.cfg.Telegram.PollInterval) * time.Second
	f.poll.Start(context.Background(), interval, true, func(taskCtx context.Context) {
		u.probe(taskCtx, f)
	})

	logger.Info("login attempt started",
		logger.String("handle", handle),
		logger.String("bot", bot.Handle))

	return f.status(bot.Handle), nil
}

// probe runs one discovery attempt. A located chat triggers a single
// code delivery; either outcome stops the poll.
func (u *AuthUC) probe(ctx context.Context, f *loginFlow) {
	f.mu.Lock()
	if f.stage != models.StageConnecting {
		f.mu.Unlock()
		return
	}
	handle := f.handle
	f.mu.Unlock()

	chatID, err := u.botGW.LocateChatByHandle(ctx, handle)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("chat discovery probe failed",
				logger.String("handle", handle),
				logger.Err(err))
		}
		return
	}

	f.mu.Lock()
	if f.stage != models.StageConnecting {
		f.mu.Unlock()
		return
	}
	code := utils.GenerateOTPCode()
	f.challenge = &models.OtpChallenge{
		Handle:      handle,
		Code:        code,
		ChatID:      chatID,
		GeneratedAt: time.Now(),
	}
	f.mu.Unlock()

	delivered, err := u.botGW.DeliverCode(ctx, chatID, code)

	f.mu.Lock()
	if delivered {
		f.stage = models.StageOtp
		f.lastErr = ""
	} else {
		// Delivery failure is a persistent block (blocked bot, revoked
		// chat), not a transient gap: no automatic retry
		f.stage = models.StageUsername
		f.challenge = nil
		f.lastErr = "the bot found your chat but could not deliver the code"
		if err != nil {
			logger.Warn("code delivery failed",
				logger.String("handle", handle),
				logger.Err(err))
		}
	}
	f.mu.Unlock()

	// Tearing down from inside our own tick
	f.poll.StopAsync()
}

// LoginStatus reports the current stage of a login attempt
func (u *AuthUC) LoginStatus(rawHandle string) (*models.AuthStatus, error) {
	handle := utils.NormalizeHandle(rawHandle)

	u.mu.Lock()
	f, ok := u.flows[handle]
	bot := u.bot
	u.mu.Unlock()
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	botHandle := ""
	if bot != nil {
		botHandle = bot.Handle
	}
	return f.status(botHandle), nil
}

// VerifyCode compares the submitted code against the generated
// challenge and authenticates on an exact match
func (u *AuthUC) VerifyCode(ctx context.Context, rawHandle, code string) (*models.AuthResponse, error) {
	handle := utils.NormalizeHandle(rawHandle)

	u.mu.Lock()
	f, ok := u.flows[handle]
	u.mu.Unlock()
	if !ok {
		return nil, apperrors.NewValidationError("no login attempt in progress")
	}

	f.mu.Lock()
	if f.stage != models.StageOtp || f.challenge == nil {
		f.mu.Unlock()
		return nil, apperrors.NewValidationError("no code has been delivered yet")
	}

	ttl := time.Duration(u.cfg.Telegram.OTPTTL) * time.Second
	if f.challenge.Expired(ttl, time.Now()) {
		f.stage = models.StageUsername
		f.challenge = nil
		f.lastErr = "code expired"
		f.mu.Unlock()
		f.poll.Stop()
		return nil, apperrors.NewValidationError("code expired, start over")
	}

	if code != f.challenge.Code {
		// Stay in Otp: the user may resubmit without a new code
		f.mu.Unlock()
		return nil, apperrors.NewValidationError("incorrect code")
	}
	f.mu.Unlock()

	user, err := u.resolveUser(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Handle, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := u.sessionRepo.SaveLastHandle(ctx, user.Handle); err != nil {
		logger.Warn("failed to store session handle", logger.Err(err))
	}

	f.mu.Lock()
	f.stage = models.StageAuthenticated
	f.challenge = nil
	f.lastErr = ""
	f.mu.Unlock()
	f.poll.Stop()

	logger.Info("login verified", logger.String("handle", handle))

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		Handle:    user.Handle,
		ExpiresAt: expiresAt,
	}, nil
}

// resolveUser fetches the account for a handle, creating it on first
// login. Accounts are stored under the bare lowercase handle, the same
// form a token claim resolves to, so the display form never reaches
// the database.
func (u *AuthUC) resolveUser(ctx context.Context, handle string) (*models.User, error) {
	account := utils.BareHandle(handle)
	user, err := u.userRepo.GetUserByHandle(ctx, account)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	user = &models.User{Handle: account}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Cancel aborts a login attempt: the poll stops, the code is cleared
// and the flow returns to Username. Nothing has been persisted yet, so
// no compensating action is needed.
func (u *AuthUC) Cancel(rawHandle string) error {
	handle := utils.NormalizeHandle(rawHandle)

	u.mu.Lock()
	f, ok := u.flows[handle]
	u.mu.Unlock()
	if !ok {
		return nil
	}

	f.poll.Stop()

	f.mu.Lock()
	f.stage = models.StageUsername
	f.challenge = nil
	f.lastErr = ""
	f.mu.Unlock()

	return nil
}

// RestoreSession resolves the last authenticated handle stored on this
// device, if any
func (u *AuthUC) RestoreSession(ctx context.Context) (*models.User, error) {
	handle, err := u.sessionRepo.LoadLastHandle(ctx)
	if err != nil {
		return nil, err
	}
	return u.userRepo.GetUserByHandle(ctx, handle)
}

// Logout clears the stored session handle
func (u *AuthUC) Logout(ctx context.Context) error {
	return u.sessionRepo.ClearLastHandle(ctx)
}

// Shutdown cancels every running discovery poll
func (u *AuthUC) Shutdown() {
	u.mu.Lock()
	flows := make([]*loginFlow, 0, len(u.flows))
	for _, f := range u.flows {
		flows = append(flows, f)
	}
	u.mu.Unlock()

	for _, f := range flows {
		f.poll.Stop()
	}
}
