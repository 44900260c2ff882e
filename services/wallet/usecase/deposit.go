package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	"github.com/ghostlabs/ghostbank/internal/pkg/logger"
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/internal/pkg/scheduler"
	"github.com/ghostlabs/ghostbank/internal/utils"
	"github.com/shopspring/decimal"
)

// depositFlow is one live deposit: a pending charge, its countdown and
// its confirmation poll
type depositFlow struct {
	mu sync.Mutex

	handle        string
	transactionID string
	amount        decimal.Decimal
	pixCode       string
	qrImage       string

	step     models.DepositStep
	deadline time.Time
	lastErr  string

	countdown *scheduler.TaskRunner
	confirm   *scheduler.TaskRunner
}

func (f *depositFlow) state(now time.Time) *models.DepositState {
	f.mu.Lock()
	defer f.mu.Unlock()

	remaining := 0
	if f.step == models.StepPayment {
		remaining = int(f.deadline.Sub(now).Seconds())
		if remaining < 0 {
			remaining = 0
		}
	}

	return &models.DepositState{
		TransactionID: f.transactionID,
		Step:          f.step,
		Amount:        f.amount,
		PixCode:       f.pixCode,
		QRImage:       f.qrImage,
		RemainingSec:  remaining,
		Error:         f.lastErr,
	}
}

// StartDeposit creates a payment charge, persists a pending transaction
// and starts the countdown and confirmation tasks
func (uc *WalletUC) StartDeposit(ctx context.Context, handle string, req *models.DepositRequest) (*models.DepositState, error) {
	if req == nil || !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("deposit amount must be positive")
	}
	handle = utils.BareHandle(handle)

	// The slot is claimed before the charge is created, so a concurrent
	// start for the same handle cannot issue a second charge
	flow := &depositFlow{
		handle:    handle,
		amount:    req.Amount,
		step:      models.StepForm,
		countdown: scheduler.NewTaskRunner(),
		confirm:   scheduler.NewTaskRunner(),
	}

	uc.mu.Lock()
	old := uc.flows[handle]
	if old != nil {
		switch old.state(uc.now()).Step {
		case models.StepForm, models.StepPayment:
			uc.mu.Unlock()
			return nil, apperrors.NewValidationError("a deposit is already in progress")
		}
	}
	uc.flows[handle] = flow
	uc.mu.Unlock()

	if old != nil {
		old.countdown.Stop()
		old.confirm.Stop()
	}

	payer := models.PixPayer{
		Name:     handle,
		Email:    handle + "@users.ghostbank.app",
		Document: utils.GenerateCPF(),
	}
	charge, err := uc.paymentGW.CreateCharge(ctx, req.Amount, payer)
	if err != nil {
		uc.releaseFlow(flow)
		return nil, err
	}

	qrImage := charge.QRImageSource(uc.cfg.Payment.QRRenderURL)
	now := uc.now()
	tx := &models.Transaction{
		ID:          charge.TransactionID,
		UserHandle:  handle,
		Type:        models.TransactionDeposit,
		Amount:      req.Amount,
		Status:      models.TransactionPending,
		Description: "Pix deposit",
		PixCode:     charge.Pix.Code,
		PixQRImage:  qrImage,
		CreatedAt:   now,
	}
	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		uc.releaseFlow(flow)
		return nil, err
	}

	flow.mu.Lock()
	flow.transactionID = charge.TransactionID
	flow.pixCode = charge.Pix.Code
	flow.qrImage = qrImage
	flow.deadline = now.Add(time.Duration(uc.cfg.Payment.ChargeTTL) * time.Second)
	flow.step = models.StepPayment
	flow.mu.Unlock()

	uc.startTasks(flow)

	logger.Info("deposit started",
		logger.String("handle", handle),
		logger.String("transaction_id", flow.transactionID))

	return flow.state(uc.now()), nil
}

// ResumeDeposit re-attaches to a pending deposit after a reload,
// reconstructing the charge presentation from the stored transaction
func (uc *WalletUC) ResumeDeposit(ctx context.Context, handle string, req *models.ResumeRequest) (*models.DepositState, error) {
	if req == nil || req.TransactionID == "" {
		return nil, apperrors.NewValidationError("transaction_id is required")
	}
	handle = utils.BareHandle(handle)

	tx, err := uc.repo.GetTransaction(ctx, req.TransactionID)
	if err != nil {
		return nil, err
	}
	if tx.UserHandle != handle || tx.Type != models.TransactionDeposit {
		return nil, apperrors.ErrNotFound
	}

	if tx.Status == models.TransactionCompleted {
		return &models.DepositState{
			TransactionID: tx.ID,
			Step:          models.StepSuccess,
			Amount:        tx.Amount,
		}, nil
	}

	deadline := tx.CreatedAt.Add(time.Duration(uc.cfg.Payment.ChargeTTL) * time.Second)
	if !deadline.After(uc.now()) {
		// Too old to watch again: report expiry without starting any task
		return &models.DepositState{
			TransactionID: tx.ID,
			Step:          models.StepExpired,
			Amount:        tx.Amount,
		}, nil
	}

	flow := &depositFlow{
		handle:        handle,
		transactionID: tx.ID,
		amount:        tx.Amount,
		pixCode:       tx.PixCode,
		qrImage:       tx.PixQRImage,
		step:          models.StepPayment,
		deadline:      deadline,
		countdown:     scheduler.NewTaskRunner(),
		confirm:       scheduler.NewTaskRunner(),
	}

	uc.installFlow(handle, flow)
	uc.startTasks(flow)

	logger.Info("deposit resumed",
		logger.String("handle", handle),
		logger.String("transaction_id", flow.transactionID))

	return flow.state(uc.now()), nil
}

// CurrentDeposit reports the state of the active deposit flow
func (uc *WalletUC) CurrentDeposit(handle string) (*models.DepositState, error) {
	uc.mu.Lock()
	flow, ok := uc.flows[utils.BareHandle(handle)]
	uc.mu.Unlock()

	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return flow.state(uc.now()), nil
}

// CancelDeposit abandons the active flow. The charge is not voided: the
// transaction stays pending and can still be resumed and confirmed.
func (uc *WalletUC) CancelDeposit(handle string) error {
	handle = utils.BareHandle(handle)

	uc.mu.Lock()
	flow, ok := uc.flows[handle]
	delete(uc.flows, handle)
	uc.mu.Unlock()

	if !ok {
		return apperrors.ErrNotFound
	}

	flow.countdown.Stop()
	flow.confirm.Stop()
	return nil
}

// releaseFlow frees the slot held by a flow that never reached Payment
func (uc *WalletUC) releaseFlow(flow *depositFlow) {
	uc.mu.Lock()
	if uc.flows[flow.handle] == flow {
		delete(uc.flows, flow.handle)
	}
	uc.mu.Unlock()
}

// installFlow replaces any previous flow for the handle, stopping its tasks
func (uc *WalletUC) installFlow(handle string, flow *depositFlow) {
	uc.mu.Lock()
	old := uc.flows[handle]
	uc.flows[handle] = flow
	uc.mu.Unlock()

	if old != nil {
		old.countdown.Stop()
		old.confirm.Stop()
	}
}

func (uc *WalletUC) startTasks(flow *depositFlow) {
	flow.countdown.Start(context.Background(), time.Second, false, func(ctx context.Context) {
		uc.countdownTick(flow)
	})
	flow.confirm.Start(context.Background(),
		time.Duration(uc.cfg.Payment.PollInterval)*time.Second, false,
		func(ctx context.Context) {
			uc.confirmTick(ctx, flow)
		})
}

// countdownTick forces expiry when the deadline passes, independent of
// the confirmation poll
func (uc *WalletUC) countdownTick(flow *depositFlow) {
	flow.mu.Lock()
	if flow.step != models.StepPayment {
		flow.mu.Unlock()
		return
	}
	if flow.deadline.After(uc.now()) {
		flow.mu.Unlock()
		return
	}
	flow.step = models.StepExpired
	flow.mu.Unlock()

	logger.Info("deposit expired",
		logger.String("handle", flow.handle),
		logger.String("transaction_id", flow.transactionID))

	flow.countdown.StopAsync()
	flow.confirm.StopAsync()
}

// confirmTick checks whether the charge has been paid. The persisted
// status is consulted first: a transaction already Completed settles the
// flow without a gateway call and without a second credit.
func (uc *WalletUC) confirmTick(ctx context.Context, flow *depositFlow) {
	flow.mu.Lock()
	if flow.step != models.StepPayment {
		flow.mu.Unlock()
		return
	}
	flow.mu.Unlock()

	tx, err := uc.repo.GetTransaction(ctx, flow.transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("confirmation poll: transaction lookup failed",
				logger.String("transaction_id", flow.transactionID),
				logger.Err(err))
		}
		return
	}
	if tx.Status == models.TransactionCompleted {
		uc.succeed(flow)
		return
	}

	status, err := uc.paymentGW.QueryStatus(ctx, flow.transactionID)
	if err != nil {
		// Transient gateway trouble: the next tick tries again
		logger.Warn("confirmation poll: status query failed",
			logger.String("transaction_id", flow.transactionID),
			logger.Err(err))
		return
	}
	if status != models.PaymentPaid {
		return
	}

	uc.settle(ctx, flow)
}

// settle credits a freshly paid charge: the transaction flips to
// Completed before the balance moves, so a crashed settlement is caught
// by the local short-circuit on the next resume instead of paying twice.
// The balance read-then-write is not transactional.
func (uc *WalletUC) settle(ctx context.Context, flow *depositFlow) {
	if err := uc.repo.UpdateTransactionStatus(ctx, flow.transactionID, models.TransactionCompleted); err != nil {
		logger.Error("settlement: failed to complete transaction",
			logger.String("transaction_id", flow.transactionID),
			logger.Err(err))
		return
	}

	balance, err := uc.repo.GetBalance(ctx, flow.handle)
	if err != nil {
		logger.Error("settlement: failed to read balance",
			logger.String("handle", flow.handle),
			logger.Err(err))
		return
	}
	if err := uc.repo.UpdateBalance(ctx, flow.handle, balance.Add(flow.amount)); err != nil {
		logger.Error("settlement: failed to credit balance",
			logger.String("handle", flow.handle),
			logger.Err(err))
		return
	}

	_ = uc.eventsGW.DepositCompleted(&models.DepositCompletedEvent{
		TransactionID: flow.transactionID,
		UserHandle:    flow.handle,
		Amount:        flow.amount,
	})

	logger.Info("deposit settled",
		logger.String("handle", flow.handle),
		logger.String("transaction_id", flow.transactionID))

	uc.succeed(flow)
}

// succeed moves the flow to Success and schedules its removal, leaving
// the state observable long enough for a final poll to render it
func (uc *WalletUC) succeed(flow *depositFlow) {
	flow.mu.Lock()
	if flow.step != models.StepPayment {
		flow.mu.Unlock()
		return
	}
	flow.step = models.StepSuccess
	flow.mu.Unlock()

	flow.countdown.StopAsync()
	flow.confirm.StopAsync()

	time.AfterFunc(time.Duration(uc.cfg.Payment.SuccessCloseMs)*time.Millisecond, func() {
		uc.mu.Lock()
		if uc.flows[flow.handle] == flow {
			delete(uc.flows, flow.handle)
		}
		uc.mu.Unlock()
	})
}
