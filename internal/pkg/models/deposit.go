package models

import (
	"github.com/shopspring/decimal"
)

// DepositStep is the state of one deposit flow
type DepositStep string

const (
	StepForm    DepositStep = "FORM"
	StepPayment DepositStep = "PAYMENT"
	StepSuccess DepositStep = "SUCCESS"
	StepExpired DepositStep = "EXPIRED"
)

// DepositRequest starts a new deposit flow
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ResumeRequest resumes a previously pending deposit
type ResumeRequest struct {
	TransactionID string `json:"transaction_id"`
}

// DepositState reports the observable state of a deposit flow
type DepositState struct {
	TransactionID string          `json:"transaction_id"`
	Step          DepositStep     `json:"step"`
	Amount        decimal.Decimal `json:"amount"`
	PixCode       string          `json:"pix_code,omitempty"`
	QRImage       string          `json:"qr_image,omitempty"`
	RemainingSec  int             `json:"remaining_sec"`
	Error         string          `json:"error,omitempty"`
}

// WithdrawRequest asks for a transfer to an external Pix key
type WithdrawRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	PixKey  string          `json:"pix_key"`
	KeyType string          `json:"key_type"`
}

// WithdrawResult reports the ledger effect of a withdrawal
type WithdrawResult struct {
	Amount     decimal.Decimal `json:"amount"`
	Fee        decimal.Decimal `json:"fee"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// DepositCompletedEvent is published when a deposit reaches Success
type DepositCompletedEvent struct {
	TransactionID string          `json:"transaction_id"`
	UserHandle    string          `json:"user_handle"`
	Amount        decimal.Decimal `json:"amount"`
}
