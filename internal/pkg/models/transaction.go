package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry
type TransactionType string

const (
	TransactionDeposit  TransactionType = "DEPOSIT"
	TransactionWithdraw TransactionType = "WITHDRAW"
	TransactionPayment  TransactionType = "PAYMENT"
	TransactionFee      TransactionType = "FEE"
)

// TransactionStatus is the lifecycle state of a ledger entry
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
)

// Transaction represents a single ledger entry owned by one user.
// Deposit rows are created Pending and flipped to Completed by the
// confirmation poll; Withdraw and Fee rows are written already Completed.
type Transaction struct {
	ID          string            `json:"id" db:"id"`
	UserHandle  string            `json:"user_handle" db:"user_handle"`
	Type        TransactionType   `json:"type" db:"type"`
	Amount      decimal.Decimal   `json:"amount" db:"amount"`
	Status      TransactionStatus `json:"status" db:"status"`
	Description string            `json:"description" db:"description"`
	PixCode     string            `json:"pix_code,omitempty" db:"pix_code"`
	PixQRImage  string            `json:"pix_qr_image,omitempty" db:"pix_qr_image"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
}
