package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/internal/pkg/retry"
)

func setupWalletRepoTest(t *testing.T) (*WalletRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	repo := &WalletRepo{
		cfg:     &models.Config{},
		db:      sqlxDB,
		retrier: retry.New(retry.StoreConfig()),
	}
	return repo, mock
}

func TestGetBalance(t *testing.T) {
	repo, mock := setupWalletRepoTest(t)

	rows := sqlmock.NewRows([]string{"balance"}).AddRow("150.75")
	mock.ExpectQuery("^SELECT balance").
		WithArgs("alice").
		WillReturnRows(rows)

	balance, err := repo.GetBalance(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("150.75")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBalance_UnknownHandle(t *testing.T) {
	repo, mock := setupWalletRepoTest(t)

	mock.ExpectQuery("^SELECT balance").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"balance"}))

	_, err := repo.GetBalance(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateBalance(t *testing.T) {
	repo, mock := setupWalletRepoTest(t)

	mock.ExpectExec("^UPDATE users").
		WithArgs(decimal.RequireFromString("88"), "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateBalance(context.Background(), "alice", decimal.RequireFromString("88"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBalance_UnknownHandle(t *testing.T) {
	repo, mock := setupWalletRepoTest(t)

	mock.ExpectExec("^UPDATE users").
		WithArgs(decimal.RequireFromString("88"), "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateBalance(context.Background(), "ghost", decimal.RequireFromString("88"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateTransaction(t *testing.T) {
	repo, mock := setupWalletRepoTest(t)

	mock.ExpectExec("^INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx := &models.Transaction{
		ID:          "dep_1700000000000",
		UserHandle:  "alice",
		Type:        models.TransactionDeposit,
		Amount:      decimal.RequireFromString("10.00"),
		Status:      models.TransactionPending,
		Description: "Pix deposit",
		PixCode:     "000201pixcode",
		CreatedAt:   time.Now(),
	}
	err := repo.CreateTransaction(context.Background(), tx)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransaction(t *testing.T) {
	repo, mock := setupWalletRepoTest(t)

	createdAt := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_handle", "type", "amount", "status", "description", "pix_code", "pix_qr_image", "created_at"}).
		AddRow("dep_1700000000000", "alice", "DEPOSIT", "10.00", "PENDING", "Pix deposit", "000201pixcode", "", createdAt)
	mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE id").
		WithArgs("dep_1700000000000").
		WillReturnRows(rows)

	tx, err := repo.GetTransaction(context.Background(), "dep_1700000000000")
	require.NoError(t, err)
	assert.Equal(t, "alice", tx.UserHandle)
	assert.Equal(t, models.TransactionPending, tx.Status)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("10.00")))
}

func TestGetTransaction_NotFound(t *testing.T) {
	repo, mock := setupWalletRepoTest(t)

	mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetTransaction(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateTransactionStatus(t *testing.T) {
	repo, mock := setupWalletRepoTest(t)

	mock.ExpectExec("^UPDATE transactions").
		WithArgs(models.TransactionCompleted, "dep_1700000000000").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTransactionStatus(context.Background(), "dep_1700000000000", models.TransactionCompleted)
	assert.NoError(t, err)
}

func TestUpdateTransactionStatus_MissingRow(t *testing.T) {
	repo, mock := setupWalletRepoTest(t)

	mock.ExpectExec("^UPDATE transactions").
		WithArgs(models.TransactionCompleted, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTransactionStatus(context.Background(), "missing", models.TransactionCompleted)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListTransactionsByHandle(t *testing.T) {
	repo, mock := setupWalletRepoTest(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_handle", "type", "amount", "status", "description", "pix_code", "pix_qr_image", "created_at"}).
		AddRow("wd_2", "alice", "WITHDRAW", "100", "COMPLETED", "Pix withdrawal to email key", "", "", now).
		AddRow("fee_2", "alice", "FEE", "12", "COMPLETED", "Withdrawal service fee", "", "", now.Add(-time.Second)).
		AddRow("dep_1", "alice", "DEPOSIT", "10.00", "COMPLETED", "Pix deposit", "000201pixcode", "", now.Add(-time.Hour))
	mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE user_handle").
		WithArgs("alice").
		WillReturnRows(rows)

	transactions, err := repo.ListTransactionsByHandle(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, transactions, 3)
	assert.Equal(t, "wd_2", transactions[0].ID)
	assert.Equal(t, models.TransactionWithdraw, transactions[0].Type)
	assert.Equal(t, "dep_1", transactions[2].ID)
}

func TestListTransactionsByHandle_Empty(t *testing.T) {
	repo, mock := setupWalletRepoTest(t)

	mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE user_handle").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_handle", "type", "amount", "status", "description", "pix_code", "pix_qr_image", "created_at"}))

	transactions, err := repo.ListTransactionsByHandle(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, transactions)
}
