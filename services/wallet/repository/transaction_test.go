package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/dompet/internal/pkg/apperrors"
	"github.com/piresc/dompet/internal/pkg/models"
)

func transactionRows(txn *models.Transaction) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "sender_id", "recipient_id", "amount", "currency",
		"note", "status", "created_at", "updated_at",
	}).AddRow(
		txn.ID, txn.SenderID, txn.RecipientID, txn.Amount.String(), txn.Currency,
		txn.Note, txn.Status, txn.CreatedAt, txn.UpdatedAt,
	)
}

func sampleTransaction(status models.TransactionStatus) *models.Transaction {
	now := time.Now()
	return &models.Transaction{
		ID:          uuid.New(),
		SenderID:    uuid.New(),
		RecipientID: uuid.New(),
		Amount:      decimal.NewFromInt(60),
		Currency:    "USD",
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreateTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	txn := sampleTransaction(models.TransactionStatusPending)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO transactions`).
		WithArgs(
			txn.ID, txn.SenderID, txn.RecipientID, txn.Amount, txn.Currency,
			nil, txn.Status, txn.CreatedAt, txn.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.BeginTxx(context.Background(), nil)
	require.NoError(t, err)

	require.NoError(t, repo.CreateTransaction(context.Background(), tx, txn))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTransactionStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	transactionID := uuid.New()

	t.Run("marks a pending transaction completed", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE transactions SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3`).
			WithArgs(models.TransactionStatusCompleted, transactionID, models.TransactionStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.BeginTxx(context.Background(), nil)
		require.NoError(t, err)

		require.NoError(t, repo.UpdateTransactionStatus(context.Background(), tx, transactionID, models.TransactionStatusCompleted))
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refuses a non-terminal target status", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		tx, err := db.BeginTxx(context.Background(), nil)
		require.NoError(t, err)

		err = repo.UpdateTransactionStatus(context.Background(), tx, transactionID, models.TransactionStatusPending)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindInternal, apperrors.AsAppError(err).Kind)

		require.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refuses to touch a transaction that already left pending", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE transactions SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3`).
			WithArgs(models.TransactionStatusFailed, transactionID, models.TransactionStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		tx, err := db.BeginTxx(context.Background(), nil)
		require.NoError(t, err)

		err = repo.UpdateTransactionStatus(context.Background(), tx, transactionID, models.TransactionStatusFailed)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not pending")

		require.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetTransactionForParty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	txn := sampleTransaction(models.TransactionStatusCompleted)

	t.Run("visible to a party", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM transactions WHERE id = \$1 AND \(sender_id = \$2 OR recipient_id = \$2\)`).
			WithArgs(txn.ID, txn.SenderID).
			WillReturnRows(transactionRows(txn))

		got, err := repo.GetTransactionForParty(context.Background(), txn.ID, txn.SenderID)
		require.NoError(t, err)
		assert.Equal(t, txn.ID, got.ID)
		assert.Equal(t, models.TransactionStatusCompleted, got.Status)
		assert.True(t, got.Amount.Equal(txn.Amount))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invisible to a stranger", func(t *testing.T) {
		strangerID := uuid.New()
		mock.ExpectQuery(`SELECT (.+) FROM transactions WHERE id = \$1 AND \(sender_id = \$2 OR recipient_id = \$2\)`).
			WithArgs(txn.ID, strangerID).
			WillReturnError(sql.ErrNoRows)

		got, err := repo.GetTransactionForParty(context.Background(), txn.ID, strangerID)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.Equal(t, apperrors.KindNotFound, apperrors.AsAppError(err).Kind)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListTransactionsForParty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	userID := uuid.New()

	t.Run("without status filter", func(t *testing.T) {
		txn := sampleTransaction(models.TransactionStatusCompleted)
		txn.SenderID = userID

		mock.ExpectQuery(`SELECT (.+) FROM transactions WHERE \(sender_id = \$1 OR recipient_id = \$1\) ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
			WithArgs(userID, 10, 0).
			WillReturnRows(transactionRows(txn))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM transactions WHERE \(sender_id = \$1 OR recipient_id = \$1\)`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

		transactions, total, err := repo.ListTransactionsForParty(context.Background(), userID, nil, 10, 0)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, txn.ID, transactions[0].ID)
		assert.Equal(t, int64(25), total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with status filter", func(t *testing.T) {
		status := models.TransactionStatusFailed

		mock.ExpectQuery(`SELECT (.+) FROM transactions WHERE \(sender_id = \$1 OR recipient_id = \$1\) AND status = \$2 ORDER BY created_at DESC LIMIT \$3 OFFSET \$4`).
			WithArgs(userID, status, 20, 40).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "sender_id", "recipient_id", "amount", "currency",
				"note", "status", "created_at", "updated_at",
			}))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM transactions WHERE \(sender_id = \$1 OR recipient_id = \$1\) AND status = \$2`).
			WithArgs(userID, status).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		transactions, total, err := repo.ListTransactionsForParty(context.Background(), userID, &status, 20, 40)
		require.NoError(t, err)
		assert.Empty(t, transactions)
		assert.Equal(t, int64(0), total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
