package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/dompet/internal/pkg/apperrors"
	"github.com/piresc/dompet/internal/pkg/models"
	"github.com/piresc/dompet/services/wallet"
)

const transactionColumns = `id, sender_id, recipient_id, amount, currency, note, status, created_at, updated_at`

// PostgresTransactionRepo implements the wallet.TransactionRepo interface
type PostgresTransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sqlx.DB) wallet.TransactionRepo {
	return &PostgresTransactionRepo{db: db}
}

// CreateTransaction inserts a new transaction row inside the caller's
// database transaction
func (r *PostgresTransactionRepo) CreateTransaction(ctx context.Context, tx *sqlx.Tx, txn *models.Transaction) error {
	_, err := tx.NamedExecContext(ctx, `
		INSERT INTO transactions (
			id, sender_id, recipient_id, amount, currency,
			note, status, created_at, updated_at
		) VALUES (
			:id, :sender_id, :recipient_id, :amount, :currency,
			:note, :status, :created_at, :updated_at
		)
	`, txn)
	if err != nil {
		return apperrors.NewInternal("failed to create transaction", err)
	}

	return nil
}

// UpdateTransactionStatus moves a pending transaction to a terminal status.
// The WHERE clause refuses to touch rows that already left pending, so a
// status can never transition twice.
func (r *PostgresTransactionRepo) UpdateTransactionStatus(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, status models.TransactionStatus) error {
	if !status.IsTerminal() {
		return apperrors.NewInternal(fmt.Sprintf("invalid status transition to %q", status), nil)
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE transactions
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, status, id, models.TransactionStatusPending)
	if err != nil {
		return apperrors.NewInternal("failed to update transaction status", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternal("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewInternal("transaction is not pending", nil)
	}

	return nil
}

// GetTransactionForParty retrieves a transaction visible to the given party.
// A transaction exists for a party only if they sent or received it.
func (r *PostgresTransactionRepo) GetTransactionForParty(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, fmt.Sprintf(`
		SELECT %s FROM transactions
		WHERE id = $1 AND (sender_id = $2 OR recipient_id = $2)
	`, transactionColumns), id, userID)
	if err != nil {
		return nil, apperrors.FromDB(err, "transaction not found")
	}

	return &txn, nil
}

// ListTransactionsForParty returns a page of the party's transactions ordered
// by creation time descending, plus the total count of the filtered set
// independent of pagination.
func (r *PostgresTransactionRepo) ListTransactionsForParty(ctx context.Context, userID uuid.UUID, status *models.TransactionStatus, limit, offset int) ([]models.Transaction, int64, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM transactions
		WHERE (sender_id = $1 OR recipient_id = $1)
	`, transactionColumns)
	countQuery := `
		SELECT COUNT(*) FROM transactions
		WHERE (sender_id = $1 OR recipient_id = $1)
	`
	args := []interface{}{userID}

	if status != nil {
		query += ` AND status = $2`
		countQuery += ` AND status = $2`
		args = append(args, *status)
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)

	transactions := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query, append(args, limit, offset)...); err != nil {
		return nil, 0, apperrors.NewInternal("failed to list transactions", err)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, apperrors.NewInternal("failed to count transactions", err)
	}

	return transactions, total, nil
}
