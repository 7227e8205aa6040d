package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/dompet/internal/pkg/apperrors"
	"github.com/piresc/dompet/internal/pkg/models"
	"github.com/piresc/dompet/services/wallet"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, user_id, balance, currency, created_at, updated_at`

// PostgresAccountRepo implements the wallet.AccountRepo interface
type PostgresAccountRepo struct {
	db *sqlx.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *sqlx.DB) wallet.AccountRepo {
	return &PostgresAccountRepo{db: db}
}

// GetAccountByUserID retrieves an account without locking it
func (r *PostgresAccountRepo) GetAccountByUserID(ctx context.Context, userID uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := r.db.GetContext(ctx, &account, fmt.Sprintf(`
		SELECT %s FROM accounts WHERE user_id = $1
	`, accountColumns), userID)
	if err != nil {
		return nil, apperrors.FromDB(err, "account not found")
	}

	return &account, nil
}

// GetAccountForUpdate retrieves an account under an exclusive row lock.
// The lock is held until the enclosing transaction commits or rolls back;
// concurrent lockers on the same account block here.
func (r *PostgresAccountRepo) GetAccountForUpdate(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := tx.GetContext(ctx, &account, fmt.Sprintf(`
		SELECT %s FROM accounts WHERE user_id = $1 FOR UPDATE
	`, accountColumns), userID)
	if err != nil {
		return nil, apperrors.FromDB(err, "account not found")
	}

	return &account, nil
}

// ApplyDelta adds delta to the balance as one atomic arithmetic update.
// The increment happens at the storage layer, so concurrent credits to the
// same account cannot interleave a read-modify-write.
func (r *PostgresAccountRepo) ApplyDelta(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, delta decimal.Decimal) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE accounts
		SET balance = balance + $1, updated_at = NOW()
		WHERE user_id = $2
	`, delta, userID)
	if err != nil {
		return apperrors.FromDB(err, "account not found")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternal("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFound("account not found")
	}

	return nil
}

// CreditBalance applies a standalone atomic credit outside any transfer and
// returns the updated account
func (r *PostgresAccountRepo) CreditBalance(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Account, error) {
	var account models.Account
	err := r.db.GetContext(ctx, &account, fmt.Sprintf(`
		UPDATE accounts
		SET balance = balance + $1, updated_at = NOW()
		WHERE user_id = $2
		RETURNING %s
	`, accountColumns), amount, userID)
	if err != nil {
		return nil, apperrors.FromDB(err, "account not found")
	}

	return &account, nil
}
