package wallet

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/dompet/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// TxManager runs a function inside a single database transaction. Everything
// executed through the callback commits or rolls back as one unit.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

// AccountRepo is the balance store. Mutations happen either inside a caller
// supplied transaction (transfer path) or as one atomic statement (funding).
type AccountRepo interface {
	// GetAccountByUserID is an unlocked read used for display paths
	GetAccountByUserID(ctx context.Context, userID uuid.UUID) (*models.Account, error)
	// GetAccountForUpdate reads the account under an exclusive row lock held
	// until the enclosing transaction commits or rolls back
	GetAccountForUpdate(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID) (*models.Account, error)
	// ApplyDelta adds delta (positive or negative) to the balance as a single
	// atomic arithmetic update, never a read-then-write
	ApplyDelta(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, delta decimal.Decimal) error
	// CreditBalance applies a standalone out-of-band credit and returns the
	// updated account
	CreditBalance(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Account, error)
}

// TransactionRepo is the append-mostly transaction ledger
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, tx *sqlx.Tx, txn *models.Transaction) error
	// UpdateTransactionStatus performs the single allowed status transition
	// out of pending; it fails if the transaction is already terminal
	UpdateTransactionStatus(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, status models.TransactionStatus) error
	// GetTransactionForParty returns the transaction only if the party is its
	// sender or recipient
	GetTransactionForParty(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error)
	// ListTransactionsForParty returns a page ordered by creation time
	// descending plus the total count of the filtered set
	ListTransactionsForParty(ctx context.Context, userID uuid.UUID, status *models.TransactionStatus, limit, offset int) ([]models.Transaction, int64, error)
}
