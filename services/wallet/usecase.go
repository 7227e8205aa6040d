package wallet

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/dompet/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// WalletUC is the wallet operation surface invoked by the handler layer.
// Callers are already authenticated; every method takes a verified user ID.
type WalletUC interface {
	// GetBalance returns the caller's account
	GetBalance(ctx context.Context, userID uuid.UUID) (*models.Account, error)
	// Transfer moves funds from the sender to the recipient exactly once.
	// There is no idempotency key: retrying a failed call is only safe if the
	// caller has confirmed the original attempt did not commit.
	Transfer(ctx context.Context, senderID uuid.UUID, req *models.TransferRequest) (*models.Transaction, error)
	// GetTransaction returns a transaction visible to the requesting party
	GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error)
	// ListTransactions returns the party's paginated transfer history
	ListTransactions(ctx context.Context, userID uuid.UUID, statusFilter string, limit, offset int) (*models.TransactionListResponse, error)
	// Fund applies a privileged out-of-band credit to an account
	Fund(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Account, error)
}
