package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a transfer.
// A transaction is created as pending and transitions exactly once, to
// completed or failed. Both are terminal.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// ParseTransactionStatus converts a request string into a TransactionStatus
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch TransactionStatus(strings.ToLower(s)) {
	case TransactionStatusPending:
		return TransactionStatusPending, nil
	case TransactionStatusCompleted:
		return TransactionStatusCompleted, nil
	case TransactionStatusFailed:
		return TransactionStatusFailed, nil
	default:
		return "", fmt.Errorf("invalid transaction status: %q", s)
	}
}

// IsTerminal reports whether no further status transition is allowed
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusFailed
}

// Transaction records one attempted fund movement between two users.
// Everything except Status and UpdatedAt is immutable once created.
type Transaction struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	SenderID    uuid.UUID         `json:"sender_id" db:"sender_id"`
	RecipientID uuid.UUID         `json:"recipient_id" db:"recipient_id"`
	Amount      decimal.Decimal   `json:"amount" db:"amount"`
	Currency    string            `json:"currency" db:"currency"`
	Note        *string           `json:"note,omitempty" db:"note"`
	Status      TransactionStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// TransferRequest is the payload for creating a transfer
type TransferRequest struct {
	RecipientID uuid.UUID       `json:"recipient_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Note        *string         `json:"note,omitempty"`
}

// TransactionListResponse is the paginated ledger listing envelope
type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
	Total        int64         `json:"total"`
	Page         int64         `json:"page"`
	PerPage      int64         `json:"per_page"`
}

// TransferCompletedEvent is published on NATS after a transfer commits
type TransferCompletedEvent struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	SenderID      uuid.UUID       `json:"sender_id"`
	RecipientID   uuid.UUID       `json:"recipient_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Timestamp     time.Time       `json:"timestamp"`
}
