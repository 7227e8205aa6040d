package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account holds a single user's balance in one currency.
// Balances are exact decimals; they are never represented as floats anywhere,
// including on the wire (shopspring/decimal marshals as a quoted string).
type Account struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	Currency  string          `json:"currency" db:"currency"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// BalanceResponse is the display shape for the balance endpoint
type BalanceResponse struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// FundRequest represents an administrative balance credit request
type FundRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// AccountFundedEvent is published on NATS after an out-of-band credit
type AccountFundedEvent struct {
	UserID    uuid.UUID       `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Timestamp time.Time       `json:"timestamp"`
}

// FundResponse reports the account state after an administrative credit.
// Funding is a standalone balance adjustment: it deliberately creates no
// transaction row, so the response flags it as out-of-band.
type FundResponse struct {
	UserID    uuid.UUID       `json:"user_id"`
	Credited  decimal.Decimal `json:"credited"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	OutOfBand bool            `json:"out_of_band"`
}
