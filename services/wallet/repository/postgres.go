package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/dompet/internal/pkg/apperrors"
	"github.com/piresc/dompet/services/wallet"
)

// SQLTxManager implements wallet.TxManager on top of sqlx transactions
type SQLTxManager struct {
	db *sqlx.DB
}

// NewTxManager creates a new transaction manager
func NewTxManager(db *sqlx.DB) wallet.TxManager {
	return &SQLTxManager{db: db}
}

// WithinTx begins a database transaction, runs fn inside it and commits.
// Any error from fn rolls the whole unit back: no balance change or
// transaction row from a failed unit is ever visible to other observers.
func (m *SQLTxManager) WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.NewInternal("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternal("failed to commit transaction", err)
	}

	return nil
}
