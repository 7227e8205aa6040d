package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/dompet/internal/pkg/apperrors"
	"github.com/piresc/dompet/internal/pkg/logger"
	"github.com/piresc/dompet/internal/pkg/models"
	"github.com/piresc/dompet/services/wallet"
	"github.com/shopspring/decimal"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
	maxNoteLength    = 200
)

// WalletUC implements the wallet.WalletUC interface
type WalletUC struct {
	cfg             *models.Config
	txManager       wallet.TxManager
	accountRepo     wallet.AccountRepo
	transactionRepo wallet.TransactionRepo
	walletGW        wallet.WalletGW
	logger          *logger.ZapLogger
}

// NewWalletUC creates a new wallet use case
func NewWalletUC(
	cfg *models.Config,
	txManager wallet.TxManager,
	accountRepo wallet.AccountRepo,
	transactionRepo wallet.TransactionRepo,
	walletGW wallet.WalletGW,
	zapLogger *logger.ZapLogger,
) wallet.WalletUC {
	return &WalletUC{
		cfg:             cfg,
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		walletGW:        walletGW,
		logger:          zapLogger,
	}
}

// GetBalance returns the caller's account
func (uc *WalletUC) GetBalance(ctx context.Context, userID uuid.UUID) (*models.Account, error) {
	return uc.accountRepo.GetAccountByUserID(ctx, userID)
}

// Transfer moves funds from sender to recipient inside one database
// transaction: lock the sender row, re-validate balance and currency under
// the lock, record the transaction as pending, apply both balance deltas
// atomically, mark the transaction completed, commit. Any failure before
// commit rolls everything back, so a rejected transfer leaves both balances
// and the ledger untouched.
//
// Only the sender row is locked. The recipient credit is safe without a lock
// because ApplyDelta is an atomic arithmetic update at the storage layer, and
// skipping the second lock means two transfers between the same pair in
// opposite directions cannot deadlock.
func (uc *WalletUC) Transfer(ctx context.Context, senderID uuid.UUID, req *models.TransferRequest) (*models.Transaction, error) {
	if req == nil || req.RecipientID == uuid.Nil {
		return nil, apperrors.NewValidation("recipient_id is required")
	}
	if len(req.Currency) != 3 {
		return nil, apperrors.NewValidation("currency must be a 3-letter code")
	}
	if req.Note != nil && len(*req.Note) > maxNoteLength {
		return nil, apperrors.NewValidation(fmt.Sprintf("note must be at most %d characters", maxNoteLength))
	}
	if senderID == req.RecipientID {
		return nil, apperrors.NewInvalidRequest("cannot transfer to yourself")
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewInvalidRequest("amount must be greater than zero")
	}

	// Only existence matters here, so no lock is needed. The recipient row is
	// never read again; its credit is a blind atomic increment.
	if _, err := uc.accountRepo.GetAccountByUserID(ctx, req.RecipientID); err != nil {
		if apperrors.AsAppError(err).Kind == apperrors.KindNotFound {
			return nil, apperrors.NewNotFound("recipient not found")
		}
		return nil, err
	}

	now := time.Now()
	txn := &models.Transaction{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Amount:      req.Amount,
		Currency:    strings.ToUpper(req.Currency),
		Note:        req.Note,
		Status:      models.TransactionStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txManager.WithinTx(ctx, func(tx *sqlx.Tx) error {
		sender, err := uc.accountRepo.GetAccountForUpdate(ctx, tx, senderID)
		if err != nil {
			return err
		}

		// Balance and currency may have changed since any earlier unlocked
		// read; these checks only count once the lock is held.
		if sender.Currency != txn.Currency {
			return apperrors.NewInvalidRequest(fmt.Sprintf(
				"currency mismatch: account is in %s, transfer is in %s",
				sender.Currency, txn.Currency,
			))
		}
		if sender.Balance.LessThan(txn.Amount) {
			return apperrors.NewInvalidRequest("insufficient funds")
		}

		if err := uc.transactionRepo.CreateTransaction(ctx, tx, txn); err != nil {
			return err
		}

		if err := uc.accountRepo.ApplyDelta(ctx, tx, senderID, txn.Amount.Neg()); err != nil {
			return err
		}
		if err := uc.accountRepo.ApplyDelta(ctx, tx, txn.RecipientID, txn.Amount); err != nil {
			return err
		}

		if err := uc.transactionRepo.UpdateTransactionStatus(ctx, tx, txn.ID, models.TransactionStatusCompleted); err != nil {
			return err
		}
		txn.Status = models.TransactionStatusCompleted

		return nil
	})
	if err != nil {
		return nil, err
	}

	// The transfer is committed; event delivery is best effort
	event := &models.TransferCompletedEvent{
		TransactionID: txn.ID,
		SenderID:      txn.SenderID,
		RecipientID:   txn.RecipientID,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Timestamp:     time.Now().UTC(),
	}
	if err := uc.walletGW.PublishTransferCompleted(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish transfer event",
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(err),
		)
	}

	return txn, nil
}

// GetTransaction returns a transaction visible to the requesting party
func (uc *WalletUC) GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error) {
	return uc.transactionRepo.GetTransactionForParty(ctx, transactionID, userID)
}

// ListTransactions returns the party's transfer history, newest first
func (uc *WalletUC) ListTransactions(ctx context.Context, userID uuid.UUID, statusFilter string, limit, offset int) (*models.TransactionListResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var status *models.TransactionStatus
	if statusFilter != "" {
		parsed, err := models.ParseTransactionStatus(statusFilter)
		if err != nil {
			return nil, apperrors.NewInvalidRequest("invalid status filter")
		}
		status = &parsed
	}

	transactions, total, err := uc.transactionRepo.ListTransactionsForParty(ctx, userID, status, limit, offset)
	if err != nil {
		return nil, err
	}

	return &models.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Page:         int64(offset / limit),
		PerPage:      int64(limit),
	}, nil
}

// Fund applies a privileged out-of-band credit. It is a standalone balance
// adjustment: no transaction row is written for it.
func (uc *WalletUC) Fund(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Account, error) {
	if !amount.IsPositive() {
		return nil, apperrors.NewInvalidRequest("amount must be greater than zero")
	}

	account, err := uc.accountRepo.CreditBalance(ctx, userID, amount)
	if err != nil {
		return nil, err
	}

	event := &models.AccountFundedEvent{
		UserID:    userID,
		Amount:    amount,
		Currency:  account.Currency,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.walletGW.PublishAccountFunded(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish funded event",
			logger.String("user_id", userID.String()),
			logger.Err(err),
		)
	}

	return account, nil
}
