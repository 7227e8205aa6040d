package wallet

import (
	"context"

	"github.com/piresc/dompet/internal/pkg/models"
)

// WalletGW publishes wallet events to the message broker
type WalletGW interface {
	PublishTransferCompleted(ctx context.Context, event *models.TransferCompletedEvent) error
	PublishAccountFunded(ctx context.Context, event *models.AccountFundedEvent) error
}
