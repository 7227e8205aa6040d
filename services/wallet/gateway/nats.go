package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/dompet/internal/pkg/constants"
	"github.com/piresc/dompet/internal/pkg/models"
	natspkg "github.com/piresc/dompet/internal/pkg/nats"
	"github.com/piresc/dompet/services/wallet"
)

// NATSGateway implements wallet.WalletGW over a NATS connection
type NATSGateway struct {
	client *natspkg.Client
}

// NewWalletGW creates a new wallet gateway
func NewWalletGW(client *natspkg.Client) wallet.WalletGW {
	return &NATSGateway{client: client}
}

// PublishTransferCompleted publishes a transfer completed event
func (g *NATSGateway) PublishTransferCompleted(ctx context.Context, event *models.TransferCompletedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal transfer event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectTransferCompleted, data); err != nil {
		return fmt.Errorf("failed to publish transfer event: %w", err)
	}

	return nil
}

// PublishAccountFunded publishes an account funded event
func (g *NATSGateway) PublishAccountFunded(ctx context.Context, event *models.AccountFundedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal funded event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectAccountFunded, data); err != nil {
		return fmt.Errorf("failed to publish funded event: %w", err)
	}

	return nil
}
