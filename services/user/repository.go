package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/dompet/internal/pkg/models"
)

// UserRepo is the user storage interface
type UserRepo interface {
	// CreateUserWithAccount inserts the user and their zero-balance account
	// in one database transaction
	CreateUserWithAccount(ctx context.Context, user *models.User, currency string) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
