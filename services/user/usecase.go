package user

import (
	"context"

	"github.com/piresc/dompet/internal/pkg/models"
)

// UserUC is the identity operation surface
type UserUC interface {
	// Register creates a user and their zero-balance account
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	// Login verifies credentials and issues a bearer token
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
}
