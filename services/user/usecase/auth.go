package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/dompet/internal/pkg/apperrors"
	jwtpkg "github.com/piresc/dompet/internal/pkg/jwt"
	"github.com/piresc/dompet/internal/pkg/models"
	"github.com/piresc/dompet/services/user"
	"golang.org/x/crypto/bcrypt"
)

// UserUC implements the user.UserUC interface
type UserUC struct {
	cfg      *models.Config
	userRepo user.UserRepo
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, userRepo user.UserRepo) user.UserUC {
	return &UserUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// Register creates a user and their zero-balance account
func (uc *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = uc.cfg.Wallet.DefaultCurrency
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternal("failed to hash password", err)
	}

	u := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}

	if err := uc.userRepo.CreateUserWithAccount(ctx, u, currency); err != nil {
		if apperrors.AsAppError(err).Kind == apperrors.KindConflict {
			return nil, apperrors.NewConflict("username or email already registered")
		}
		return nil, err
	}

	return u, nil
}

// Login verifies credentials and issues a bearer token
func (uc *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	if req == nil || req.Username == "" || req.Password == "" {
		return nil, apperrors.NewValidation("username and password are required")
	}

	u, err := uc.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		// Do not reveal whether the username exists
		if apperrors.AsAppError(err).Kind == apperrors.KindNotFound {
			return nil, apperrors.NewAuthentication("invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.NewAuthentication("invalid username or password")
	}

	token, expiresAt, err := jwtpkg.GenerateToken(u.ID, u.Username, u.Role, uc.cfg.JWT)
	if err != nil {
		return nil, apperrors.NewInternal("failed to generate token", err)
	}

	resp := models.NewTokenResponse(token, expiresAt)
	return &resp, nil
}

func validateRegisterRequest(req *models.RegisterRequest) error {
	if req == nil {
		return apperrors.NewValidation("request body is required")
	}
	if len(req.Username) < 3 || len(req.Username) > 50 {
		return apperrors.NewValidation("username must be between 3 and 50 characters")
	}
	if !strings.Contains(req.Email, "@") {
		return apperrors.NewValidation("email must be a valid email address")
	}
	if len(req.Password) < 8 {
		return apperrors.NewValidation("password must be at least 8 characters")
	}
	if req.Currency != "" && len(req.Currency) != 3 {
		return apperrors.NewValidation("currency must be a 3-letter code")
	}
	return nil
}
