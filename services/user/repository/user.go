package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/dompet/internal/pkg/apperrors"
	"github.com/piresc/dompet/internal/pkg/models"
	"github.com/piresc/dompet/services/user"
	"github.com/shopspring/decimal"
)

// PostgresUserRepo implements the user.UserRepo interface
type PostgresUserRepo struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) user.UserRepo {
	return &PostgresUserRepo{db: db}
}

// CreateUserWithAccount inserts the user and their zero-balance account in
// one database transaction. A unique violation on username or email surfaces
// as a conflict.
func (r *PostgresUserRepo) CreateUserWithAccount(ctx context.Context, u *models.User, currency string) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.NewInternal("failed to begin transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO users (
			id, username, email, password_hash, role, created_at, updated_at
		) VALUES (
			:id, :username, :email, :password_hash, :role, :created_at, :updated_at
		)
	`, u)
	if err != nil {
		return apperrors.FromDB(err, "user not found")
	}

	accountData := map[string]interface{}{
		"id":         uuid.New(),
		"user_id":    u.ID,
		"balance":    decimal.Zero,
		"currency":   currency,
		"created_at": now,
		"updated_at": now,
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO accounts (
			id, user_id, balance, currency, created_at, updated_at
		) VALUES (
			:id, :user_id, :balance, :currency, :created_at, :updated_at
		)
	`, accountData)
	if err != nil {
		return apperrors.FromDB(err, "account not found")
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternal("failed to commit transaction", err)
	}

	return nil
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// GetUserByUsername retrieves a user by username
func (r *PostgresUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getUserByField(ctx, "username", username)
}

func (r *PostgresUserRepo) getUserByField(ctx context.Context, field string, value interface{}) (*models.User, error) {
	var u models.User
	err := r.db.GetContext(ctx, &u, `
		SELECT id, username, email, password_hash, role, created_at, updated_at
		FROM users WHERE `+field+` = $1
	`, value)
	if err != nil {
		return nil, apperrors.FromDB(err, "user not found")
	}

	return &u, nil
}
