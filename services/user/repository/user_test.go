package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/dompet/internal/pkg/apperrors"
	"github.com/piresc/dompet/internal/pkg/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestCreateUserWithAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	t.Run("inserts user and account in one transaction", func(t *testing.T) {
		u := &models.User{
			Username:     "budi",
			Email:        "budi@example.com",
			PasswordHash: "hash",
			Role:         models.RoleUser,
		}

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO users`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO accounts`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.CreateUserWithAccount(context.Background(), u, "USD"))
		assert.NotEqual(t, uuid.Nil, u.ID)
		assert.False(t, u.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps unique violations to conflict", func(t *testing.T) {
		u := &models.User{
			Username:     "budi",
			Email:        "budi@example.com",
			PasswordHash: "hash",
			Role:         models.RoleUser,
		}

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO users`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
		mock.ExpectRollback()

		err := repo.CreateUserWithAccount(context.Background(), u, "USD")
		require.Error(t, err)
		assert.Equal(t, apperrors.KindConflict, apperrors.AsAppError(err).Kind)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the account insert fails", func(t *testing.T) {
		u := &models.User{
			Username:     "budi",
			Email:        "budi@example.com",
			PasswordHash: "hash",
			Role:         models.RoleUser,
		}

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO users`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO accounts`).WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.CreateUserWithAccount(context.Background(), u, "USD")
		require.Error(t, err)
		assert.Equal(t, apperrors.KindInternal, apperrors.AsAppError(err).Kind)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetUserByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	userID := uuid.New()
	now := time.Now()

	t.Run("returns the user", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE username = \$1`).
			WithArgs("budi").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "username", "email", "password_hash", "role", "created_at", "updated_at",
			}).AddRow(userID, "budi", "budi@example.com", "hash", "user", now, now))

		u, err := repo.GetUserByUsername(context.Background(), "budi")
		require.NoError(t, err)
		assert.Equal(t, userID, u.ID)
		assert.Equal(t, "budi", u.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing rows to not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE username = \$1`).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		u, err := repo.GetUserByUsername(context.Background(), "ghost")
		require.Error(t, err)
		assert.Nil(t, u)
		assert.Equal(t, apperrors.KindNotFound, apperrors.AsAppError(err).Kind)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetUserByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "username", "email", "password_hash", "role", "created_at", "updated_at",
		}).AddRow(userID, "budi", "budi@example.com", "hash", "admin", now, now))

	u, err := repo.GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}
