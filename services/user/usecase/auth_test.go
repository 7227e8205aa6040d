package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/piresc/dompet/internal/pkg/apperrors"
	"github.com/piresc/dompet/internal/pkg/models"
	"github.com/piresc/dompet/services/user/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "dompet-test",
		},
		Wallet: models.WalletConfig{
			DefaultCurrency: "USD",
		},
	}
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testConfig(), mockRepo)

	t.Run("creates a user with a hashed password and default currency", func(t *testing.T) {
		mockRepo.EXPECT().CreateUserWithAccount(gomock.Any(), gomock.Any(), "USD").
			DoAndReturn(func(_ context.Context, u *models.User, _ string) error {
				assert.NotEqual(t, uuid.Nil, u.ID)
				assert.Equal(t, models.RoleUser, u.Role)
				assert.NotEqual(t, "s3cretpass", u.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cretpass")))
				return nil
			})

		u, err := uc.Register(context.Background(), &models.RegisterRequest{
			Username: "budi",
			Email:    "budi@example.com",
			Password: "s3cretpass",
		})
		require.NoError(t, err)
		assert.Equal(t, "budi", u.Username)
	})

	t.Run("honors an explicit currency", func(t *testing.T) {
		mockRepo.EXPECT().CreateUserWithAccount(gomock.Any(), gomock.Any(), "IDR").Return(nil)

		_, err := uc.Register(context.Background(), &models.RegisterRequest{
			Username: "siti",
			Email:    "siti@example.com",
			Password: "s3cretpass",
			Currency: "idr",
		})
		require.NoError(t, err)
	})

	t.Run("rejects malformed requests", func(t *testing.T) {
		tests := []struct {
			name string
			req  *models.RegisterRequest
		}{
			{"nil request", nil},
			{"short username", &models.RegisterRequest{Username: "ab", Email: "a@b.com", Password: "s3cretpass"}},
			{"bad email", &models.RegisterRequest{Username: "budi", Email: "not-an-email", Password: "s3cretpass"}},
			{"short password", &models.RegisterRequest{Username: "budi", Email: "a@b.com", Password: "short"}},
			{"bad currency", &models.RegisterRequest{Username: "budi", Email: "a@b.com", Password: "s3cretpass", Currency: "RUPIAH"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				u, err := uc.Register(context.Background(), tt.req)
				require.Error(t, err)
				assert.Nil(t, u)
				assert.Equal(t, apperrors.KindValidation, apperrors.AsAppError(err).Kind)
			})
		}
	})

	t.Run("reports duplicate registrations as conflicts", func(t *testing.T) {
		mockRepo.EXPECT().CreateUserWithAccount(gomock.Any(), gomock.Any(), "USD").
			Return(apperrors.NewConflict("resource already exists"))

		u, err := uc.Register(context.Background(), &models.RegisterRequest{
			Username: "budi",
			Email:    "budi@example.com",
			Password: "s3cretpass",
		})
		require.Error(t, err)
		assert.Nil(t, u)

		appErr := apperrors.AsAppError(err)
		assert.Equal(t, apperrors.KindConflict, appErr.Kind)
		assert.Equal(t, "username or email already registered", appErr.Message)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testConfig(), mockRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	require.NoError(t, err)

	storedUser := &models.User{
		ID:           uuid.New(),
		Username:     "budi",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}

	t.Run("issues a bearer token for valid credentials", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByUsername(gomock.Any(), "budi").Return(storedUser, nil)

		resp, err := uc.Login(context.Background(), &models.LoginRequest{
			Username: "budi",
			Password: "s3cretpass",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Greater(t, resp.ExpiresAt, int64(0))
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByUsername(gomock.Any(), "budi").Return(storedUser, nil)

		resp, err := uc.Login(context.Background(), &models.LoginRequest{
			Username: "budi",
			Password: "wrongpass",
		})
		require.Error(t, err)
		assert.Nil(t, resp)

		appErr := apperrors.AsAppError(err)
		assert.Equal(t, apperrors.KindAuthentication, appErr.Kind)
		assert.Equal(t, "invalid username or password", appErr.Message)
	})

	t.Run("does not reveal unknown usernames", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByUsername(gomock.Any(), "ghost").
			Return(nil, apperrors.NewNotFound("user not found"))

		resp, err := uc.Login(context.Background(), &models.LoginRequest{
			Username: "ghost",
			Password: "s3cretpass",
		})
		require.Error(t, err)
		assert.Nil(t, resp)

		appErr := apperrors.AsAppError(err)
		assert.Equal(t, apperrors.KindAuthentication, appErr.Kind)
		assert.Equal(t, "invalid username or password", appErr.Message)
	})

	t.Run("rejects empty credentials", func(t *testing.T) {
		for _, req := range []*models.LoginRequest{
			nil,
			{Username: "budi"},
			{Password: "s3cretpass"},
		} {
			resp, err := uc.Login(context.Background(), req)
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Equal(t, apperrors.KindValidation, apperrors.AsAppError(err).Kind)
		}
	})
}
