package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/dompet/internal/pkg/apperrors"
	"github.com/piresc/dompet/internal/pkg/models"
	"github.com/piresc/dompet/internal/utils"
	"github.com/piresc/dompet/services/user/mocks"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewAuthHandler(mockUC)
	e := echo.New()

	t.Run("returns 201 without the password hash", func(t *testing.T) {
		mockUC.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, req *models.RegisterRequest) (*models.User, error) {
				assert.Equal(t, "budi", req.Username)
				return &models.User{
					ID:           uuid.New(),
					Username:     req.Username,
					Email:        req.Email,
					PasswordHash: "must-not-leak",
					Role:         models.RoleUser,
				}, nil
			})

		body := `{"username":"budi","email":"budi@example.com","password":"s3cretpass"}`
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "must-not-leak")

		var resp utils.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "budi", data["username"])
		assert.Equal(t, models.RoleUser, data["role"])
	})

	t.Run("maps duplicate registration to 409", func(t *testing.T) {
		mockUC.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewConflict("username or email already registered"))

		body := `{"username":"budi","email":"budi@example.com","password":"s3cretpass"}`
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("maps validation failure to 400", func(t *testing.T) {
		mockUC.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidation("password must be at least 8 characters"))

		body := `{"username":"budi","email":"budi@example.com","password":"short"}`
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewAuthHandler(mockUC)
	e := echo.New()

	t.Run("returns a bearer token", func(t *testing.T) {
		token := models.NewTokenResponse("signed-token", 1700000000)
		mockUC.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&token, nil)

		body := `{"username":"budi","password":"s3cretpass"}`
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp utils.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "signed-token", data["token"])
		assert.Equal(t, "Bearer", data["token_type"])
	})

	t.Run("maps bad credentials to 401", func(t *testing.T) {
		mockUC.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewAuthentication("invalid username or password"))

		body := `{"username":"budi","password":"wrongpass"}`
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
