package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/dompet/internal/pkg/apperrors"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, SuccessResponse(c, http.StatusCreated, "Resource created", map[string]string{"id": "123"}))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Resource created", resp.Message)
	assert.Equal(t, "123", resp.Data.(map[string]interface{})["id"])
}

func TestAppErrorResponse(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation maps to 400",
			err:         apperrors.NewValidation("currency must be a 3-letter code"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "currency must be a 3-letter code",
		},
		{
			name:        "invalid request maps to 400",
			err:         apperrors.NewInvalidRequest("insufficient funds"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "insufficient funds",
		},
		{
			name:        "not found maps to 404",
			err:         apperrors.NewNotFound("recipient not found"),
			wantStatus:  http.StatusNotFound,
			wantMessage: "recipient not found",
		},
		{
			name:        "conflict maps to 409",
			err:         apperrors.NewConflict("username or email already registered"),
			wantStatus:  http.StatusConflict,
			wantMessage: "username or email already registered",
		},
		{
			name:        "authentication maps to 401",
			err:         apperrors.NewAuthentication("invalid username or password"),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid username or password",
		},
		{
			name:        "internal detail never leaks",
			err:         apperrors.NewInternal("database error", assert.AnError),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
		{
			name:        "plain errors are treated as internal",
			err:         assert.AnError,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			require.NoError(t, AppErrorResponse(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Error)
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestFallbackMessages(t *testing.T) {
	t.Run("unauthorized default", func(t *testing.T) {
		c, rec := newTestContext()
		require.NoError(t, UnauthorizedResponse(c, ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unauthorized")
	})

	t.Run("forbidden default", func(t *testing.T) {
		c, rec := newTestContext()
		require.NoError(t, ForbiddenResponse(c, ""))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Forbidden")
	})

	t.Run("not found default", func(t *testing.T) {
		c, rec := newTestContext()
		require.NoError(t, NotFoundResponse(c, ""))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Resource not found")
	})
}
