package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dompet/internal/pkg/models"
	"github.com/piresc/dompet/internal/utils"
	"github.com/piresc/dompet/services/user"
)

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	userUC user.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC user.UserUC) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Register handles user registration requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	u, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", u)
}

// Login handles login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	token, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", token)
}
