package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/dompet/services/user/handler/http"
)

// Handler coordinates the user service HTTP handlers
type Handler struct {
	authHandler *http.AuthHandler
}

// NewHandler creates and initializes all user handlers
func NewHandler(authHandler *http.AuthHandler) *Handler {
	return &Handler{authHandler: authHandler}
}

// RegisterRoutes registers the public identity routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/register", h.authHandler.Register)
	e.POST("/login", h.authHandler.Login)
}
