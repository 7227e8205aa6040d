package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dompet/internal/pkg/database"
	"github.com/piresc/dompet/internal/pkg/middleware"
	"github.com/piresc/dompet/internal/pkg/models"
	"github.com/piresc/dompet/services/wallet/handler/http"
)

// Handler coordinates the wallet service HTTP handlers
type Handler struct {
	walletHandler *http.WalletHandler
	redisClient   *database.RedisClient
	cfg           *models.Config
}

// NewHandler creates and initializes all wallet handlers
func NewHandler(walletHandler *http.WalletHandler, redisClient *database.RedisClient, cfg *models.Config) *Handler {
	return &Handler{
		walletHandler: walletHandler,
		redisClient:   redisClient,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the wallet routes with their middleware chain
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authMiddleware := middleware.JWTAuthMiddleware(h.cfg.JWT)
	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient.GetClient(),
		Key:         "ratelimit:wallet",
		Limit:       h.cfg.RateLimit.Limit,
		Period:      time.Duration(h.cfg.RateLimit.Period) * time.Second,
	})

	// Authenticated wallet routes
	api := e.Group("", authMiddleware, rateLimiter)
	api.GET("/balance", h.walletHandler.GetBalance)
	api.POST("/transactions", h.walletHandler.CreateTransaction)
	api.GET("/transactions/:id", h.walletHandler.GetTransaction)
	api.GET("/transactions", h.walletHandler.ListTransactions)

	// Privileged funding endpoint: authenticated and admin-only
	admin := e.Group("/admin", authMiddleware, middleware.RequireRole(models.RoleAdmin))
	admin.POST("/accounts/:user_id/fund", h.walletHandler.FundAccount)
}
