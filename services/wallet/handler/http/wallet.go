package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/dompet/internal/pkg/middleware"
	"github.com/piresc/dompet/internal/pkg/models"
	"github.com/piresc/dompet/internal/utils"
	"github.com/piresc/dompet/services/wallet"
)

// WalletHandler handles HTTP requests for wallet operations
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{walletUC: walletUC}
}

// GetBalance handles balance retrieval for the authenticated user
func (h *WalletHandler) GetBalance(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	account, err := h.walletUC.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved successfully", models.BalanceResponse{
		Balance:  account.Balance,
		Currency: account.Currency,
	})
}

// CreateTransaction handles transfer requests. The authenticated user is
// always the sender.
func (h *WalletHandler) CreateTransaction(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TransferRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txn, err := h.walletUC.Transfer(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transfer completed successfully", txn)
}

// GetTransaction handles retrieval of a single transaction
func (h *WalletHandler) GetTransaction(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	txn, err := h.walletUC.GetTransaction(c.Request().Context(), userID, transactionID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", txn)
}

// ListTransactions handles paginated transaction history requests
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	status := c.QueryParam("status")

	list, err := h.walletUC.ListTransactions(c.Request().Context(), userID, status, limit, offset)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", list)
}

// FundAccount handles the privileged out-of-band credit endpoint. Routing
// guards it behind the admin role.
func (h *WalletHandler) FundAccount(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req models.FundRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	account, err := h.walletUC.Fund(c.Request().Context(), targetID, req.Amount)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account funded successfully", models.FundResponse{
		UserID:    account.UserID,
		Credited:  req.Amount,
		Balance:   account.Balance,
		Currency:  account.Currency,
		OutOfBand: true,
	})
}
