package handler

import (
	"net/http"

	"rocktea/internal/delivery/http/response"
	"rocktea/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// WalletHandler holds dependencies for merchant wallet operations.
type WalletHandler struct {
	uc usecase.WalletUsecase
}

// NewWalletHandler is the constructor for WalletHandler, injected by Fx.
func NewWalletHandler(uc usecase.WalletUsecase) *WalletHandler {
	return &WalletHandler{uc: uc}
}

type payoutRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// RequestPayout transfers funds from the merchant's wallet to their stored
// bank account.
func (h *WalletHandler) RequestPayout(c echo.Context) error {
	var req payoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payout input")
	}

	ownerID := c.Get("userID").(uuid.UUID)

	if err := h.uc.RequestPayout(c.Request().Context(), ownerID, req.Amount); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Payout initiated")
}

// GetHistory returns the merchant wallet's mutation history, newest first.
func (h *WalletHandler) GetHistory(c echo.Context) error {
	ownerID := c.Get("userID").(uuid.UUID)

	history, err := h.uc.GetHistory(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "Payment history retrieved")
}
