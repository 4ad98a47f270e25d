package handler

import (
	"log/slog"
	"net/http"

	"rocktea/internal/delivery/http/response"
	"rocktea/internal/domain/entity"
	"rocktea/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment initiation.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: logger}
}

type initiatePaymentRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Purpose     string `json:"purpose" validate:"required,oneof=order dropshipping_payment"`
	AmountMinor int64  `json:"amount_minor"`
}

// InitiatePayment opens a provider checkout session and returns the
// authorization URL with its reference.
func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	var req initiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	userID, _ := c.Get("userID").(uuid.UUID)

	output, err := h.uc.InitiatePayment(c.Request().Context(), &usecase.InitiatePaymentInput{
		Email:       req.Email,
		Purpose:     entity.PaymentPurpose(req.Purpose),
		AmountMinor: req.AmountMinor,
		UserID:      userID.String(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Payment initiated")
}
