package handler

import (
	"net/http"

	"rocktea/internal/delivery/http/response"
	"rocktea/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order queries and delivery confirmation.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// GetByReference returns the orders finalized for a payment reference, scoped
// to the authenticated buyer.
func (h *OrderHandler) GetByReference(c echo.Context) error {
	reference := c.QueryParam("reference")
	if reference == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing reference query parameter")
	}

	buyerID := c.Get("userID").(uuid.UUID)

	orders, err := h.uc.GetOrdersByReference(c.Request().Context(), buyerID, reference)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved")
}

type confirmDeliveryRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
	Code    string    `json:"code" validate:"required,len=5"`
}

// ConfirmDelivery advances an order to DELIVERED when the submitted code
// matches its delivery code.
func (h *OrderHandler) ConfirmDelivery(c echo.Context) error {
	var req confirmDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery confirmation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.ConfirmDelivery(c.Request().Context(), req.OrderID, req.Code); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Delivery confirmed")
}
