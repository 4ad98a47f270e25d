package handler

import (
	"net/http"

	"rocktea/internal/delivery/http/response"
	"rocktea/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the shipping quotation flow.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type rateQuoteRequest struct {
	Phone           string  `json:"phone" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Name            string  `json:"name" validate:"required"`
	Address         string  `json:"address" validate:"required"`
	PackageWeightKG float64 `json:"package_weight_kg" validate:"required,gt=0"`
}

// GetRates validates the delivery address and quotes couriers.
func (h *CheckoutHandler) GetRates(c echo.Context) error {
	var req rateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rate quote input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	userID := c.Get("userID").(uuid.UUID)

	rates, err := h.uc.GetRates(c.Request().Context(), userID, &usecase.RateQuoteInput{
		Phone:           req.Phone,
		Email:           req.Email,
		Name:            req.Name,
		Address:         req.Address,
		PackageWeightKG: req.PackageWeightKG,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rates, "Rates fetched")
}

type reserveShipmentRequest struct {
	RequestToken string `json:"request_token" validate:"required"`
	ServiceCode  string `json:"service_code" validate:"required"`
	CourierID    string `json:"courier_id" validate:"required"`
}

// ReserveShipment pre-purchases a label for an accepted rate. The reservation
// is held until the payment webhook lands or its TTL expires.
func (h *CheckoutHandler) ReserveShipment(c echo.Context) error {
	var req reserveShipmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	userID := c.Get("userID").(uuid.UUID)

	err := h.uc.ReserveShipment(c.Request().Context(), userID, &usecase.ReserveShipmentInput{
		RequestToken: req.RequestToken,
		ServiceCode:  req.ServiceCode,
		CourierID:    req.CourierID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Shipment reserved")
}
