package handler

import (
	"net/http"

	"rocktea/internal/delivery/http/response"
	"rocktea/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for store lifecycle operations.
type StoreHandler struct {
	uc usecase.StoreUsecase
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

type createStoreRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

// CreateStore registers a new store for the authenticated merchant. The
// storefront domain goes live only after the activation payment lands.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	ownerID := c.Get("userID").(uuid.UUID)

	store, err := h.uc.CreateStore(c.Request().Context(), ownerID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, store, "Store created")
}

// ProvisionDomain re-triggers DNS provisioning for a store whose previous
// attempt failed.
func (h *StoreHandler) ProvisionDomain(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	if err := h.uc.ProvisionDomain(c.Request().Context(), storeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Domain provisioned")
}

// DeleteStore soft-deletes the merchant's store and queues the DNS teardown.
func (h *StoreHandler) DeleteStore(c echo.Context) error {
	ownerID := c.Get("userID").(uuid.UUID)

	if err := h.uc.DeleteStore(c.Request().Context(), ownerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Store deleted")
}
