package usecase

import (
	"context"

	"rocktea/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines order queries and the courier delivery confirmation.
type OrderUsecase interface {
	// GetOrdersByReference returns the orders finalized for a payment
	// reference, scoped to the requesting buyer. Non-buyers get an empty
	// slice, never someone else's orders.
	GetOrdersByReference(ctx context.Context, buyerID uuid.UUID, reference string) ([]*entity.Order, error)

	// ConfirmDelivery advances an order to DELIVERED when the submitted code
	// matches its delivery code.
	ConfirmDelivery(ctx context.Context, orderID uuid.UUID, code string) error
}
