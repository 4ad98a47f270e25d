package repository

import (
	"context"

	"rocktea/internal/domain/entity"
	"rocktea/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order lookup misses.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderCodeCollision is returned when order_sn or delivery_code collides
	// with an existing order. Callers regenerate the codes and retry.
	ErrOrderCodeCollision = errors.New("order code collision")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists an order together with its item snapshots. A
	// unique-constraint hit on order_sn or delivery_code surfaces as
	// ErrOrderCodeCollision.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByBuyerAndReference retrieves the orders whose payment intent
	// carries the given reference, scoped to the buyer. Non-buyers get an
	// empty slice, not an error.
	FindOrdersByBuyerAndReference(ctx context.Context, buyerID uuid.UUID, reference string) ([]*entity.Order, error)

	// UpdateStatus advances the fulfilment status of an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
