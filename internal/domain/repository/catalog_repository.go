package repository

import (
	"context"

	"rocktea/internal/domain/entity"
	"rocktea/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product lookup misses.
	ErrProductNotFound = errors.New("product not found")
	// ErrPricingNotFound is returned when a store has no pricing row for a
	// product. Non-fatal for finalization: the item's credit contribution is zero.
	ErrPricingNotFound = errors.New("store pricing not found")
)

// CatalogRepository defines the read-side catalog operations the pipeline needs,
// plus the sales counter increment written at finalization.
type CatalogRepository interface {
	// FindProductByID retrieves a catalog product.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindPricing resolves the retail price a store charges for a product.
	FindPricing(ctx context.Context, storeID, productID uuid.UUID) (*entity.StorePricing, error)

	// IncrementSalesCount adds quantity to a product's lifetime sales counter.
	IncrementSalesCount(ctx context.Context, productID uuid.UUID, quantity int) error
}
