package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a curated catalog item sellable by any store.
type Product struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SalesCount int64     `json:"sales_count"` // Lifetime quantity sold across all stores.
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProductVariant is one purchasable variation (size, colour) of a product.
type ProductVariant struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Label     string    `json:"label"`
}

// StorePricing is a store's retail price for a catalog product. The wallet
// credit on order finalization resolves through this row, never through the
// cart's price snapshot.
type StorePricing struct {
	ID          uuid.UUID       `json:"id"`
	StoreID     uuid.UUID       `json:"store_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	RetailPrice decimal.Decimal `json:"retail_price"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
