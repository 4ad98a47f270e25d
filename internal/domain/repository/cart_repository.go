package repository

import (
	"context"

	"rocktea/internal/domain/entity"
	"rocktea/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a user has no open cart.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartStoreConflict is returned when adding an item for a second store.
	ErrCartStoreConflict = errors.New("open cart belongs to another store")
)

// CartRepository defines the interface for cart-related database operations.
type CartRepository interface {
	// FindCartByUser retrieves the user's open cart with its items.
	FindCartByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindCartByUserForUpdate retrieves the user's open cart with a row-level
	// exclusive lock, preventing concurrent checkouts racing on the same cart.
	FindCartByUserForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// CreateCart persists a new empty cart for (user, store).
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// AddItem appends a line to the cart, merging quantity into an existing
	// line for the same (product, variant).
	AddItem(ctx context.Context, cartID uuid.UUID, item *entity.CartItem) error

	// RemoveItem deletes one line from the cart.
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error

	// ClearItems deletes every line of the cart.
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}
