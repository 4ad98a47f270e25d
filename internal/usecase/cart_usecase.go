package usecase

import (
	"context"

	"rocktea/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput describes one line being added to a cart.
type AddCartItemInput struct {
	StoreID   uuid.UUID
	ProductID uuid.UUID
	VariantID uuid.UUID
	Quantity  int
}

// CartUsecase defines the pre-checkout cart operations.
type CartUsecase interface {
	// AddItem adds a line to the user's cart, creating the cart lazily on the
	// first add. A user has one open cart; adding for a different store than
	// the cart's is a conflict.
	AddItem(ctx context.Context, userID uuid.UUID, input *AddCartItemInput) (*entity.Cart, error)

	// GetCart returns the user's open cart with its items.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// RemoveItem deletes one line from the user's cart.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
}
