package impl

import (
	"context"

	"rocktea/internal/domain/entity"
	domainerrors "rocktea/internal/domain/errors"
	"rocktea/internal/domain/repository"
	"rocktea/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	CatalogRepo repository.CatalogRepository
}

// NewCartService creates a new cart service instance.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		catalogRepo: params.CatalogRepo,
	}
}

// AddItem adds a line to the user's cart, creating the cart lazily on the
// first add. The unit price snapshot comes from the store's pricing row at
// add time; the wallet credit at finalization never reads it.
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddCartItemInput) (*entity.Cart, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
	}

	pricing, err := s.catalogRepo.FindPricing(ctx, input.StoreID, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrPricingNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("store does not sell this product")
		}

		return nil, err
	}

	cart, err := s.cartRepo.FindCartByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			return nil, err
		}

		cart = &entity.Cart{UserID: userID, StoreID: input.StoreID}
		if err := s.cartRepo.CreateCart(ctx, cart); err != nil {
			return nil, err
		}
	}

	if cart.StoreID != input.StoreID {
		return nil, domainerrors.ErrCartStoreConflict
	}

	item := &entity.CartItem{
		ProductID: input.ProductID,
		VariantID: input.VariantID,
		Quantity:  input.Quantity,
		UnitPrice: pricing.RetailPrice,
	}
	if err := s.cartRepo.AddItem(ctx, cart.ID, item); err != nil {
		return nil, err
	}

	return s.cartRepo.FindCartByUser(ctx, userID)
}

// GetCart returns the user's open cart with its items.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.FindCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound
		}

		return nil, err
	}

	return cart, nil
}

// RemoveItem deletes one line from the user's cart.
func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	cart, err := s.cartRepo.FindCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrCartNotFound
		}

		return err
	}

	if err := s.cartRepo.RemoveItem(ctx, cart.ID, itemID); err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrNotFound.WithDetails("cart item not found")
		}

		return err
	}

	return nil
}
