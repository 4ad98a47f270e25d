package impl

import (
	"context"
	"testing"

	"rocktea/internal/domain/entity"
	domainerrors "rocktea/internal/domain/errors"
	"rocktea/internal/domain/repository"
	mockRepo "rocktea/internal/mocks/repository"
	"rocktea/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartServiceForTest(t *testing.T) (usecase.CartUsecase, *mockRepo.MockCartRepository, *mockRepo.MockCatalogRepository) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	svc := NewCartService(CartServiceParams{CartRepo: cartRepo, CatalogRepo: catalogRepo})

	return svc, cartRepo, catalogRepo
}

func TestCartService_AddItem_CreatesCartLazily(t *testing.T) {
	svc, cartRepo, catalogRepo := newCartServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	storeID := uuid.New()
	productID := uuid.New()
	variantID := uuid.New()
	cartID := uuid.New()

	catalogRepo.EXPECT().
		FindPricing(ctx, storeID, productID).
		Return(&entity.StorePricing{RetailPrice: decimal.RequireFromString("2500.00")}, nil)

	cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(nil, repository.ErrCartNotFound).
		Once()

	cartRepo.EXPECT().
		CreateCart(ctx, mock.AnythingOfType("*entity.Cart")).
		Run(func(_ context.Context, cart *entity.Cart) {
			assert.Equal(t, userID, cart.UserID)
			assert.Equal(t, storeID, cart.StoreID)
			cart.ID = cartID
		}).
		Return(nil)

	cartRepo.EXPECT().
		AddItem(ctx, cartID, mock.AnythingOfType("*entity.CartItem")).
		Run(func(_ context.Context, _ uuid.UUID, item *entity.CartItem) {
			assert.Equal(t, 3, item.Quantity)
			// The snapshot comes from the store's pricing row at add time.
			assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("2500.00")))
		}).
		Return(nil)

	refreshed := &entity.Cart{ID: cartID, UserID: userID, StoreID: storeID,
		Items: []entity.CartItem{{ProductID: productID, VariantID: variantID, Quantity: 3}}}
	cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(refreshed, nil).
		Once()

	cart, err := svc.AddItem(ctx, userID, &usecase.AddCartItemInput{
		StoreID:   storeID,
		ProductID: productID,
		VariantID: variantID,
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, refreshed, cart)
}

func TestCartService_AddItem_SecondStoreConflicts(t *testing.T) {
	svc, cartRepo, catalogRepo := newCartServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	otherStoreID := uuid.New()
	productID := uuid.New()

	catalogRepo.EXPECT().
		FindPricing(ctx, otherStoreID, productID).
		Return(&entity.StorePricing{RetailPrice: decimal.NewFromInt(100)}, nil)

	cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: uuid.New(), UserID: userID, StoreID: uuid.New()}, nil)

	_, err := svc.AddItem(ctx, userID, &usecase.AddCartItemInput{
		StoreID:   otherStoreID,
		ProductID: productID,
		VariantID: uuid.New(),
		Quantity:  1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartStoreConflict)
}

func TestCartService_AddItem_UnlistedProduct(t *testing.T) {
	svc, _, catalogRepo := newCartServiceForTest(t)
	ctx := context.Background()

	storeID := uuid.New()
	productID := uuid.New()

	catalogRepo.EXPECT().
		FindPricing(ctx, storeID, productID).
		Return(nil, repository.ErrPricingNotFound)

	_, err := svc.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{
		StoreID:   storeID,
		ProductID: productID,
		VariantID: uuid.New(),
		Quantity:  1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	svc, _, _ := newCartServiceForTest(t)

	_, err := svc.AddItem(context.Background(), uuid.New(), &usecase.AddCartItemInput{
		StoreID:   uuid.New(),
		ProductID: uuid.New(),
		VariantID: uuid.New(),
		Quantity:  0,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_RemoveItem_MissingCart(t *testing.T) {
	svc, cartRepo, _ := newCartServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(nil, repository.ErrCartNotFound)

	err := svc.RemoveItem(ctx, userID, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}
