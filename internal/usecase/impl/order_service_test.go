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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderServiceForTest(t *testing.T) (usecase.OrderUsecase, *mockRepo.MockOrderRepository) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	svc := NewOrderService(OrderServiceParams{OrderRepo: orderRepo, Logger: newDiscardLogger()})

	return svc, orderRepo
}

func TestOrderService_GetOrdersByReference_ScopedToBuyer(t *testing.T) {
	svc, orderRepo := newOrderServiceForTest(t)
	ctx := context.Background()
	buyerID := uuid.New()

	// A non-buyer querying someone else's reference gets an empty slice.
	orderRepo.EXPECT().
		FindOrdersByBuyerAndReference(ctx, buyerID, "ref-x").
		Return([]*entity.Order{}, nil)

	orders, err := svc.GetOrdersByReference(ctx, buyerID, "ref-x")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_ConfirmDelivery_MatchingCode(t *testing.T) {
	svc, orderRepo := newOrderServiceForTest(t)
	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, OrderSN: "12345", DeliveryCode: "A1B2C"}, nil)
	orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusDelivered).
		Return(nil)

	require.NoError(t, svc.ConfirmDelivery(ctx, orderID, "A1B2C"))
}

func TestOrderService_ConfirmDelivery_CodeMismatch(t *testing.T) {
	svc, orderRepo := newOrderServiceForTest(t)
	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, DeliveryCode: "A1B2C"}, nil)

	err := svc.ConfirmDelivery(ctx, orderID, "ZZZZZ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeliveryCodeMismatch)
}

func TestOrderService_ConfirmDelivery_UnknownOrder(t *testing.T) {
	svc, orderRepo := newOrderServiceForTest(t)
	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	err := svc.ConfirmDelivery(ctx, orderID, "A1B2C")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
