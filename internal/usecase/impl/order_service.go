package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"rocktea/internal/domain/entity"
	domainerrors "rocktea/internal/domain/errors"
	"rocktea/internal/domain/repository"
	"rocktea/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

// GetOrdersByReference returns the orders finalized for a payment reference,
// scoped to the requesting buyer. Non-buyers get an empty slice.
func (s *orderService) GetOrdersByReference(ctx context.Context, buyerID uuid.UUID, reference string) ([]*entity.Order, error) {
	return s.orderRepo.FindOrdersByBuyerAndReference(ctx, buyerID, reference)
}

// ConfirmDelivery advances an order to DELIVERED when the courier's submitted
// code matches the order's delivery code.
func (s *orderService) ConfirmDelivery(ctx context.Context, orderID uuid.UUID, code string) error {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return err
	}

	if subtle.ConstantTimeCompare([]byte(order.DeliveryCode), []byte(code)) != 1 {
		return domainerrors.ErrDeliveryCodeMismatch
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusDelivered); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "delivery confirmed",
		slog.String("order_id", order.ID.String()),
		slog.String("order_sn", order.OrderSN),
	)

	return nil
}
