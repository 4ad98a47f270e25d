package postgres

import (
	"context"

	"rocktea/internal/domain/entity"
	domainerrors "rocktea/internal/domain/errors"
	"rocktea/internal/domain/repository"
	"rocktea/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists an order together with its item snapshots. A unique
// constraint hit on order_sn or delivery_code surfaces as
// ErrOrderCodeCollision so the caller can regenerate and retry.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderCodeCollision
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid buyer or store reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// FindOrderByID retrieves an order with its items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByBuyerAndReference retrieves the orders whose payment intent
// carries the given reference, scoped to the buyer.
func (repo *orderRepository) FindOrdersByBuyerAndReference(ctx context.Context, buyerID uuid.UUID, reference string) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Joins("JOIN payment_intents ON payment_intents.order_id = orders.id").
		Where("payment_intents.reference = ? AND orders.buyer_id = ?", reference, buyerID).
		Find(&orderMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by reference")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// UpdateStatus advances the fulfilment status of an order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// fromOrderDomain maps a pure domain entity to a persistence model.
func fromOrderDomain(o *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, model.OrderItemModel{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	return &model.OrderModel{
		ID:               o.ID,
		OrderSN:          o.OrderSN,
		DeliveryCode:     o.DeliveryCode,
		BuyerID:          o.BuyerID,
		StoreID:          o.StoreID,
		Status:           string(o.Status),
		TotalPrice:       o.TotalPrice,
		ShippingFee:      o.ShippingFee,
		DeliveryLocation: o.DeliveryLocation,
		TrackingID:       o.TrackingID,
		TrackingURL:      o.TrackingURL,
		TrackingStatus:   o.TrackingStatus,
		Items:            items,
	}
}

// toOrderDomain maps a persistence model back to a pure domain entity.
func toOrderDomain(m *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(m.Items))
	for _, itemM := range m.Items {
		items = append(items, entity.OrderItem{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			VariantID: itemM.VariantID,
			Quantity:  itemM.Quantity,
		})
	}

	return &entity.Order{
		ID:               m.ID,
		OrderSN:          m.OrderSN,
		DeliveryCode:     m.DeliveryCode,
		BuyerID:          m.BuyerID,
		StoreID:          m.StoreID,
		Status:           entity.OrderStatus(m.Status),
		TotalPrice:       m.TotalPrice,
		ShippingFee:      m.ShippingFee,
		DeliveryLocation: m.DeliveryLocation,
		TrackingID:       m.TrackingID,
		TrackingURL:      m.TrackingURL,
		TrackingStatus:   m.TrackingStatus,
		Items:            items,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
