package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// order_sn and delivery_code carry unique indexes; collisions during code
// generation surface as constraint violations and are retried by the caller.
type OrderModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderSN          string          `gorm:"type:varchar(5);not null;uniqueIndex"`
	DeliveryCode     string          `gorm:"type:varchar(5);not null;uniqueIndex"`
	BuyerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	StoreID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status           string          `gorm:"type:varchar(20);not null;default:'pending'"`
	TotalPrice       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ShippingFee      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	DeliveryLocation string          `gorm:"type:text"`
	TrackingID       string          `gorm:"type:varchar(100)"`
	TrackingURL      string          `gorm:"type:text"`
	TrackingStatus   string          `gorm:"type:varchar(50)"`
	Items            []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	VariantID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
