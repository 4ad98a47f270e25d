package entity

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusEnroute   OrderStatus = "enroute"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusReturned  OrderStatus = "returned"
)

const (
	orderSNDigits        = "0123456789"
	deliveryCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderCodeLength      = 5
)

// Order is a durable customer order belonging to one store. Once completed,
// its item list is immutable.
type Order struct {
	ID               uuid.UUID       `json:"id"`
	OrderSN          string          `json:"order_sn"`      // 5-digit human-friendly invoice number, unique.
	DeliveryCode     string          `json:"delivery_code"` // 5-char courier confirmation code, unique.
	BuyerID          uuid.UUID       `json:"buyer_id"`
	StoreID          uuid.UUID       `json:"store_id"`
	Status           OrderStatus     `json:"status"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	ShippingFee      decimal.Decimal `json:"shipping_fee"`
	DeliveryLocation string          `json:"delivery_location"`
	TrackingID       string          `json:"tracking_id"`
	TrackingURL      string          `json:"tracking_url"`
	TrackingStatus   string          `json:"tracking_status"`
	Items            []OrderItem     `json:"items"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// OrderItem is an immutable snapshot of one cart line at finalization time.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	VariantID uuid.UUID `json:"variant_id"`
	Quantity  int       `json:"quantity"`
}

// NewOrderSN returns a fresh 5-digit invoice number. Callers must retry on a
// unique-constraint collision.
func NewOrderSN() string {
	return randomCode(orderSNDigits)
}

// NewDeliveryCode returns a fresh 5-char uppercase alphanumeric courier code.
// Callers must retry on a unique-constraint collision.
func NewDeliveryCode() string {
	return randomCode(deliveryCodeAlphabet)
}

func randomCode(alphabet string) string {
	code := make([]byte, orderCodeLength)
	for i := range code {
		code[i] = alphabet[rand.IntN(len(alphabet))]
	}

	return string(code)
}
