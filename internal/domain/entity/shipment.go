package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ShipmentReservation is the parsed form of the logistics provider's label
// reservation response, cached per user between checkout and payment. The
// cache holds the raw JSON string; this struct extracts only the fields the
// order finalizer copies onto the order.
type ShipmentReservation struct {
	Data struct {
		OrderID     string `json:"order_id"`
		TrackingURL string `json:"tracking_url"`
		Status      string `json:"status"`
		ShipTo      struct {
			Address string `json:"address"`
		} `json:"ship_to"`
		Payment struct {
			ShippingFee decimal.Decimal `json:"shipping_fee"`
		} `json:"payment"`
	} `json:"data"`
}

// ParseShipmentReservation decodes the cached JSON blob. A malformed blob is
// an error for the caller to log and drop; it never fails an order.
func ParseShipmentReservation(raw string) (*ShipmentReservation, error) {
	var reservation ShipmentReservation
	if err := json.Unmarshal([]byte(raw), &reservation); err != nil {
		return nil, err
	}

	return &reservation, nil
}
