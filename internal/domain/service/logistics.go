package service

import (
	"context"
)

// AddressValidation is the provider's canonical form of a delivery address.
type AddressValidation struct {
	AddressCode int    `json:"address_code"`
	Address     string `json:"address"`
}

// ShippingRate is one courier quotation for a shipment.
type ShippingRate struct {
	CourierID   string  `json:"courier_id"`
	CourierName string  `json:"courier_name"`
	Amount      float64 `json:"amount"`
	RequestToken string `json:"request_token"`
	ServiceCode string  `json:"service_code"`
}

// RateRequest describes the shipment being quoted. PickupDate is computed by
// the caller as today + 1 day in the provider's date format.
type RateRequest struct {
	SenderAddressCode   int    `json:"sender_address_code"`
	ReceiverAddressCode int    `json:"receiver_address_code"`
	PickupDate          string `json:"pickup_date"`
	PackageWeightKG     float64 `json:"package_weight_kg"`
}

// LogisticsProvider abstracts the shipping label provider (Shipbubble).
type LogisticsProvider interface {
	// ValidateAddress canonicalizes a free-form address string.
	ValidateAddress(ctx context.Context, phone, email, name, address string) (*AddressValidation, error)

	// FetchRates quotes couriers for a prospective shipment.
	FetchRates(ctx context.Context, req *RateRequest) ([]ShippingRate, string, error)

	// ReserveShipment pre-purchases a label for an accepted rate and returns
	// the provider's raw JSON response, which is cached verbatim for the
	// order finalizer.
	ReserveShipment(ctx context.Context, requestToken, serviceCode, courierID string) (string, error)
}
