package usecase

import (
	"context"

	"rocktea/internal/domain/service"

	"github.com/google/uuid"
)

// RateQuoteInput describes the shipment the client wants quoted.
type RateQuoteInput struct {
	Phone           string
	Email           string
	Name            string
	Address         string
	PackageWeightKG float64
}

// ReserveShipmentInput identifies the accepted rate to pre-purchase.
type ReserveShipmentInput struct {
	RequestToken string
	ServiceCode  string
	CourierID    string
}

// CheckoutUsecase defines the shipping quotation and label reservation flow
// that runs before the user is redirected to the payment provider.
type CheckoutUsecase interface {
	// GetRates validates the delivery address and quotes couriers for a
	// pickup scheduled tomorrow.
	GetRates(ctx context.Context, userID uuid.UUID, input *RateQuoteInput) ([]service.ShippingRate, error)

	// ReserveShipment pre-purchases a label for an accepted rate and stashes
	// the provider's raw response under the user's reservation key.
	ReserveShipment(ctx context.Context, userID uuid.UUID, input *ReserveShipmentInput) error
}
