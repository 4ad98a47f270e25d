package impl

import (
	"context"
	"log/slog"
	"time"

	"rocktea/config"
	"rocktea/internal/domain/service"
	"rocktea/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// pickupDateLayout is the logistics provider's date format.
const pickupDateLayout = "2006-01-02"

type checkoutService struct {
	logistics    service.LogisticsProvider
	reservations service.ReservationStore
	config       *config.Config
	logger       *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Logistics    service.LogisticsProvider
	Reservations service.ReservationStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCheckoutService creates a new checkout service instance.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		logistics:    params.Logistics,
		reservations: params.Reservations,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// GetRates validates the delivery address, then quotes couriers for a pickup
// scheduled tomorrow.
func (s *checkoutService) GetRates(ctx context.Context, userID uuid.UUID, input *usecase.RateQuoteInput) ([]service.ShippingRate, error) {
	validation, err := s.logistics.ValidateAddress(ctx, input.Phone, input.Email, input.Name, input.Address)
	if err != nil {
		return nil, err
	}

	req := &service.RateRequest{
		SenderAddressCode:   s.config.Shipbubble.SenderAddressCode,
		ReceiverAddressCode: validation.AddressCode,
		PickupDate:          time.Now().AddDate(0, 0, 1).Format(pickupDateLayout),
		PackageWeightKG:     input.PackageWeightKG,
	}

	rates, _, err := s.logistics.FetchRates(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "shipping rates fetched",
		slog.String("user_id", userID.String()),
		slog.Int("courier_count", len(rates)),
	)

	return rates, nil
}

// ReserveShipment pre-purchases a label for the accepted rate and stashes the
// provider's raw response under the user's reservation key. A second
// reservation overwrites the first; the most recent wins.
func (s *checkoutService) ReserveShipment(ctx context.Context, userID uuid.UUID, input *usecase.ReserveShipmentInput) error {
	raw, err := s.logistics.ReserveShipment(ctx, input.RequestToken, input.ServiceCode, input.CourierID)
	if err != nil {
		return err
	}

	s.reservations.Set(userID, raw, s.config.Reservation.TTL)

	s.logger.InfoContext(ctx, "shipment reserved",
		slog.String("user_id", userID.String()),
	)

	return nil
}
