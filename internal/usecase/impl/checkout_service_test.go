package impl

import (
	"context"
	"testing"
	"time"

	"rocktea/config"
	"rocktea/internal/domain/service"
	mockSvc "rocktea/internal/mocks/service"
	"rocktea/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceMocks struct {
	logistics    *mockSvc.MockLogisticsProvider
	reservations *mockSvc.MockReservationStore
}

func newCheckoutServiceForTest(t *testing.T) (usecase.CheckoutUsecase, *checkoutServiceMocks) {
	m := &checkoutServiceMocks{
		logistics:    mockSvc.NewMockLogisticsProvider(t),
		reservations: mockSvc.NewMockReservationStore(t),
	}

	svc := NewCheckoutService(CheckoutServiceParams{
		Logistics:    m.logistics,
		Reservations: m.reservations,
		Config: &config.Config{
			Shipbubble:  &config.ShipbubbleConfig{SenderAddressCode: 44_021},
			Reservation: &config.ReservationConfig{TTL: time.Hour},
		},
		Logger: newDiscardLogger(),
	})

	return svc, m
}

func TestCheckoutService_GetRates(t *testing.T) {
	svc, m := newCheckoutServiceForTest(t)
	ctx := context.Background()

	m.logistics.EXPECT().
		ValidateAddress(ctx, "+2348012345678", "buyer@example.com", "Ada", "12 Marina Rd, Lagos").
		Return(&service.AddressValidation{AddressCode: 90_210}, nil)

	quoted := []service.ShippingRate{
		{CourierID: "dhl", CourierName: "DHL", Amount: 2500, RequestToken: "tok", ServiceCode: "std"},
	}
	m.logistics.EXPECT().
		FetchRates(ctx, mock.AnythingOfType("*service.RateRequest")).
		Run(func(_ context.Context, req *service.RateRequest) {
			assert.Equal(t, 44_021, req.SenderAddressCode)
			assert.Equal(t, 90_210, req.ReceiverAddressCode)
			// Pickup is scheduled for tomorrow in the provider's date format.
			assert.Equal(t, time.Now().AddDate(0, 0, 1).Format("2006-01-02"), req.PickupDate)
			assert.InDelta(t, 1.5, req.PackageWeightKG, 0.001)
		}).
		Return(quoted, `{"status":"success"}`, nil)

	rates, err := svc.GetRates(ctx, uuid.New(), &usecase.RateQuoteInput{
		Phone:           "+2348012345678",
		Email:           "buyer@example.com",
		Name:            "Ada",
		Address:         "12 Marina Rd, Lagos",
		PackageWeightKG: 1.5,
	})
	require.NoError(t, err)
	assert.Equal(t, quoted, rates)
}

func TestCheckoutService_ReserveShipment(t *testing.T) {
	svc, m := newCheckoutServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	raw := `{"data":{"order_id":"SB-9","status":"confirmed"}}`
	m.logistics.EXPECT().
		ReserveShipment(ctx, "tok", "std", "dhl").
		Return(raw, nil)

	// The raw provider response is stashed verbatim for the order finalizer.
	m.reservations.EXPECT().Set(userID, raw, time.Hour)

	err := svc.ReserveShipment(ctx, userID, &usecase.ReserveShipmentInput{
		RequestToken: "tok",
		ServiceCode:  "std",
		CourierID:    "dhl",
	})
	require.NoError(t, err)
}

func TestCheckoutService_ReserveShipment_ProviderFailure(t *testing.T) {
	svc, m := newCheckoutServiceForTest(t)
	ctx := context.Background()

	m.logistics.EXPECT().
		ReserveShipment(ctx, "tok", "std", "dhl").
		Return("", errors.New("label purchase failed"))

	// Nothing is stashed on failure.
	err := svc.ReserveShipment(ctx, uuid.New(), &usecase.ReserveShipmentInput{
		RequestToken: "tok",
		ServiceCode:  "std",
		CourierID:    "dhl",
	})
	require.Error(t, err)
}
