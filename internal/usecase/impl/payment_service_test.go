package impl

import (
	"context"
	"encoding/json"
	"testing"

	"rocktea/config"
	"rocktea/internal/domain/entity"
	domainerrors "rocktea/internal/domain/errors"
	"rocktea/internal/domain/repository"
	"rocktea/internal/domain/service"
	mockRepo "rocktea/internal/mocks/repository"
	mockSvc "rocktea/internal/mocks/service"
	mockUC "rocktea/internal/mocks/usecase"
	"rocktea/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	intentRepo   *mockRepo.MockPaymentIntentRepository
	userRepo     *mockRepo.MockUserRepository
	storeRepo    *mockRepo.MockStoreRepository
	cartRepo     *mockRepo.MockCartRepository
	orderRepo    *mockRepo.MockOrderRepository
	walletRepo   *mockRepo.MockWalletRepository
	catalogRepo  *mockRepo.MockCatalogRepository
	gateway      *mockSvc.MockPaymentGateway
	reservations *mockSvc.MockReservationStore
	publisher    *mockSvc.MockEventPublisher
	storeUsecase *mockUC.MockStoreUsecase
}

func newPaymentServiceForTest(t *testing.T) (usecase.PaymentUsecase, *paymentServiceMocks) {
	m := &paymentServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		intentRepo:   mockRepo.NewMockPaymentIntentRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		storeRepo:    mockRepo.NewMockStoreRepository(t),
		cartRepo:     mockRepo.NewMockCartRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		walletRepo:   mockRepo.NewMockWalletRepository(t),
		catalogRepo:  mockRepo.NewMockCatalogRepository(t),
		gateway:      mockSvc.NewMockPaymentGateway(t),
		reservations: mockSvc.NewMockReservationStore(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		storeUsecase: mockUC.NewMockStoreUsecase(t),
	}

	svc := NewPaymentService(PaymentServiceParams{
		TxManager:    m.txManager,
		IntentRepo:   m.intentRepo,
		Gateway:      m.gateway,
		Reservations: m.reservations,
		Publisher:    m.publisher,
		StoreUsecase: m.storeUsecase,
		Config: &config.Config{
			Paystack: &config.PaystackConfig{ActivationFeeMinor: 800_000},
		},
		Logger: newDiscardLogger(),
	})

	return svc, m
}

// passthroughTx makes the mocked transaction manager run the callback against
// the mocked repository factory, as a committed transaction would.
func (m *paymentServiceMocks) passthroughTx(ctx context.Context) {
	m.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func pendingIntent(reference string, purpose entity.PaymentPurpose) *entity.PaymentIntent {
	return &entity.PaymentIntent{
		ID:        uuid.New(),
		Reference: reference,
		Purpose:   purpose,
		Status:    entity.PaymentStatusPending,
	}
}

func chargeEvent(reference string, purpose entity.PaymentPurpose, userID string, amountMinor int64) *usecase.WebhookEvent {
	return &usecase.WebhookEvent{
		Event:       "charge.success",
		Reference:   reference,
		AmountMinor: amountMinor,
		Email:       "buyer@example.com",
		Purpose:     purpose,
		UserID:      userID,
		Raw:         json.RawMessage(`{"event":"charge.success"}`),
	}
}

func TestPaymentService_InitiatePayment_Order(t *testing.T) {
	svc, m := newPaymentServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	var createdRef string
	m.intentRepo.EXPECT().
		CreateIntent(ctx, mock.AnythingOfType("*entity.PaymentIntent")).
		Run(func(_ context.Context, intent *entity.PaymentIntent) {
			createdRef = intent.Reference
			assert.Equal(t, entity.PaymentStatusPending, intent.Status)
			assert.Equal(t, entity.PurposeOrder, intent.Purpose)
			assert.Equal(t, int64(250_000), intent.AmountMinor)
			require.NotNil(t, intent.UserID)
			assert.Equal(t, userID, *intent.UserID)
		}).
		Return(nil)

	m.gateway.EXPECT().
		InitializeTransaction(ctx, "buyer@example.com", int64(250_000), mock.AnythingOfType("string"), entity.PurposeOrder, userID.String()).
		RunAndReturn(func(_ context.Context, _ string, _ int64, reference string, _ entity.PaymentPurpose, _ string) (*service.CheckoutSession, error) {
			return &service.CheckoutSession{
				AuthorizationURL: "https://checkout.paystack.com/abc",
				Reference:        reference,
			}, nil
		})

	result, err := svc.InitiatePayment(ctx, &usecase.InitiatePaymentInput{
		Email:       "buyer@example.com",
		Purpose:     entity.PurposeOrder,
		AmountMinor: 250_000,
		UserID:      userID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc", result.AuthorizationURL)
	assert.Equal(t, createdRef, result.Reference)
}

func TestPaymentService_InitiatePayment_ActivationUsesConfiguredFee(t *testing.T) {
	svc, m := newPaymentServiceForTest(t)
	ctx := context.Background()

	m.intentRepo.EXPECT().
		CreateIntent(ctx, mock.AnythingOfType("*entity.PaymentIntent")).
		Run(func(_ context.Context, intent *entity.PaymentIntent) {
			// The client-supplied amount is ignored for activation.
			assert.Equal(t, int64(800_000), intent.AmountMinor)
			assert.Nil(t, intent.UserID)
		}).
		Return(nil)

	m.gateway.EXPECT().
		InitializeTransaction(ctx, "owner@example.com", int64(800_000), mock.AnythingOfType("string"), entity.PurposeStoreActivation, "").
		Return(&service.CheckoutSession{AuthorizationURL: "https://checkout.paystack.com/xyz", Reference: "ref"}, nil)

	_, err := svc.InitiatePayment(ctx, &usecase.InitiatePaymentInput{
		Email:       "owner@example.com",
		Purpose:     entity.PurposeStoreActivation,
		AmountMinor: 1, // ignored
	})
	require.NoError(t, err)
}

func TestPaymentService_InitiatePayment_RejectsNonPositiveAmount(t *testing.T) {
	svc, _ := newPaymentServiceForTest(t)

	_, err := svc.InitiatePayment(context.Background(), &usecase.InitiatePaymentInput{
		Email:   "buyer@example.com",
		Purpose: entity.PurposeOrder,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_ProcessWebhookEvent_UnhandledEvent(t *testing.T) {
	svc, _ := newPaymentServiceForTest(t)

	err := svc.ProcessWebhookEvent(context.Background(), &usecase.WebhookEvent{Event: "transfer.success"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEventUnhandled)
}

func TestPaymentService_ProcessWebhookEvent_UnknownReference(t *testing.T) {
	svc, m := newPaymentServiceForTest(t)
	ctx := context.Background()

	m.intentRepo.EXPECT().
		FindByReference(ctx, "missing-ref").
		Return(nil, repository.ErrIntentNotFound)

	err := svc.ProcessWebhookEvent(ctx, chargeEvent("missing-ref", entity.PurposeOrder, uuid.NewString(), 1000))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReferenceUnknown)
}

func TestPaymentService_ProcessWebhookEvent_DuplicateDeliveryIsNoOp(t *testing.T) {
	svc, m := newPaymentServiceForTest(t)
	ctx := context.Background()

	intent := pendingIntent("ref-1", entity.PurposeOrder)
	intent.Status = entity.PaymentStatusSuccess

	m.intentRepo.EXPECT().
		FindByReference(ctx, "ref-1").
		Return(intent, nil)

	// No transaction, no writes: the side effects are already committed.
	err := svc.ProcessWebhookEvent(ctx, chargeEvent("ref-1", entity.PurposeOrder, uuid.NewString(), 1000))
	require.NoError(t, err)
}

func TestPaymentService_ProcessWebhookEvent_FailedIntentConflicts(t *testing.T) {
	svc, m := newPaymentServiceForTest(t)
	ctx := context.Background()

	intent := pendingIntent("ref-2", entity.PurposeOrder)
	intent.Status = entity.PaymentStatusFailed

	m.intentRepo.EXPECT().
		FindByReference(ctx, "ref-2").
		Return(intent, nil)

	err := svc.ProcessWebhookEvent(ctx, chargeEvent("ref-2", entity.PurposeOrder, uuid.NewString(), 1000))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIntentConflict)
}

func TestPaymentService_FinalizeOrder_HappyPath(t *testing.T) {
	svc, m := newPaymentServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	storeID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()
	event := chargeEvent("ref-ok", entity.PurposeOrder, userID.String(), 500_000)

	m.intentRepo.EXPECT().
		FindByReference(ctx, "ref-ok").
		Return(pendingIntent("ref-ok", entity.PurposeOrder), nil)

	m.passthroughTx(ctx)
	m.factory.EXPECT().NewPaymentIntentRepository().Return(m.intentRepo)
	m.factory.EXPECT().NewUserRepository().Return(m.userRepo)
	m.factory.EXPECT().NewCartRepository().Return(m.cartRepo)
	m.factory.EXPECT().NewOrderRepository().Return(m.orderRepo)
	m.factory.EXPECT().NewCatalogRepository().Return(m.catalogRepo)
	m.factory.EXPECT().NewWalletRepository().Return(m.walletRepo)

	m.intentRepo.EXPECT().
		FindByReferenceForUpdate(ctx, "ref-ok").
		Return(pendingIntent("ref-ok", entity.PurposeOrder), nil)

	m.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "buyer@example.com"}, nil)

	m.cartRepo.EXPECT().
		FindCartByUserForUpdate(ctx, userID).
		Return(&entity.Cart{
			ID:      cartID,
			UserID:  userID,
			StoreID: storeID,
			Items: []entity.CartItem{
				{ProductID: productID, VariantID: uuid.New(), Quantity: 2},
			},
		}, nil)

	m.reservations.EXPECT().Consume(userID).Return("", false)

	var createdOrder *entity.Order
	m.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = orderID
			createdOrder = order
		}).
		Return(nil)

	m.catalogRepo.EXPECT().
		IncrementSalesCount(ctx, productID, 2).
		Return(nil)

	m.intentRepo.EXPECT().
		MarkSuccess(ctx, "ref-ok", event.Raw, &orderID, &storeID).
		Return(nil)

	m.catalogRepo.EXPECT().
		FindPricing(ctx, storeID, productID).
		Return(&entity.StorePricing{RetailPrice: decimal.NewFromInt(1500)}, nil)

	m.walletRepo.EXPECT().
		Credit(ctx, storeID, decimal.NewFromInt(3000), &orderID).
		Return(nil)

	m.cartRepo.EXPECT().ClearItems(ctx, cartID).Return(nil)

	m.publisher.EXPECT().
		PublishTaskEvent(ctx, mock.AnythingOfType("*service.TaskEvent")).
		Run(func(_ context.Context, task *service.TaskEvent) {
			assert.Equal(t, service.TaskMailOrderConfirmation, task.Kind)
			assert.Equal(t, "buyer@example.com", task.Email)
			assert.Equal(t, createdOrder.OrderSN, task.OrderSN)
		}).
		Return(nil)

	err := svc.ProcessWebhookEvent(ctx, event)
	require.NoError(t, err)

	require.NotNil(t, createdOrder)
	assert.Equal(t, entity.OrderStatusCompleted, createdOrder.Status)
	assert.Equal(t, userID, createdOrder.BuyerID)
	assert.Equal(t, storeID, createdOrder.StoreID)
	assert.Len(t, createdOrder.OrderSN, 5)
	assert.Len(t, createdOrder.DeliveryCode, 5)
	// Minor units divided exactly once.
	assert.True(t, createdOrder.TotalPrice.Equal(decimal.NewFromInt(5000)))
	require.Len(t, createdOrder.Items, 1)
	assert.Equal(t, 2, createdOrder.Items[0].Quantity)
}

func TestPaymentService_FinalizeOrder_AppliesShipmentReservation(t *testing.T) {
	svc, m := newPaymentServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	storeID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()
	event := chargeEvent("ref-ship", entity.PurposeOrder, userID.String(), 100_000)

	m.intentRepo.EXPECT().
		FindByReference(ctx, "ref-ship").
		Return(pendingIntent("ref-ship", entity.PurposeOrder), nil)

	m.passthroughTx(ctx)
	m.factory.EXPECT().NewPaymentIntentRepository().Return(m.intentRepo)
	m.factory.EXPECT().NewUserRepository().Return(m.userRepo)
	m.factory.EXPECT().NewCartRepository().Return(m.cartRepo)
	m.factory.EXPECT().NewOrderRepository().Return(m.orderRepo)
	m.factory.EXPECT().NewCatalogRepository().Return(m.catalogRepo)
	m.factory.EXPECT().NewWalletRepository().Return(m.walletRepo)

	m.intentRepo.EXPECT().
		FindByReferenceForUpdate(ctx, "ref-ship").
		Return(pendingIntent("ref-ship", entity.PurposeOrder), nil)
	m.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "buyer@example.com"}, nil)
	m.cartRepo.EXPECT().
		FindCartByUserForUpdate(ctx, userID).
		Return(&entity.Cart{
			ID:      uuid.New(),
			UserID:  userID,
			StoreID: storeID,
			Items:   []entity.CartItem{{ProductID: productID, Quantity: 1}},
		}, nil)

	m.reservations.EXPECT().
		Consume(userID).
		Return(`{"data":{"order_id":"SB-123","tracking_url":"https://track/SB-123","status":"confirmed","ship_to":{"address":"12 Marina Rd"},"payment":{"shipping_fee":"1500.50"}}}`, true)

	var createdOrder *entity.Order
	m.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = orderID
			createdOrder = order
		}).
		Return(nil)
	m.catalogRepo.EXPECT().IncrementSalesCount(ctx, productID, 1).Return(nil)
	m.intentRepo.EXPECT().MarkSuccess(ctx, "ref-ship", event.Raw, &orderID, &storeID).Return(nil)
	m.catalogRepo.EXPECT().FindPricing(ctx, storeID, productID).Return(nil, repository.ErrPricingNotFound)
	m.walletRepo.EXPECT().Credit(ctx, storeID, decimal.Zero, &orderID).Return(nil)
	m.cartRepo.EXPECT().ClearItems(ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)
	m.publisher.EXPECT().PublishTaskEvent(ctx, mock.AnythingOfType("*service.TaskEvent")).Return(nil)

	err := svc.ProcessWebhookEvent(ctx, event)
	require.NoError(t, err)

	require.NotNil(t, createdOrder)
	assert.Equal(t, "SB-123", createdOrder.TrackingID)
	assert.Equal(t, "https://track/SB-123", createdOrder.TrackingURL)
	assert.Equal(t, "confirmed", createdOrder.TrackingStatus)
	assert.Equal(t, "12 Marina Rd", createdOrder.DeliveryLocation)
	assert.True(t, createdOrder.ShippingFee.Equal(decimal.RequireFromString("1500.50")))
}

func TestPaymentService_FinalizeOrder_MissingUserMarksFailed(t *testing.T) {
	svc, m := newPaymentServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	event := chargeEvent("ref-nouser", entity.PurposeOrder, userID.String(), 100_000)

	m.intentRepo.EXPECT().
		FindByReference(ctx, "ref-nouser").
		Return(pendingIntent("ref-nouser", entity.PurposeOrder), nil)

	m.passthroughTx(ctx)
	m.factory.EXPECT().NewPaymentIntentRepository().Return(m.intentRepo)
	m.factory.EXPECT().NewUserRepository().Return(m.userRepo)

	m.intentRepo.EXPECT().
		FindByReferenceForUpdate(ctx, "ref-nouser").
		Return(pendingIntent("ref-nouser", entity.PurposeOrder), nil)
	m.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	// The rollback marks the intent FAILED and releases the held label.
	m.intentRepo.EXPECT().MarkFailed(ctx, "ref-nouser", event.Raw).Return(nil)
	m.reservations.EXPECT().Clear(userID)

	err := svc.ProcessWebhookEvent(ctx, event)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestPaymentService_FinalizeOrder_RetriesOrderCodeCollisions(t *testing.T) {
	svc, m := newPaymentServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	storeID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()
	event := chargeEvent("ref-retry", entity.PurposeOrder, userID.String(), 100_000)

	m.intentRepo.EXPECT().
		FindByReference(ctx, "ref-retry").
		Return(pendingIntent("ref-retry", entity.PurposeOrder), nil)

	m.passthroughTx(ctx)
	m.factory.EXPECT().NewPaymentIntentRepository().Return(m.intentRepo)
	m.factory.EXPECT().NewUserRepository().Return(m.userRepo)
	m.factory.EXPECT().NewCartRepository().Return(m.cartRepo)
	m.factory.EXPECT().NewOrderRepository().Return(m.orderRepo)
	m.factory.EXPECT().NewCatalogRepository().Return(m.catalogRepo)
	m.factory.EXPECT().NewWalletRepository().Return(m.walletRepo)

	m.intentRepo.EXPECT().
		FindByReferenceForUpdate(ctx, "ref-retry").
		Return(pendingIntent("ref-retry", entity.PurposeOrder), nil)
	m.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "buyer@example.com"}, nil)
	m.cartRepo.EXPECT().
		FindCartByUserForUpdate(ctx, userID).
		Return(&entity.Cart{
			ID:      uuid.New(),
			UserID:  userID,
			StoreID: storeID,
			Items:   []entity.CartItem{{ProductID: productID, Quantity: 1}},
		}, nil)
	m.reservations.EXPECT().Consume(userID).Return("", false)

	codes := map[string]bool{}
	attempts := 0
	m.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			attempts++
			// Codes are regenerated between attempts.
			codes[order.OrderSN+order.DeliveryCode] = true
			if attempts < 3 {
				return repository.ErrOrderCodeCollision
			}
			order.ID = orderID

			return nil
		})

	m.catalogRepo.EXPECT().IncrementSalesCount(ctx, productID, 1).Return(nil)
	m.intentRepo.EXPECT().MarkSuccess(ctx, "ref-retry", event.Raw, &orderID, &storeID).Return(nil)
	m.catalogRepo.EXPECT().FindPricing(ctx, storeID, productID).Return(&entity.StorePricing{RetailPrice: decimal.NewFromInt(100)}, nil)
	m.walletRepo.EXPECT().Credit(ctx, storeID, decimal.NewFromInt(100), &orderID).Return(nil)
	m.cartRepo.EXPECT().ClearItems(ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)
	m.publisher.EXPECT().PublishTaskEvent(ctx, mock.AnythingOfType("*service.TaskEvent")).Return(nil)

	err := svc.ProcessWebhookEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestPaymentService_FinalizeOrder_ConcurrentWinnerAlreadyCommitted(t *testing.T) {
	svc, m := newPaymentServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	event := chargeEvent("ref-race", entity.PurposeOrder, userID.String(), 100_000)

	// The unlocked read still sees pending...
	m.intentRepo.EXPECT().
		FindByReference(ctx, "ref-race").
		Return(pendingIntent("ref-race", entity.PurposeOrder), nil)

	m.passthroughTx(ctx)
	m.factory.EXPECT().NewPaymentIntentRepository().Return(m.intentRepo)

	// ...but the locked read sees the concurrent winner's commit.
	committed := pendingIntent("ref-race", entity.PurposeOrder)
	committed.Status = entity.PaymentStatusSuccess
	m.intentRepo.EXPECT().
		FindByReferenceForUpdate(ctx, "ref-race").
		Return(committed, nil)

	// No order, no FAILED mark, no mail: a clean idempotent no-op.
	err := svc.ProcessWebhookEvent(ctx, event)
	require.NoError(t, err)
}

func TestPaymentService_ActivateStore_HappyPath(t *testing.T) {
	svc, m := newPaymentServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	storeID := uuid.New()
	event := chargeEvent("ref-act", entity.PurposeStoreActivation, "", 800_000)

	m.intentRepo.EXPECT().
		FindByReference(ctx, "ref-act").
		Return(pendingIntent("ref-act", entity.PurposeStoreActivation), nil)

	m.passthroughTx(ctx)
	m.factory.EXPECT().NewPaymentIntentRepository().Return(m.intentRepo)
	m.factory.EXPECT().NewUserRepository().Return(m.userRepo)
	m.factory.EXPECT().NewStoreRepository().Return(m.storeRepo)

	m.intentRepo.EXPECT().
		FindByReferenceForUpdate(ctx, "ref-act").
		Return(pendingIntent("ref-act", entity.PurposeStoreActivation), nil)
	m.userRepo.EXPECT().
		FindUserByEmail(ctx, "buyer@example.com").
		Return(&entity.User{ID: userID, Email: "buyer@example.com"}, nil)
	m.storeRepo.EXPECT().
		FindStoreByOwner(ctx, userID).
		Return(&entity.Store{ID: storeID, OwnerID: userID}, nil)
	m.storeRepo.EXPECT().MarkActivated(ctx, storeID).Return(nil)
	m.intentRepo.EXPECT().
		MarkSuccess(ctx, "ref-act", event.Raw, (*uuid.UUID)(nil), &storeID).
		Return(nil)

	// Provisioning runs after the commit.
	m.storeUsecase.EXPECT().ProvisionDomain(ctx, storeID).Return(nil)

	err := svc.ProcessWebhookEvent(ctx, event)
	require.NoError(t, err)
}

func TestPaymentService_ActivateStore_ProvisioningFailureDoesNotFailWebhook(t *testing.T) {
	svc, m := newPaymentServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	storeID := uuid.New()
	event := chargeEvent("ref-dns", entity.PurposeStoreActivation, "", 800_000)

	m.intentRepo.EXPECT().
		FindByReference(ctx, "ref-dns").
		Return(pendingIntent("ref-dns", entity.PurposeStoreActivation), nil)

	m.passthroughTx(ctx)
	m.factory.EXPECT().NewPaymentIntentRepository().Return(m.intentRepo)
	m.factory.EXPECT().NewUserRepository().Return(m.userRepo)
	m.factory.EXPECT().NewStoreRepository().Return(m.storeRepo)

	m.intentRepo.EXPECT().
		FindByReferenceForUpdate(ctx, "ref-dns").
		Return(pendingIntent("ref-dns", entity.PurposeStoreActivation), nil)
	m.userRepo.EXPECT().
		FindUserByEmail(ctx, "buyer@example.com").
		Return(&entity.User{ID: userID}, nil)
	m.storeRepo.EXPECT().
		FindStoreByOwner(ctx, userID).
		Return(&entity.Store{ID: storeID, OwnerID: userID}, nil)
	m.storeRepo.EXPECT().MarkActivated(ctx, storeID).Return(nil)
	m.intentRepo.EXPECT().
		MarkSuccess(ctx, "ref-dns", event.Raw, (*uuid.UUID)(nil), &storeID).
		Return(nil)

	m.storeUsecase.EXPECT().
		ProvisionDomain(ctx, storeID).
		Return(errors.New("provider down"))

	// The activation itself is committed; the store sits in dns_failed for an
	// admin re-trigger.
	err := svc.ProcessWebhookEvent(ctx, event)
	require.NoError(t, err)
}
