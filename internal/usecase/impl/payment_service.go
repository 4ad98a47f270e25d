// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"

	"rocktea/config"
	"rocktea/internal/domain/entity"
	domainerrors "rocktea/internal/domain/errors"
	"rocktea/internal/domain/repository"
	"rocktea/internal/domain/service"
	"rocktea/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// eventChargeSuccess is the only provider event the pipeline finalizes.
const eventChargeSuccess = "charge.success"

// orderCodeAttempts bounds regeneration retries on order_sn / delivery_code
// unique-constraint collisions.
const orderCodeAttempts = 5

type paymentService struct {
	txManager    repository.TransactionManager
	intentRepo   repository.PaymentIntentRepository
	gateway      service.PaymentGateway
	reservations service.ReservationStore
	publisher    service.EventPublisher
	storeUsecase usecase.StoreUsecase
	config       *config.Config
	logger       *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	IntentRepo   repository.PaymentIntentRepository
	Gateway      service.PaymentGateway
	Reservations service.ReservationStore
	Publisher    service.EventPublisher
	StoreUsecase usecase.StoreUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPaymentService creates a new payment service instance.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:    params.TxManager,
		intentRepo:   params.IntentRepo,
		gateway:      params.Gateway,
		reservations: params.Reservations,
		publisher:    params.Publisher,
		storeUsecase: params.StoreUsecase,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// InitiatePayment assigns a fresh reference, persists a PENDING intent and
// opens a provider checkout session bound to that reference.
func (s *paymentService) InitiatePayment(ctx context.Context, input *usecase.InitiatePaymentInput) (*usecase.InitiatePaymentResult, error) {
	amountMinor := input.AmountMinor
	if input.Purpose == entity.PurposeStoreActivation {
		amountMinor = s.config.Paystack.ActivationFeeMinor
	}
	if amountMinor <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}

	reference := uuid.NewString()

	intent := &entity.PaymentIntent{
		Reference:   reference,
		Purpose:     input.Purpose,
		AmountMinor: amountMinor,
		Status:      entity.PaymentStatusPending,
	}
	if input.UserID != "" {
		userID, err := uuid.Parse(input.UserID)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("user_id is not a valid UUID")
		}
		intent.UserID = &userID
	}

	if err := s.intentRepo.CreateIntent(ctx, intent); err != nil {
		return nil, err
	}

	session, err := s.gateway.InitializeTransaction(ctx, input.Email, amountMinor, reference, input.Purpose, input.UserID)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "payment initiated",
		slog.String("reference", reference),
		slog.String("purpose", string(input.Purpose)),
		slog.Int64("amount_minor", amountMinor),
	)

	return &usecase.InitiatePaymentResult{
		AuthorizationURL: session.AuthorizationURL,
		Reference:        session.Reference,
	}, nil
}

// ProcessWebhookEvent routes a verified provider callback. A nil return means
// the outcome is durably committed, or already was for duplicate deliveries.
func (s *paymentService) ProcessWebhookEvent(ctx context.Context, event *usecase.WebhookEvent) error {
	if event.Event != eventChargeSuccess {
		return domainerrors.ErrEventUnhandled.WithDetails(event.Event)
	}

	intent, err := s.intentRepo.FindByReference(ctx, event.Reference)
	if err != nil {
		if errors.Is(err, repository.ErrIntentNotFound) {
			return domainerrors.ErrReferenceUnknown
		}

		return err
	}

	switch intent.Status {
	case entity.PaymentStatusSuccess:
		// Duplicate delivery. The side effects are already committed.
		s.logger.InfoContext(ctx, "duplicate webhook delivery acknowledged",
			slog.String("reference", event.Reference),
		)

		return nil
	case entity.PaymentStatusFailed:
		return domainerrors.ErrIntentConflict
	}

	switch intent.Purpose {
	case entity.PurposeOrder:
		return s.finalizeOrder(ctx, event)
	case entity.PurposeStoreActivation:
		return s.activateStore(ctx, event)
	default:
		return domainerrors.ErrEventUnhandled.WithDetails("unknown purpose " + string(intent.Purpose))
	}
}

// finalizeOrder converts the payer's cart into a durable order inside one
// database transaction. Any failure rolls the transaction back, marks the
// intent FAILED and clears the payer's shipment reservation.
func (s *paymentService) finalizeOrder(ctx context.Context, event *usecase.WebhookEvent) error {
	userID, parseErr := uuid.Parse(event.UserID)
	if parseErr != nil {
		s.markFailed(ctx, event)

		return domainerrors.ErrUserNotFound.WithDetails("metadata user_id is not a valid UUID")
	}

	var (
		order      *entity.Order
		buyerEmail string
		duplicate  bool
	)

	txErr := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		// Lock the intent row first: concurrent deliveries of the same
		// reference serialize here, and the loser sees a terminal status.
		intent, err := f.NewPaymentIntentRepository().FindByReferenceForUpdate(ctx, event.Reference)
		if err != nil {
			return err
		}
		switch intent.Status {
		case entity.PaymentStatusSuccess:
			duplicate = true

			return nil
		case entity.PaymentStatusFailed:
			return domainerrors.ErrIntentConflict
		}

		user, err := f.NewUserRepository().FindUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return err
		}
		buyerEmail = user.Email

		// The row lock serializes concurrent checkouts on the same cart.
		cart, err := f.NewCartRepository().FindCartByUserForUpdate(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrCartNotFound
			}

			return err
		}
		if len(cart.Items) == 0 {
			return domainerrors.ErrCartNotFound.WithDetails("cart has no items")
		}

		// The provider sends minor units; divide once, here.
		total := decimal.NewFromInt(event.AmountMinor).Div(decimal.NewFromInt(100))

		order = s.buildOrder(user.ID, cart, total)
		s.applyReservation(ctx, user.ID, order)

		if err := s.createOrderWithRetry(ctx, f, order); err != nil {
			return err
		}

		catalog := f.NewCatalogRepository()
		for _, item := range cart.Items {
			if err := catalog.IncrementSalesCount(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		if err := f.NewPaymentIntentRepository().MarkSuccess(ctx, event.Reference, event.Raw, &order.ID, &cart.StoreID); err != nil {
			return err
		}

		credited := s.computeCredit(ctx, catalog, cart)
		if err := f.NewWalletRepository().Credit(ctx, cart.StoreID, credited, &order.ID); err != nil {
			return err
		}

		return f.NewCartRepository().ClearItems(ctx, cart.ID)
	})

	if txErr != nil {
		if !errors.Is(txErr, domainerrors.ErrIntentConflict) {
			s.markFailed(ctx, event)
		}
		s.reservations.Clear(userID)

		return txErr
	}
	if duplicate {
		return nil
	}

	s.logger.InfoContext(ctx, "order finalized",
		slog.String("reference", event.Reference),
		slog.String("order_id", order.ID.String()),
		slog.String("order_sn", order.OrderSN),
	)

	// Post-commit, fire and forget.
	s.publishTask(ctx, &service.TaskEvent{
		Kind:    service.TaskMailOrderConfirmation,
		Email:   buyerEmail,
		OrderSN: order.OrderSN,
	})

	return nil
}

// activateStore marks the payer's store paid and complete, then triggers
// subdomain provisioning outside the webhook transaction.
func (s *paymentService) activateStore(ctx context.Context, event *usecase.WebhookEvent) error {
	var (
		store     *entity.Store
		duplicate bool
	)

	txErr := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		intent, err := f.NewPaymentIntentRepository().FindByReferenceForUpdate(ctx, event.Reference)
		if err != nil {
			return err
		}
		switch intent.Status {
		case entity.PaymentStatusSuccess:
			duplicate = true

			return nil
		case entity.PaymentStatusFailed:
			return domainerrors.ErrIntentConflict
		}

		// The onboarding flow is unauthenticated, so the payer is resolved by
		// the email the provider reports.
		user, err := f.NewUserRepository().FindUserByEmail(ctx, event.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return err
		}

		store, err = f.NewStoreRepository().FindStoreByOwner(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrStoreNotFound
			}

			return err
		}

		if err := f.NewStoreRepository().MarkActivated(ctx, store.ID); err != nil {
			return err
		}

		return f.NewPaymentIntentRepository().MarkSuccess(ctx, event.Reference, event.Raw, nil, &store.ID)
	})

	if txErr != nil {
		if !errors.Is(txErr, domainerrors.ErrIntentConflict) {
			s.markFailed(ctx, event)
		}

		return txErr
	}
	if duplicate {
		return nil
	}

	s.logger.InfoContext(ctx, "store activated",
		slog.String("reference", event.Reference),
		slog.String("store_id", store.ID.String()),
	)

	// Provisioning runs after the webhook commit; its failure leaves the
	// store in dns_failed for an admin re-trigger, never a webhook retry.
	if err := s.storeUsecase.ProvisionDomain(ctx, store.ID); err != nil {
		s.logger.ErrorContext(ctx, "domain provisioning failed after activation",
			slog.String("store_id", store.ID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}

func (s *paymentService) buildOrder(buyerID uuid.UUID, cart *entity.Cart, total decimal.Decimal) *entity.Order {
	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	return &entity.Order{
		BuyerID:    buyerID,
		StoreID:    cart.StoreID,
		Status:     entity.OrderStatusCompleted,
		TotalPrice: total,
		Items:      items,
	}
}

// applyReservation consumes the buyer's shipment reservation and copies its
// tracking fields onto the order. Absence is tolerated; malformed JSON is
// logged and dropped.
func (s *paymentService) applyReservation(ctx context.Context, userID uuid.UUID, order *entity.Order) {
	raw, ok := s.reservations.Consume(userID)
	if !ok {
		return
	}

	reservation, err := entity.ParseShipmentReservation(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "dropping malformed shipment reservation",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return
	}

	order.TrackingID = reservation.Data.OrderID
	order.TrackingURL = reservation.Data.TrackingURL
	order.TrackingStatus = reservation.Data.Status
	order.DeliveryLocation = reservation.Data.ShipTo.Address
	order.ShippingFee = reservation.Data.Payment.ShippingFee
}

// createOrderWithRetry regenerates order_sn and delivery_code on unique
// constraint collisions, up to orderCodeAttempts times.
func (s *paymentService) createOrderWithRetry(ctx context.Context, f repository.RepositoryFactory, order *entity.Order) error {
	orderRepo := f.NewOrderRepository()

	for attempt := 0; attempt < orderCodeAttempts; attempt++ {
		order.OrderSN = entity.NewOrderSN()
		order.DeliveryCode = entity.NewDeliveryCode()

		err := orderRepo.CreateOrder(ctx, order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrOrderCodeCollision) {
			return err
		}
	}

	return errors.Errorf("could not generate unique order codes in %d attempts", orderCodeAttempts)
}

// computeCredit sums retail_price × quantity over the cart using the store's
// pricing rows. A missing row contributes zero; the item is still recorded.
func (s *paymentService) computeCredit(ctx context.Context, catalog repository.CatalogRepository, cart *entity.Cart) decimal.Decimal {
	credited := decimal.Zero
	for _, item := range cart.Items {
		pricing, err := catalog.FindPricing(ctx, cart.StoreID, item.ProductID)
		if err != nil {
			s.logger.WarnContext(ctx, "no pricing row for cart item, crediting zero",
				slog.String("store_id", cart.StoreID.String()),
				slog.String("product_id", item.ProductID.String()),
			)

			continue
		}
		credited = credited.Add(pricing.RetailPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return credited
}

// markFailed records the terminal FAILED state outside the rolled-back
// transaction. A failure here only loses the FAILED marker, so it is logged
// rather than surfaced.
func (s *paymentService) markFailed(ctx context.Context, event *usecase.WebhookEvent) {
	if err := s.intentRepo.MarkFailed(ctx, event.Reference, event.Raw); err != nil {
		s.logger.ErrorContext(ctx, "failed to mark payment intent failed",
			slog.String("reference", event.Reference),
			slog.Any("error", err),
		)
	}
}

func (s *paymentService) publishTask(ctx context.Context, event *service.TaskEvent) {
	if err := s.publisher.PublishTaskEvent(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish task event",
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}
