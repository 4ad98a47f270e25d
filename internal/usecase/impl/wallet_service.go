package impl

import (
	"context"
	"log/slog"

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

// minPayout is the smallest payout the provider accepts, in major units.
var minPayout = decimal.NewFromInt(1000)

type walletService struct {
	txManager  repository.TransactionManager
	storeRepo  repository.StoreRepository
	walletRepo repository.WalletRepository
	gateway    service.PaymentGateway
	logger     *slog.Logger
}

// WalletServiceParams holds dependencies for WalletService, injected by Fx.
type WalletServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	StoreRepo  repository.StoreRepository
	WalletRepo repository.WalletRepository
	Gateway    service.PaymentGateway
	Logger     *slog.Logger
}

// NewWalletService creates a new wallet service instance.
func NewWalletService(params WalletServiceParams) usecase.WalletUsecase {
	return &walletService{
		txManager:  params.TxManager,
		storeRepo:  params.StoreRepo,
		walletRepo: params.WalletRepo,
		gateway:    params.Gateway,
		logger:     params.Logger,
	}
}

// RequestPayout transfers amount from the owner's store wallet to its stored
// bank account. The wallet row stays locked across the provider calls so the
// balance is deducted only after the provider accepts the transfer; any
// provider failure rolls back with the balance untouched.
func (s *walletService) RequestPayout(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) error {
	if amount.LessThan(minPayout) {
		return domainerrors.ErrPayoutBelowMinimum
	}

	store, err := s.storeRepo.FindStoreByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return err
	}

	txErr := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		wallets := f.NewWalletRepository()

		wallet, err := wallets.FindWalletByStoreForUpdate(ctx, store.ID)
		if err != nil {
			return err
		}
		if wallet.Balance.LessThan(amount) {
			return domainerrors.ErrInsufficientFunds
		}

		recipient, err := s.gateway.CreateTransferRecipient(ctx, wallet.AccountName, wallet.AccountNumber, wallet.BankCode)
		if err != nil {
			return err
		}

		// Provider amounts are minor units.
		amountMinor := amount.Mul(decimal.NewFromInt(100)).IntPart()
		if err := s.gateway.InitiateTransfer(ctx, recipient.RecipientCode, amountMinor, "wallet payout"); err != nil {
			return err
		}

		return wallets.Debit(ctx, store.ID, amount)
	})

	if txErr != nil {
		return txErr
	}

	s.logger.InfoContext(ctx, "payout completed",
		slog.String("store_id", store.ID.String()),
		slog.String("amount", amount.String()),
	)

	return nil
}

// GetHistory returns the wallet's mutation history, newest first.
func (s *walletService) GetHistory(ctx context.Context, ownerID uuid.UUID) ([]*entity.PaymentHistory, error) {
	store, err := s.storeRepo.FindStoreByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, err
	}

	return s.walletRepo.ListHistory(ctx, store.ID)
}
