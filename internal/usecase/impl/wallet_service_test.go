package impl

import (
	"context"
	"testing"

	"rocktea/internal/domain/entity"
	domainerrors "rocktea/internal/domain/errors"
	"rocktea/internal/domain/repository"
	"rocktea/internal/domain/service"
	mockRepo "rocktea/internal/mocks/repository"
	mockSvc "rocktea/internal/mocks/service"
	"rocktea/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type walletServiceMocks struct {
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	storeRepo  *mockRepo.MockStoreRepository
	walletRepo *mockRepo.MockWalletRepository
	gateway    *mockSvc.MockPaymentGateway
}

func newWalletServiceForTest(t *testing.T) (usecase.WalletUsecase, *walletServiceMocks) {
	m := &walletServiceMocks{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		storeRepo:  mockRepo.NewMockStoreRepository(t),
		walletRepo: mockRepo.NewMockWalletRepository(t),
		gateway:    mockSvc.NewMockPaymentGateway(t),
	}

	svc := NewWalletService(WalletServiceParams{
		TxManager:  m.txManager,
		StoreRepo:  m.storeRepo,
		WalletRepo: m.walletRepo,
		Gateway:    m.gateway,
		Logger:     newDiscardLogger(),
	})

	return svc, m
}

func (m *walletServiceMocks) passthroughTx(ctx context.Context) {
	m.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func settledWallet(storeID uuid.UUID, balance int64) *entity.Wallet {
	return &entity.Wallet{
		ID:            uuid.New(),
		StoreID:       storeID,
		Balance:       decimal.NewFromInt(balance),
		BankCode:      "058",
		AccountNumber: "0123456789",
		AccountName:   "Corner Shop Ltd",
	}
}

func TestWalletService_RequestPayout_Success(t *testing.T) {
	svc, m := newWalletServiceForTest(t)
	ctx := context.Background()

	ownerID := uuid.New()
	storeID := uuid.New()
	amount := decimal.NewFromInt(5000)

	m.storeRepo.EXPECT().
		FindStoreByOwner(ctx, ownerID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	m.passthroughTx(ctx)
	m.factory.EXPECT().NewWalletRepository().Return(m.walletRepo)

	m.walletRepo.EXPECT().
		FindWalletByStoreForUpdate(ctx, storeID).
		Return(settledWallet(storeID, 12_000), nil)

	m.gateway.EXPECT().
		CreateTransferRecipient(ctx, "Corner Shop Ltd", "0123456789", "058").
		Return(&service.TransferRecipient{RecipientCode: "RCP_1"}, nil)

	// 5000 NGN becomes 500000 kobo on the wire.
	m.gateway.EXPECT().
		InitiateTransfer(ctx, "RCP_1", int64(500_000), "wallet payout").
		Return(nil)

	m.walletRepo.EXPECT().Debit(ctx, storeID, amount).Return(nil)

	require.NoError(t, svc.RequestPayout(ctx, ownerID, amount))
}

func TestWalletService_RequestPayout_BelowMinimum(t *testing.T) {
	svc, _ := newWalletServiceForTest(t)

	err := svc.RequestPayout(context.Background(), uuid.New(), decimal.NewFromInt(999))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPayoutBelowMinimum)
}

func TestWalletService_RequestPayout_InsufficientFunds(t *testing.T) {
	svc, m := newWalletServiceForTest(t)
	ctx := context.Background()

	ownerID := uuid.New()
	storeID := uuid.New()

	m.storeRepo.EXPECT().
		FindStoreByOwner(ctx, ownerID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	m.passthroughTx(ctx)
	m.factory.EXPECT().NewWalletRepository().Return(m.walletRepo)

	m.walletRepo.EXPECT().
		FindWalletByStoreForUpdate(ctx, storeID).
		Return(settledWallet(storeID, 2_000), nil)

	// No provider call, no debit.
	err := svc.RequestPayout(ctx, ownerID, decimal.NewFromInt(5000))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientFunds)
}

func TestWalletService_RequestPayout_ProviderFailureLeavesBalance(t *testing.T) {
	svc, m := newWalletServiceForTest(t)
	ctx := context.Background()

	ownerID := uuid.New()
	storeID := uuid.New()
	amount := decimal.NewFromInt(5000)

	m.storeRepo.EXPECT().
		FindStoreByOwner(ctx, ownerID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	m.passthroughTx(ctx)
	m.factory.EXPECT().NewWalletRepository().Return(m.walletRepo)

	m.walletRepo.EXPECT().
		FindWalletByStoreForUpdate(ctx, storeID).
		Return(settledWallet(storeID, 12_000), nil)

	m.gateway.EXPECT().
		CreateTransferRecipient(ctx, "Corner Shop Ltd", "0123456789", "058").
		Return(&service.TransferRecipient{RecipientCode: "RCP_1"}, nil)

	m.gateway.EXPECT().
		InitiateTransfer(ctx, "RCP_1", int64(500_000), "wallet payout").
		Return(errors.New("transfer rejected"))

	// The rolled-back transaction never reaches Debit.
	err := svc.RequestPayout(ctx, ownerID, amount)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transfer rejected")
}

func TestWalletService_GetHistory(t *testing.T) {
	svc, m := newWalletServiceForTest(t)
	ctx := context.Background()

	ownerID := uuid.New()
	storeID := uuid.New()
	history := []*entity.PaymentHistory{
		{ID: uuid.New(), StoreID: storeID, Amount: decimal.NewFromInt(3000)},
		{ID: uuid.New(), StoreID: storeID, Amount: decimal.NewFromInt(-1000)},
	}

	m.storeRepo.EXPECT().
		FindStoreByOwner(ctx, ownerID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)
	m.walletRepo.EXPECT().
		ListHistory(ctx, storeID).
		Return(history, nil)

	got, err := svc.GetHistory(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, history, got)
}
