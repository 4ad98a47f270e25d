package postgres

import (
	"context"

	"rocktea/internal/domain/entity"
	domainerrors "rocktea/internal/domain/errors"
	"rocktea/internal/domain/repository"
	"rocktea/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// walletRepository implements the domain.WalletRepository interface using
// GORM. Credit and Debit expect to run inside the caller's transaction; both
// leave a payment history row behind.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository is the constructor for walletRepository.
func NewWalletRepository(db *gorm.DB) repository.WalletRepository {
	return &walletRepository{db: db}
}

// FindWalletByStoreForUpdate retrieves a store's wallet with a row-level
// exclusive lock.
func (repo *walletRepository) FindWalletByStoreForUpdate(ctx context.Context, storeID uuid.UUID) (*entity.Wallet, error) {
	var walletM model.WalletModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("store_id = ?", storeID).
		First(&walletM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWalletNotFound
		}

		return nil, errors.Wrap(err, "failed to find wallet by store")
	}

	return toWalletDomain(&walletM), nil
}

// Credit adds amount to the wallet balance and records the originating order.
func (repo *walletRepository) Credit(ctx context.Context, storeID uuid.UUID, amount decimal.Decimal, orderID *uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WalletModel{}).
		Where("store_id = ?", storeID).
		Update("balance", gorm.Expr("balance + ?", amount))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to credit wallet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWalletNotFound
	}

	return repo.recordHistory(ctx, storeID, amount, orderID)
}

// Debit subtracts amount from the wallet balance. The guarded UPDATE leaves
// the balance untouched when funds are insufficient.
func (repo *walletRepository) Debit(ctx context.Context, storeID uuid.UUID, amount decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WalletModel{}).
		Where("store_id = ? AND balance >= ?", storeID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to debit wallet")
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing wallet from a short balance.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.WalletModel{}).
			Where("store_id = ?", storeID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check wallet existence")
		}
		if count == 0 {
			return repository.ErrWalletNotFound
		}

		return repository.ErrInsufficientFunds
	}

	return repo.recordHistory(ctx, storeID, amount.Neg(), nil)
}

// ListHistory returns the wallet's payment history, newest first.
func (repo *walletRepository) ListHistory(ctx context.Context, storeID uuid.UUID) ([]*entity.PaymentHistory, error) {
	var historyMs []model.PaymentHistoryModel
	err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&historyMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment history")
	}

	history := make([]*entity.PaymentHistory, 0, len(historyMs))
	for i := range historyMs {
		history = append(history, toPaymentHistoryDomain(&historyMs[i]))
	}

	return history, nil
}

func (repo *walletRepository) recordHistory(ctx context.Context, storeID uuid.UUID, amount decimal.Decimal, orderID *uuid.UUID) error {
	historyM := &model.PaymentHistoryModel{
		StoreID: storeID,
		OrderID: orderID,
		Amount:  amount,
	}

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record payment history")
	}

	return nil
}

// toWalletDomain maps a persistence model back to a pure domain entity.
func toWalletDomain(m *model.WalletModel) *entity.Wallet {
	return &entity.Wallet{
		ID:             m.ID,
		StoreID:        m.StoreID,
		Balance:        m.Balance,
		PendingBalance: m.PendingBalance,
		BankCode:       m.BankCode,
		AccountNumber:  m.AccountNumber,
		AccountName:    m.AccountName,
		UpdatedAt:      m.UpdatedAt,
	}
}

// toPaymentHistoryDomain maps a persistence model back to a pure domain entity.
func toPaymentHistoryDomain(m *model.PaymentHistoryModel) *entity.PaymentHistory {
	return &entity.PaymentHistory{
		ID:        m.ID,
		StoreID:   m.StoreID,
		OrderID:   m.OrderID,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}
