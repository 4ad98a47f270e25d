package repository

import (
	"context"

	"rocktea/internal/domain/entity"
	"rocktea/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for wallet persistence.
var (
	// ErrWalletNotFound is returned when a store has no wallet row.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrInsufficientFunds is returned when a debit exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
)

// WalletRepository defines the interface for the per-store wallet ledger.
// Credit and Debit run inside the caller's transaction; both write a
// PaymentHistory row.
type WalletRepository interface {
	// FindWalletByStoreForUpdate retrieves a store's wallet with a row-level
	// exclusive lock.
	FindWalletByStoreForUpdate(ctx context.Context, storeID uuid.UUID) (*entity.Wallet, error)

	// Credit adds amount to the wallet balance and records the originating order.
	Credit(ctx context.Context, storeID uuid.UUID, amount decimal.Decimal, orderID *uuid.UUID) error

	// Debit subtracts amount from the wallet balance. Fails with
	// ErrInsufficientFunds when balance < amount; the balance is untouched.
	Debit(ctx context.Context, storeID uuid.UUID, amount decimal.Decimal) error

	// ListHistory returns the wallet's payment history, newest first.
	ListHistory(ctx context.Context, storeID uuid.UUID) ([]*entity.PaymentHistory, error)
}
