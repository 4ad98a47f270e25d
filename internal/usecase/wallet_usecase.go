package usecase

import (
	"context"

	"rocktea/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletUsecase defines the merchant-facing wallet operations.
type WalletUsecase interface {
	// RequestPayout transfers amount from the owner's store wallet to the
	// wallet's stored bank account. The balance is deducted only after the
	// provider accepts the transfer; any provider failure leaves it untouched.
	RequestPayout(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) error

	// GetHistory returns the wallet's mutation history, newest first.
	GetHistory(ctx context.Context, ownerID uuid.UUID) ([]*entity.PaymentHistory, error)
}
