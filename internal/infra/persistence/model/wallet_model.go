package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletModel is the GORM-specific struct for the 'wallets' table.
// One wallet per store; balances are mutated only under a row lock.
type WalletModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Balance        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	PendingBalance decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	BankCode       string          `gorm:"type:varchar(10)"`
	AccountNumber  string          `gorm:"type:varchar(20)"`
	AccountName    string          `gorm:"type:varchar(255)"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletModel) TableName() string {
	return "wallets"
}

// PaymentHistoryModel is the GORM-specific struct for the 'payment_histories'
// table. One row per wallet mutation, signed by direction.
type PaymentHistoryModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID   *uuid.UUID      `gorm:"type:uuid"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentHistoryModel) TableName() string {
	return "payment_histories"
}
