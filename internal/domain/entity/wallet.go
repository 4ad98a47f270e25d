package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet holds a store's settled and pending funds. Balances never go
// negative; every mutation happens inside the transaction that caused it and
// leaves a PaymentHistory row behind.
type Wallet struct {
	ID             uuid.UUID       `json:"id"`
	StoreID        uuid.UUID       `json:"store_id"`
	Balance        decimal.Decimal `json:"balance"`
	PendingBalance decimal.Decimal `json:"pending_balance"`
	BankCode       string          `json:"bank_code"`      // Settlement bank, used for payouts.
	AccountNumber  string          `json:"account_number"` // Settlement account number.
	AccountName    string          `json:"account_name"`   // Settlement account holder.
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PaymentHistory is the audit row written for every wallet mutation.
// Credits carry the order that earned them; payout debits carry no order.
type PaymentHistory struct {
	ID        uuid.UUID       `json:"id"`
	StoreID   uuid.UUID       `json:"store_id"`
	OrderID   *uuid.UUID      `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"` // Positive for credits, negative for debits.
	CreatedAt time.Time       `json:"created_at"`
}
