package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PaymentPurpose distinguishes what a collected payment settles.
type PaymentPurpose string

const (
	// PurposeOrder is a customer paying for a cart.
	PurposeOrder PaymentPurpose = "order"
	// PurposeStoreActivation is a dropshipper paying the onboarding fee.
	// The wire value matches what the onboarding flow puts in the provider metadata.
	PurposeStoreActivation PaymentPurpose = "dropshipping_payment"
)

// PaymentStatus is the lifecycle of a payment intent. Transitions out of
// pending are terminal.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentIntent records one attempt to collect money. The reference is
// assigned at initiation and echoed verbatim by the provider's callback; its
// uniqueness is what makes duplicate webhook deliveries safe.
type PaymentIntent struct {
	ID          uuid.UUID       `json:"id"`
	Reference   string          `json:"reference"`
	Purpose     PaymentPurpose  `json:"purpose"`
	UserID      *uuid.UUID      `json:"user_id"`      // Nil for store activation, where the provider supplies the email.
	AmountMinor int64           `json:"amount_minor"` // Kobo, as sent by the provider.
	Status      PaymentStatus   `json:"status"`
	Raw         json.RawMessage `json:"raw"`      // Provider payload captured at finalization.
	OrderID     *uuid.UUID      `json:"order_id"` // Set only after a successful order finalization.
	StoreID     *uuid.UUID      `json:"store_id"` // Set after successful finalization of either purpose.
	CreatedAt   time.Time       `json:"created_at"`
}
