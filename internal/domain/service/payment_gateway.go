// Package service defines interfaces for external collaborators of the domain.
package service

import (
	"context"

	"rocktea/internal/domain/entity"
)

// CheckoutSession is the provider-side handle for a freshly initiated payment.
type CheckoutSession struct {
	AuthorizationURL string `json:"authorization_url"` // Where the payer is redirected.
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"` // Echoed verbatim in the webhook callback.
}

// TransferRecipient identifies a settlement destination registered with the
// payment provider.
type TransferRecipient struct {
	RecipientCode string `json:"recipient_code"`
}

// PaymentGateway abstracts the payment provider (Paystack).
type PaymentGateway interface {
	// InitializeTransaction opens a checkout session for the given amount in
	// minor units. purpose and userID travel in the transaction metadata and
	// come back in the webhook.
	InitializeTransaction(ctx context.Context, email string, amountMinor int64, reference string, purpose entity.PaymentPurpose, userID string) (*CheckoutSession, error)

	// CreateTransferRecipient registers a bank account for payouts.
	CreateTransferRecipient(ctx context.Context, name, accountNumber, bankCode string) (*TransferRecipient, error)

	// InitiateTransfer moves amountMinor to a previously registered recipient.
	// Only a nil error means the provider accepted the transfer.
	InitiateTransfer(ctx context.Context, recipientCode string, amountMinor int64, reason string) error
}
