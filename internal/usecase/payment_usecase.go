// Package usecase defines the application's business logic interfaces.
package usecase

import (
	"context"
	"encoding/json"

	"rocktea/internal/domain/entity"
)

// WebhookEvent is the parsed provider callback handed to the pipeline after
// signature verification. Raw carries the full provider payload for the ledger.
type WebhookEvent struct {
	Event       string
	Reference   string
	AmountMinor int64 // Kobo, as sent by the provider.
	Email       string
	Purpose     entity.PaymentPurpose
	UserID      string // From metadata; empty for store activation.
	Raw         json.RawMessage
}

// InitiatePaymentInput describes a payment the client wants to start.
type InitiatePaymentInput struct {
	Email       string
	Purpose     entity.PaymentPurpose
	AmountMinor int64  // Ignored for store activation, which uses the configured fee.
	UserID      string // Travels in the provider metadata for order payments.
}

// InitiatePaymentResult is the provider handle returned to the client.
type InitiatePaymentResult struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
}

// PaymentUsecase defines payment initiation and webhook finalization.
type PaymentUsecase interface {
	// InitiatePayment assigns a fresh reference, persists a pending intent and
	// opens a provider checkout session bound to that reference.
	InitiatePayment(ctx context.Context, input *InitiatePaymentInput) (*InitiatePaymentResult, error)

	// ProcessWebhookEvent routes a verified provider callback: order payments
	// go through the order finalizer, activation payments through the store
	// activator. A nil return means the outcome is durably committed (or was
	// already, for duplicate deliveries).
	ProcessWebhookEvent(ctx context.Context, event *WebhookEvent) error
}
