// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"encoding/json"

	"rocktea/internal/domain/entity"
	"rocktea/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for payment intent persistence.
var (
	// ErrIntentNotFound is returned when no intent exists for a reference.
	ErrIntentNotFound = errors.New("payment intent not found")
	// ErrIntentAlreadyFinal is returned when a terminal intent is finalized
	// again with a conflicting outcome.
	ErrIntentAlreadyFinal = errors.New("payment intent already finalized")
	// ErrDuplicateReference is returned when a reference is initiated twice.
	ErrDuplicateReference = errors.New("payment reference already exists")
)

// PaymentIntentRepository defines the interface for the payment ledger.
type PaymentIntentRepository interface {
	// CreateIntent persists a fresh pending intent.
	CreateIntent(ctx context.Context, intent *entity.PaymentIntent) error

	// FindByReference retrieves an intent by its provider reference.
	FindByReference(ctx context.Context, reference string) (*entity.PaymentIntent, error)

	// FindByReferenceForUpdate retrieves an intent with a row-level exclusive
	// lock, serializing concurrent webhook deliveries for the same reference.
	FindByReferenceForUpdate(ctx context.Context, reference string) (*entity.PaymentIntent, error)

	// MarkSuccess performs the pending → success transition, capturing the raw
	// provider payload and linking the downstream artifacts. Re-marking an
	// already successful intent is a no-op; a failed intent returns
	// ErrIntentAlreadyFinal.
	MarkSuccess(ctx context.Context, reference string, raw json.RawMessage, orderID, storeID *uuid.UUID) error

	// MarkFailed performs the pending → failed transition. Re-marking an
	// already failed intent is a no-op; a successful intent returns
	// ErrIntentAlreadyFinal.
	MarkFailed(ctx context.Context, reference string, raw json.RawMessage) error
}
