package repository

import (
	"context"

	"rocktea/internal/domain/entity"
	"rocktea/internal/errors"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when a store lookup misses.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the interface for store-related database operations.
type StoreRepository interface {
	// CreateStore persists a new store in the created DNS state.
	CreateStore(ctx context.Context, store *entity.Store) error

	// FindStoreByID retrieves a store by its unique ID.
	FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindStoreByOwner retrieves the store belonging to a user.
	FindStoreByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error)

	// MarkActivated flips has_made_payment and completed after a successful
	// activation payment.
	MarkActivated(ctx context.Context, id uuid.UUID) error

	// UpdateDNSState records a provisioning transition. dnsRecordCreated is
	// only true for the live state.
	UpdateDNSState(ctx context.Context, id uuid.UUID, state entity.DNSState, dnsRecordCreated bool) error

	// DeleteStore soft-deletes a store after its CNAME teardown is dispatched.
	DeleteStore(ctx context.Context, id uuid.UUID) error
}
