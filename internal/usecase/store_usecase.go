package usecase

import (
	"context"

	"rocktea/internal/domain/entity"

	"github.com/google/uuid"
)

// StoreUsecase defines store lifecycle operations, including the subdomain
// provisioning state machine.
type StoreUsecase interface {
	// CreateStore persists a new store for the owner. The slug and domain
	// name are synthesized from the store name; the store starts with
	// provisioning pending.
	CreateStore(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Store, error)

	// ProvisionDomain drives dns_pending → dns_live (or dns_failed) by
	// upserting the store's CNAME at the provider. Safe to call again after a
	// failure; the upsert is create-or-replace.
	ProvisionDomain(ctx context.Context, storeID uuid.UUID) error

	// DeleteStore soft-deletes the owner's store and queues the CNAME
	// teardown with its notification mail.
	DeleteStore(ctx context.Context, ownerID uuid.UUID) error
}
