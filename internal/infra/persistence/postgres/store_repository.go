package postgres

import (
	"context"

	"rocktea/internal/domain/entity"
	domainerrors "rocktea/internal/domain/errors"
	"rocktea/internal/domain/repository"
	"rocktea/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the domain.StoreRepository interface using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// CreateStore persists a new store in the created DNS state.
func (repo *storeRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("store slug already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	// Update the entity with the generated ID and timestamps.
	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// FindStoreByID retrieves a store by its unique ID.
func (repo *storeRepository) FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeM), nil
}

// FindStoreByOwner retrieves the store belonging to a user.
func (repo *storeRepository) FindStoreByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&storeM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by owner")
	}

	return toStoreDomain(&storeM), nil
}

// MarkActivated flips has_made_payment and completed after a successful
// activation payment.
func (repo *storeRepository) MarkActivated(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"has_made_payment": true,
			"completed":        true,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark store activated")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// UpdateDNSState records a provisioning transition.
func (repo *storeRepository) UpdateDNSState(ctx context.Context, id uuid.UUID, state entity.DNSState, dnsRecordCreated bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"dns_state":          string(state),
			"dns_record_created": dnsRecordCreated,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store dns state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// DeleteStore soft-deletes a store.
func (repo *storeRepository) DeleteStore(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StoreModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// fromStoreDomain maps a pure domain entity to a persistence model.
func fromStoreDomain(s *entity.Store) *model.StoreModel {
	return &model.StoreModel{
		ID:               s.ID,
		OwnerID:          s.OwnerID,
		Name:             s.Name,
		Slug:             s.Slug,
		DomainName:       s.DomainName,
		DNSState:         string(s.DNSState),
		DNSRecordCreated: s.DNSRecordCreated,
		HasMadePayment:   s.HasMadePayment,
		Completed:        s.Completed,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// toStoreDomain maps a persistence model back to a pure domain entity.
func toStoreDomain(m *model.StoreModel) *entity.Store {
	return &entity.Store{
		ID:               m.ID,
		OwnerID:          m.OwnerID,
		Name:             m.Name,
		Slug:             m.Slug,
		DomainName:       m.DomainName,
		DNSState:         entity.DNSState(m.DNSState),
		DNSRecordCreated: m.DNSRecordCreated,
		HasMadePayment:   m.HasMadePayment,
		Completed:        m.Completed,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
