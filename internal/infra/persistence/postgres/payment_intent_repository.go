package postgres

import (
	"context"
	"encoding/json"

	"rocktea/internal/domain/entity"
	domainerrors "rocktea/internal/domain/errors"
	"rocktea/internal/domain/repository"
	"rocktea/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// paymentIntentRepository implements the domain.PaymentIntentRepository
// interface using GORM. The unique index on reference is what makes duplicate
// webhook deliveries safe; everything else builds on top of it.
type paymentIntentRepository struct {
	db *gorm.DB
}

// NewPaymentIntentRepository is the constructor for paymentIntentRepository.
func NewPaymentIntentRepository(db *gorm.DB) repository.PaymentIntentRepository {
	return &paymentIntentRepository{db: db}
}

// CreateIntent persists a fresh pending intent.
func (repo *paymentIntentRepository) CreateIntent(ctx context.Context, intent *entity.PaymentIntent) error {
	intentM := fromPaymentIntentDomain(intent)

	if err := repo.db.WithContext(ctx).Create(intentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment intent")
	}

	intent.ID = intentM.ID
	intent.CreatedAt = intentM.CreatedAt

	return nil
}

// FindByReference retrieves an intent by its provider reference.
func (repo *paymentIntentRepository) FindByReference(ctx context.Context, reference string) (*entity.PaymentIntent, error) {
	return repo.findByReference(ctx, reference, false)
}

// FindByReferenceForUpdate retrieves an intent with a row-level exclusive
// lock, serializing concurrent webhook deliveries for the same reference.
func (repo *paymentIntentRepository) FindByReferenceForUpdate(ctx context.Context, reference string) (*entity.PaymentIntent, error) {
	return repo.findByReference(ctx, reference, true)
}

func (repo *paymentIntentRepository) findByReference(ctx context.Context, reference string, forUpdate bool) (*entity.PaymentIntent, error) {
	query := repo.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var intentM model.PaymentIntentModel
	err := query.Where("reference = ?", reference).First(&intentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIntentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment intent by reference")
	}

	return toPaymentIntentDomain(&intentM), nil
}

// MarkSuccess performs the pending → success transition. Re-marking an
// already successful intent is a no-op; a failed one cannot become successful.
func (repo *paymentIntentRepository) MarkSuccess(ctx context.Context, reference string, raw json.RawMessage, orderID, storeID *uuid.UUID) error {
	return repo.finalize(ctx, reference, entity.PaymentStatusSuccess, map[string]any{
		"status":   string(entity.PaymentStatusSuccess),
		"raw":      datatypes.JSON(raw),
		"order_id": orderID,
		"store_id": storeID,
	})
}

// MarkFailed performs the pending → failed transition. Re-marking an already
// failed intent is a no-op; a successful one cannot be failed afterwards.
func (repo *paymentIntentRepository) MarkFailed(ctx context.Context, reference string, raw json.RawMessage) error {
	return repo.finalize(ctx, reference, entity.PaymentStatusFailed, map[string]any{
		"status": string(entity.PaymentStatusFailed),
		"raw":    datatypes.JSON(raw),
	})
}

func (repo *paymentIntentRepository) finalize(ctx context.Context, reference string, target entity.PaymentStatus, updates map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentIntentModel{}).
		Where("reference = ? AND status = ?", reference, string(entity.PaymentStatusPending)).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to finalize payment intent")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// No pending row matched: the intent is missing or already terminal.
	intent, err := repo.findByReference(ctx, reference, false)
	if err != nil {
		return err
	}
	if intent.Status == target {
		return nil // Duplicate delivery of the same outcome.
	}

	return repository.ErrIntentAlreadyFinal
}

// fromPaymentIntentDomain maps a pure domain entity to a persistence model.
func fromPaymentIntentDomain(i *entity.PaymentIntent) *model.PaymentIntentModel {
	return &model.PaymentIntentModel{
		ID:          i.ID,
		Reference:   i.Reference,
		Purpose:     string(i.Purpose),
		UserID:      i.UserID,
		AmountMinor: i.AmountMinor,
		Status:      string(i.Status),
		Raw:         datatypes.JSON(i.Raw),
		OrderID:     i.OrderID,
		StoreID:     i.StoreID,
	}
}

// toPaymentIntentDomain maps a persistence model back to a pure domain entity.
func toPaymentIntentDomain(m *model.PaymentIntentModel) *entity.PaymentIntent {
	return &entity.PaymentIntent{
		ID:          m.ID,
		Reference:   m.Reference,
		Purpose:     entity.PaymentPurpose(m.Purpose),
		UserID:      m.UserID,
		AmountMinor: m.AmountMinor,
		Status:      entity.PaymentStatus(m.Status),
		Raw:         json.RawMessage(m.Raw),
		OrderID:     m.OrderID,
		StoreID:     m.StoreID,
		CreatedAt:   m.CreatedAt,
	}
}
