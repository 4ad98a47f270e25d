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
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindCartByUser retrieves the user's open cart with its items.
func (repo *cartRepository) FindCartByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return repo.findCartByUser(ctx, userID, false)
}

// FindCartByUserForUpdate retrieves the user's open cart with a row-level
// exclusive lock, serializing concurrent checkouts on the same cart.
func (repo *cartRepository) FindCartByUserForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return repo.findCartByUser(ctx, userID, true)
}

func (repo *cartRepository) findCartByUser(ctx context.Context, userID uuid.UUID, forUpdate bool) (*entity.Cart, error) {
	query := repo.db.WithContext(ctx).Preload("Items")
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var cartM model.CartModel
	err := query.Where("user_id = ?", userID).First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// CreateCart persists a new empty cart for (user, store).
func (repo *cartRepository) CreateCart(ctx context.Context, cart *entity.Cart) error {
	cartM := &model.CartModel{
		UserID:  cart.UserID,
		StoreID: cart.StoreID,
	}

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// A concurrent add already created the cart for this user.
			return repository.ErrCartStoreConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// AddItem appends a line to the cart, merging quantity into an existing line
// for the same (product, variant).
func (repo *cartRepository) AddItem(ctx context.Context, cartID uuid.UUID, item *entity.CartItem) error {
	var existing model.CartItemModel
	err := repo.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND variant_id = ?", cartID, item.ProductID, item.VariantID).
		First(&existing).Error

	if err == nil {
		result := repo.db.WithContext(ctx).
			Model(&model.CartItemModel{}).
			Where("id = ?", existing.ID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to merge cart item")
		}

		item.ID = existing.ID
		item.CartID = cartID
		item.Quantity += existing.Quantity

		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(err, "failed to look up cart item")
	}

	itemM := &model.CartItemModel{
		CartID:    cartID,
		ProductID: item.ProductID,
		VariantID: item.VariantID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
	}
	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	item.ID = itemM.ID
	item.CartID = cartID

	return nil
}

// RemoveItem deletes one line from the cart.
func (repo *cartRepository) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&model.CartItemModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// ClearItems deletes every line of the cart.
func (repo *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItemModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart items")
	}

	return nil
}

// toCartDomain maps a persistence model back to a pure domain entity.
func toCartDomain(m *model.CartModel) *entity.Cart {
	items := make([]entity.CartItem, 0, len(m.Items))
	for _, itemM := range m.Items {
		items = append(items, entity.CartItem{
			ID:        itemM.ID,
			CartID:    itemM.CartID,
			ProductID: itemM.ProductID,
			VariantID: itemM.VariantID,
			Quantity:  itemM.Quantity,
			UnitPrice: itemM.UnitPrice,
		})
	}

	return &entity.Cart{
		ID:        m.ID,
		UserID:    m.UserID,
		StoreID:   m.StoreID,
		Items:     items,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
