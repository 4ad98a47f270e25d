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

// catalogRepository implements the domain.CatalogRepository interface using GORM.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// FindProductByID retrieves a catalog product.
func (repo *catalogRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return &entity.Product{
		ID:         productM.ID,
		Name:       productM.Name,
		SalesCount: productM.SalesCount,
		CreatedAt:  productM.CreatedAt,
		UpdatedAt:  productM.UpdatedAt,
	}, nil
}

// FindPricing resolves the retail price a store charges for a product.
func (repo *catalogRepository) FindPricing(ctx context.Context, storeID, productID uuid.UUID) (*entity.StorePricing, error) {
	var pricingM model.StorePricingModel
	err := repo.db.WithContext(ctx).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		First(&pricingM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPricingNotFound
		}

		return nil, errors.Wrap(err, "failed to find store pricing")
	}

	return &entity.StorePricing{
		ID:          pricingM.ID,
		StoreID:     pricingM.StoreID,
		ProductID:   pricingM.ProductID,
		RetailPrice: pricingM.RetailPrice,
		UpdatedAt:   pricingM.UpdatedAt,
	}, nil
}

// IncrementSalesCount adds quantity to a product's lifetime sales counter.
func (repo *catalogRepository) IncrementSalesCount(ctx context.Context, productID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productID).
		Update("sales_count", gorm.Expr("sales_count + ?", quantity))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment sales count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}
