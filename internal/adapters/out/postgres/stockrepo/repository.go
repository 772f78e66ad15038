package stockrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockLevelRepository implements ports.StockLevelRepository using GORM.
type GormStockLevelRepository struct {
	db *gorm.DB
}

func NewGormStockLevelRepository(db *gorm.DB) *GormStockLevelRepository {
	return &GormStockLevelRepository{db: db}
}

// Add inserts the stock level of a product that has none yet.
func (r *GormStockLevelRepository) Add(ctx context.Context, aggregate *product.StockLevel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByProduct reads the stock level and, inside a transaction, locks the
// row until commit or rollback.
func (r *GormStockLevelRepository) GetByProduct(ctx context.Context, productID kernel.ID) (*product.StockLevel, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dto StockLevelDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "product_id = ?", productID.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stockLevel", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Decrement is a single conditional UPDATE, so concurrent callers from any
// process can never drive the quantity below zero.
func (r *GormStockLevelRepository) Decrement(ctx context.Context, productID kernel.ID, quantity int, at time.Time) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	result := r.db.WithContext(ctx).
		Model(&StockLevelDTO{}).
		Where("product_id = ? AND quantity >= ?", productID.Int64(), quantity).
		Updates(map[string]any{
			"quantity":     gorm.Expr("quantity - ?", quantity),
			"last_updated": at.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: could not take %d units of product %s", product.ErrInsufficientStock, quantity, productID)
	}

	return nil
}
