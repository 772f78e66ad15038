// Package stockrepo keeps the on-hand quantity of every product.
package stockrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"

	"github.com/google/uuid"
)

type StockLevelDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   int64     `gorm:"not null;uniqueIndex"`
	Quantity    int       `gorm:"not null;check:quantity >= 0"`
	LastUpdated time.Time `gorm:"not null"`
}

func (StockLevelDTO) TableName() string {
	return "stock_levels"
}

func fromDomain(s *product.StockLevel) StockLevelDTO {
	return StockLevelDTO{
		ID:          s.ID().Value(),
		ProductID:   s.ProductID().Int64(),
		Quantity:    s.Quantity(),
		LastUpdated: s.LastUpdated().UTC(),
	}
}

func toDomain(dto StockLevelDTO) (*product.StockLevel, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}

	productID, err := kernel.NewID(dto.ProductID)
	if err != nil {
		return nil, err
	}

	return product.RestoreStockLevel(id, productID, dto.Quantity, dto.LastUpdated.UTC())
}
