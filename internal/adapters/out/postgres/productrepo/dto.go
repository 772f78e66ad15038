// Package productrepo reads catalog products with GORM.
package productrepo

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID    int64           `gorm:"primaryKey;autoIncrement:false"`
	Name  string          `gorm:"type:varchar(255);not null"`
	Price decimal.Decimal `gorm:"type:numeric(18,2);not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:    p.ID().Int64(),
		Name:  p.Name(),
		Price: p.UnitPrice().Decimal(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, dto.Name, price)
}
