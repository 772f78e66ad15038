package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
)

// ProductRepository reads catalog entries. Products are never written here.
type ProductRepository interface {
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)
}
