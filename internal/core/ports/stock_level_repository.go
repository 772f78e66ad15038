package ports

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
)

// StockLevelRepository stores the single StockLevel of each product.
type StockLevelRepository interface {
	// GetByProduct returns the stock level of a product or
	// *errs.ObjectNotFoundError when none exists.
	GetByProduct(ctx context.Context, productID kernel.ID) (*product.StockLevel, error)

	// Decrement subtracts quantity from the stored level only if at least
	// quantity units are on hand, and stamps the row with at. When the
	// condition does not hold it changes nothing and returns
	// product.ErrInsufficientStock. The check and the write are one atomic
	// store operation.
	Decrement(ctx context.Context, productID kernel.ID, quantity int, at time.Time) error
}
