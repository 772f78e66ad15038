package services

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/keylock"
)

// InventoryLedger reserves stock for orders.
//
// Reservations for the same product are serialised inside the process by a
// per-product lock; across processes the store's conditional decrement is
// the final arbiter. Either way a reservation that cannot be satisfied
// leaves the stock level untouched and reports product.ErrInsufficientStock.
//
// One InventoryLedger must be shared by every handler in the process.
type InventoryLedger struct {
	locks *keylock.Map[int64]
}

func NewInventoryLedger() *InventoryLedger {
	return &InventoryLedger{locks: keylock.New[int64]()}
}

// Reserve takes quantity units of productID out of stock using the
// repository of the caller's unit of work, so the decrement commits or rolls
// back together with the rest of that transaction.
//
// Returns:
//   - nil when the units were reserved
//   - product.ErrInsufficientStock (wrapped) when stock is short
//   - *errs.ObjectNotFoundError when the product has no stock level
func (l *InventoryLedger) Reserve(
	ctx context.Context,
	stock ports.StockLevelRepository,
	productID kernel.ID,
	quantity int,
	at time.Time,
) error {
	unlock := l.locks.Lock(productID.Int64())
	defer unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	level, err := stock.GetByProduct(ctx, productID)
	if err != nil {
		return err
	}

	if err = level.Reserve(quantity, at); err != nil {
		return err
	}

	return stock.Decrement(ctx, productID, quantity, at)
}
