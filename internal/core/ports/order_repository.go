// Package ports defines the contracts between the warehouse core and its
// infrastructure: storage, notification delivery and the audit trail.
package ports

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are created by the intake system, so there is no Add.
type OrderRepository interface {
	// Get retrieves an order by id. A missing order is reported as
	// *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Update persists status and outcome changes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetFirstPending returns the waiting order with the lowest id above
	// afterID, or *errs.ObjectNotFoundError when none is waiting. Waiting
	// orders are New ones and Processing ones whose outcome was recorded at
	// or before stalledBefore.
	GetFirstPending(ctx context.Context, afterID int64, stalledBefore time.Time) (*order.Order, error)
}
