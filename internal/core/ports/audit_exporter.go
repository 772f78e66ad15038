package ports

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// AuditExporter records a snapshot of a processed order outside the
// primary store. Export failures never affect order processing.
type AuditExporter interface {
	Export(ctx context.Context, snapshot order.Snapshot) error
}
