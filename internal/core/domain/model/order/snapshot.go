package order

import "time"

// Snapshot is a read-only copy of an order's state at a point in time, taken
// for the audit trail after processing.
type Snapshot struct {
	OrderID               int64
	ProductID             int64
	Quantity              int
	DeliveryType          string
	CustomerEmail         string
	Status                string
	Priority              int
	TotalCost             string
	EstimatedDeliveryDate time.Time
	ProcessedAt           time.Time
}

// Snapshot captures the current state. Outcome fields are zero for New orders.
func (o *Order) Snapshot() Snapshot {
	s := Snapshot{
		OrderID:       o.id.Int64(),
		ProductID:     o.productID.Int64(),
		Quantity:      o.quantity,
		DeliveryType:  o.deliveryType.String(),
		CustomerEmail: o.customerEmail,
		Status:        o.status.String(),
	}
	if o.outcome != nil {
		s.Priority = o.outcome.Priority
		s.TotalCost = o.outcome.TotalCost.String()
		s.EstimatedDeliveryDate = o.outcome.EstimatedDeliveryDate
		s.ProcessedAt = o.outcome.ProcessedAt
	}
	return s
}
