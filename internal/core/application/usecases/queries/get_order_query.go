// Package queries contains read operations for retrieving system state.
// Queries bypass the aggregates and read straight from the store into
// purpose-built read models.
package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery looks up the current state of a single order.
type GetOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	id, err := kernel.NewID(orderID)
	if err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// GetOrderQueryResponse is the read model of an order. Outcome fields are nil
// until the order has been processed at least once.
type GetOrderQueryResponse struct {
	ID                    int64
	ProductID             int64
	Quantity              int
	DeliveryType          string
	CustomerEmail         string
	Status                string
	Priority              *int
	TotalCost             *decimal.Decimal
	EstimatedDeliveryDate *time.Time
	ProcessedAt           *time.Time
}
